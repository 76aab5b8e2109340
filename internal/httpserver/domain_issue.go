package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	issueHTTP "issue-tracker/internal/issue/delivery/http"
	"issue-tracker/internal/issue/repository"
	"issue-tracker/internal/issue/repository/memory"
	"issue-tracker/internal/issue/repository/mongodb"
	issueUC "issue-tracker/internal/issue/usecase"
)

// setupIssueDomain wires repository -> usecase -> handler and mounts
// /api/issues.
func (srv HTTPServer) setupIssueDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	var repo repository.Repository
	switch srv.storeDriver {
	case StoreDriverMongo:
		repo = mongodb.New(srv.mongoDB, srv.mongoCollection, srv.l)
	default:
		repo = memory.New(srv.l)
	}

	// 2. UseCase
	uc := issueUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := issueHTTP.New(srv.l, uc)

	// 4. Routes
	issueHTTP.RegisterRoutes(api.Group("/issues"), h)

	srv.l.Infof(ctx, "Issue domain registered (store: %s)", srv.storeDriver)
	return nil
}
