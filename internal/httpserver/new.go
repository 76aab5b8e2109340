package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"issue-tracker/internal/middleware"
	"issue-tracker/pkg/log"
)

// Store drivers understood by the server.
const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	middleware  middleware.Config

	// Issue store
	storeDriver     string
	mongoDB         *mongo.Database
	mongoCollection string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config

	// Issue store. MongoDB is required when StoreDriver is "mongo".
	StoreDriver     string
	MongoDB         *mongo.Database
	MongoCollection string
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		middleware:      cfg.Middleware,
		storeDriver:     cfg.StoreDriver,
		mongoDB:         cfg.MongoDB,
		mongoCollection: cfg.MongoCollection,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	switch srv.storeDriver {
	case StoreDriverMemory:
	case StoreDriverMongo:
		if srv.mongoDB == nil {
			return errors.New("mongo database is required for the mongo store")
		}
	default:
		return errors.New("unknown store driver: " + srv.storeDriver)
	}
	return nil
}
