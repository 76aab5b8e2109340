package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"issue-tracker/internal/cli"
	"issue-tracker/internal/tracker"
	"issue-tracker/pkg/issueclient"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		NewAPI: func(baseURL string) tracker.API { return issueclient.NewClient(baseURL) },
	}
	if err := cli.NewRootCmd(app).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
