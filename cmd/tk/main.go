package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"task-tracker/internal/cli"
)

func main() {
	os.Exit(run())
}

// run executes the CLI and returns the process exit code
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(factoryFor(getEnvironment()), os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		errorHandler := cli.NewErrorHandler()
		fmt.Fprintf(os.Stderr, "Error: %v\n", errorHandler.HandleSimple(err))
		return errorHandler.ExitCode(err)
	}
	return 0
}
