package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/backwardspy/randnd/internal/infrastructure/cli"
)

func main() {
	// best-effort: RANDND_* overrides may live in a local .env
	_ = godotenv.Load()

	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("RANDND_DEBUG"), "1") || strings.EqualFold(os.Getenv("RANDND_DEBUG"), "true")
}
