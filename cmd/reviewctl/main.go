package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/iudanet/reviewboard/internal/client/api"
	"github.com/iudanet/reviewboard/internal/client/cli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	ctx := context.Background()
	apiClient := api.NewClient(*serverURL)

	// Выполняем команду
	var err error
	switch command {
	case "list":
		err = cli.RunList(ctx, apiClient)
	case "add":
		err = cli.RunAdd(ctx, args[1:], apiClient)
	case "clear":
		err = cli.RunClear(ctx, apiClient, os.Getenv("REVIEWBOARD_ADMIN_TOKEN"))
	case "help":
		cli.PrintUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		cli.PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("reviewctl\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
