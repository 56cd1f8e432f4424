package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oasgen/genapi"
	"github.com/oasgen/genapi/cmd/genapi/commands"
	"github.com/oasgen/genapi/internal/cliutil"
	"github.com/oasgen/genapi/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("genapi v%s\n", genapi.Version())
		fmt.Printf("commit: %s\n", genapi.Commit())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			cliutil.WriteError(os.Stderr, err)
			os.Exit(1)
		}
	case "inspect":
		if err := commands.HandleInspect(os.Args[2:]); err != nil {
			cliutil.WriteError(os.Stderr, err)
			os.Exit(1)
		}
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err := mcpserver.Run(ctx)
		stop()
		if err != nil {
			cliutil.WriteError(os.Stderr, err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`genapi - io-ts models and request types from OpenAPI specifications

Usage:
  genapi <command> [flags]

Commands:
  generate    Generate TypeScript models (and request types) from a specification
  inspect     Summarize the definitions and operations of a specification
  mcp         Serve the generate and inspect tools over stdio (Model Context Protocol)
  version     Print the version
  help        Show this help

Examples:
  genapi generate --api-spec api.yaml --out-dir ./generated
  genapi generate --api-spec api.yaml --out-dir ./generated --request-types --response-decoders
  genapi inspect --format json api.yaml

Run 'genapi <command> --help' for more information on a command.
`)
}
