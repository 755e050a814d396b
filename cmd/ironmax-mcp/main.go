package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/lkklausen/ironmax/internal/mcp"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "IronMax server URL for remote mode (e.g. https://ironmax.tail1234.ts.net); empty runs the calculator in-process")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("ironmax-mcp", Version)
		return
	}

	// Logs go to stderr; stdout carries the MCP stdio transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var calc mcp.Calculator = mcp.Local{}
	if *serverURL != "" {
		calc = mcp.NewHTTPClient(*serverURL)
		log.Info("remote mode", "server", *serverURL)
	}

	s := mcp.New(calc, Version, log)
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
