package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/peterkuimelis/gwent/internal/config"
	gwentmcp "github.com/peterkuimelis/gwent/internal/mcp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	decks := flag.String("decks", cfg.DecksFile, "path to decks YAML file")
	port := flag.String("port", cfg.MCPPort, "TCP port for human player connection")
	seed := flag.Int64("seed", cfg.Seed, "shuffle seed (0 for random)")
	flag.Parse()

	gwentmcp.Configure(gwentmcp.Settings{
		DecksFile: *decks,
		Port:      *port,
		Seed:      *seed,
		MaxTurns:  cfg.MaxTurns,
	})

	s := server.NewMCPServer("gwent", "1.0.0")
	gwentmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
