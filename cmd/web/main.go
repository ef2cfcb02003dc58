package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/peterkuimelis/gwent/internal/config"
	"github.com/peterkuimelis/gwent/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	port := flag.Int("port", cfg.HTTPPort, "HTTP port to listen on")
	artDir := flag.String("art", cfg.ArtDir, "path to card art directory")
	decksFile := flag.String("decks", cfg.DecksFile, "path to decks YAML file")
	flag.Parse()

	srv, err := web.NewServer(*artDir, *decksFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("gwent web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
