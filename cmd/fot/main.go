package main

import (
	"fmt"
	"os"

	"fleet-overtime/internal/cli"
	"fleet-overtime/internal/config"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The store is opened lazily by the root command, after global flags
	// have been folded into the configuration.
	root := cli.NewRootCommand(nil, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
