package main

import (
	"fmt"
	"os"

	"trend-srv/config"
	"trend-srv/internal/cli"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	if err := cli.NewRootCmd(os.Stdout, cli.NewPipeline(cfg)).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
