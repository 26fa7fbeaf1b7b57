package main

import (
	"fmt"
	"os"

	"studio-portfolio/cmd"
	"studio-portfolio/pkg/config"
	"studio-portfolio/pkg/logging"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		logging.Logger.Warn("Failed to read .env file", "err", err)
	}

	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
