package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/truthdare/core/cmd/api/commands"
)

// @title Truth and Dare API
// @version 0.1.0
// @description A REST API providing truth questions and dare challenges for the classic party game

// @host localhost:8000
// @BasePath /

func main() {
	rootCmd := &cobra.Command{
		Use:   "truthdare",
		Short: "Truth and Dare API Server",
		Long:  `Truth and Dare API serves a fixed corpus of truth questions and dare challenges over HTTP with random and filtered selection.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewValidateDataCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
