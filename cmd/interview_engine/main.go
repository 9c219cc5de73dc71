// Package main provides the entry point for the interview preparation
// engine HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_engine",
	Short: "Interview Preparation Engine HTTP API Server",
	Long:  "Interview Preparation Engine generates tailored interview questions, model answers, follow-ups, and ATS resume scores from resume data via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
