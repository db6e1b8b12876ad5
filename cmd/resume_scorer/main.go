// Package main provides the entry point for the resume scorer CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_scorer",
	Short: "Resume scoring engine",
	Long:  "Resume Scorer rates how well a resume matches a job description, producing a composite score with skill, contactability, experience, and education breakdowns.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
