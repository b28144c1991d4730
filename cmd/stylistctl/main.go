// Package main provides stylistctl, a local companion CLI for the closet stylist service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stylistctl",
		Short:         "Closet stylist developer tooling",
		Long:          "stylistctl runs the outfit recommender against a local wardrobe file and mints development bearer tokens.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSuggestCmd(), newTokenCmd())
	return root
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
