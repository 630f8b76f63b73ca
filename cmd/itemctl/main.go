// Package main is the entry point for the item engine CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	assetRoot   string
	inventoryID string
	showEvents  bool
	showMetrics bool

	current *app
)

var rootCmd = &cobra.Command{
	Use:   "itemctl",
	Short: "Inspect items, templates and inventories",
	Long: `itemctl drives the item engine from the terminal: list registered items,
show attribute breakdowns, render template textures and work with a
persisted inventory.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
	PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
		if current == nil {
			return nil
		}
		defer func() {
			current.Close()
			current = nil
		}()
		if showMetrics {
			return current.dumpMetrics(cmd.OutOrStdout())
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&assetRoot, "assets", "", "asset root (overrides ITEMS_ASSET_ROOT)")
	rootCmd.PersistentFlags().StringVar(&inventoryID, "id", "player", "inventory snapshot id")
	rootCmd.PersistentFlags().BoolVar(&showEvents, "events", false, "print inventory events as they happen")
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "print collected metrics before exiting")

	rootCmd.AddCommand(registryCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(inventoryCmd)
}

func setupApp(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	current = a
	return nil
}
