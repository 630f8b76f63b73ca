package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Work with the item registry",
}

var registryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered item names",
	Args:  cobra.NoArgs,
	RunE:  runRegistryList,
}

func init() {
	registryCmd.AddCommand(registryListCmd)
}

func runRegistryList(cmd *cobra.Command, _ []string) error {
	current.registerSampleTemplate(cmd.Context())

	reg := current.svc.Registry()
	for _, name := range reg.Names() {
		it, err := reg.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", name, it.Name())
	}
	return nil
}
