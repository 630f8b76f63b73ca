package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ducttape-items/internal/errors"
	"github.com/KirkDiggler/ducttape-items/internal/orchestrators/inventory"
	inventoryrepo "github.com/KirkDiggler/ducttape-items/internal/repositories/inventory"
)

var lootMaxQuantity int

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Work with the player inventory",
	Long: `Inventory commands operate on the inventory named by --id. With redis
configured the saved snapshot is loaded first and changes are saved back;
otherwise every command starts from the sample inventory.`,
}

var inventoryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every slot",
	Args:  cobra.NoArgs,
	RunE:  runInventoryShow,
}

var inventoryAddCmd = &cobra.Command{
	Use:   "add <name> <quantity>",
	Short: "Add a stack of a registered item",
	Args:  cobra.ExactArgs(2),
	RunE:  runInventoryAdd,
}

var inventoryRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Empty a slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventoryRemove,
}

var inventoryLootCmd = &cobra.Command{
	Use:   "loot <drops>",
	Short: "Add random stacks of registered items",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventoryLoot,
}

var inventorySaveCmd = &cobra.Command{
	Use:   "save <id>",
	Short: "Copy the current inventory to another snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventorySave,
}

var inventoryLoadCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Print a saved snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventoryLoad,
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved snapshot ids",
	Args:  cobra.NoArgs,
	RunE:  runInventoryList,
}

func init() {
	inventoryLootCmd.Flags().IntVar(&lootMaxQuantity, "max", 0, "largest stack a drop can have (default 4)")

	inventoryCmd.AddCommand(inventoryShowCmd)
	inventoryCmd.AddCommand(inventoryAddCmd)
	inventoryCmd.AddCommand(inventoryRemoveCmd)
	inventoryCmd.AddCommand(inventoryLootCmd)
	inventoryCmd.AddCommand(inventorySaveCmd)
	inventoryCmd.AddCommand(inventoryLoadCmd)
	inventoryCmd.AddCommand(inventoryListCmd)
}

func runInventoryShow(cmd *cobra.Command, _ []string) error {
	if err := current.openInventory(cmd.Context()); err != nil {
		return err
	}
	printInventory(cmd.OutOrStdout(), current.svc)
	return nil
}

func runInventoryAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	qty, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return errors.InvalidArgumentf("quantity %q is not a non-negative integer", args[1])
	}
	if err := current.openInventory(ctx); err != nil {
		return err
	}

	out, err := current.svc.AddItemByName(ctx, &inventory.AddItemInput{Name: args[0], Quantity: uint(qty)})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "added %s x%d to slot %d\n", args[0], out.Stack.Count, out.Index)
	return current.persist(ctx)
}

func runInventoryRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.InvalidArgumentf("index %q is not an integer", args[0])
	}
	if err := current.openInventory(ctx); err != nil {
		return err
	}

	out, err := current.svc.RemoveItem(ctx, &inventory.RemoveItemInput{Index: index})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %s x%d from slot %d\n", out.Stack.Item.Ident(), out.Stack.Count, index)
	return current.persist(ctx)
}

func runInventoryLoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	drops, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.InvalidArgumentf("drops %q is not an integer", args[0])
	}
	if err := current.openInventory(ctx); err != nil {
		return err
	}

	out, err := current.svc.Loot(ctx, &inventory.LootInput{Drops: drops, MaxQuantity: lootMaxQuantity})
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, d := range out.Drops {
		fmt.Fprintf(w, "looted %s x%d into slot %d\n", d.Name, d.Quantity, d.Index)
	}
	if out.Full {
		fmt.Fprintln(w, "inventory full, remaining drops lost")
	}
	return current.persist(ctx)
}

func runInventorySave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requirePersistence(); err != nil {
		return err
	}
	if err := current.openInventory(ctx); err != nil {
		return err
	}

	out, err := current.svc.Save(ctx, &inventory.SaveInput{ID: args[0]})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved %d slots as %s\n", len(out.Snapshot.Slots), out.Snapshot.ID)
	return nil
}

func runInventoryLoad(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requirePersistence(); err != nil {
		return err
	}
	current.registerSampleTemplate(ctx)

	out, err := current.svc.Restore(ctx, &inventory.RestoreInput{ID: args[0]})
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "snapshot %s (%s, saved %s)\n", out.Snapshot.ID, out.Snapshot.Layout,
		out.Snapshot.SavedAt.Format("2006-01-02 15:04:05"))
	printInventory(w, current.svc)
	return nil
}

func runInventoryList(cmd *cobra.Command, _ []string) error {
	if err := requirePersistence(); err != nil {
		return err
	}
	out, err := current.snapshots.List(cmd.Context(), inventoryrepo.ListInput{})
	if err != nil {
		return err
	}
	for _, id := range out.IDs {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}

func requirePersistence() error {
	if current.snapshots == nil {
		return errors.FailedPrecondition("persistence is disabled; set ITEMS_REDIS_ADDR")
	}
	return nil
}

func printInventory(w io.Writer, svc inventory.Service) {
	for i, stack := range svc.Inventory().Stacks() {
		if stack.IsAir() {
			fmt.Fprintf(w, "%3d  -\n", i)
			continue
		}
		fmt.Fprintf(w, "%3d  %-12s x%d\n", i, stack.Item.Ident(), stack.Count)
	}
}
