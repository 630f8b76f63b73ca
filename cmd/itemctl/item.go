package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ducttape-items/internal/entities/item"
	"github.com/KirkDiggler/ducttape-items/internal/orchestrators/inventory"
)

var (
	itemBBCode  bool
	itemTexture string
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Inspect registered items",
}

var itemShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print an item's attribute breakdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemShow,
}

func init() {
	itemShowCmd.Flags().BoolVar(&itemBBCode, "bbcode", false, "render the breakdown as BBCode instead of ANSI")
	itemShowCmd.Flags().StringVar(&itemTexture, "texture", "", "write the item texture to this PNG file")
	itemCmd.AddCommand(itemShowCmd)
}

func runItemShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	current.registerSampleTemplate(ctx)

	out, err := current.svc.DescribeItem(ctx, &inventory.DescribeItemInput{Name: args[0]})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s (%s)\n", out.Item.Name(), out.Item.Ident())
	if itemBBCode {
		fmt.Fprintln(w, out.Breakdown.BBCode())
	} else {
		fmt.Fprintln(w, out.Breakdown.ANSI())
	}

	if itemTexture == "" {
		return nil
	}
	img, ok := item.ImageOrPlaceholder(ctx, out.Item, current.cfg.TextureSize)
	if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), "texture unavailable, wrote placeholder")
	}
	return writePNG(itemTexture, img)
}
