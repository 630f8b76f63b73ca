package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ducttape-items/internal/errors"
	"github.com/KirkDiggler/ducttape-items/internal/orchestrators/inventory"
	"github.com/KirkDiggler/ducttape-items/internal/template"
)

var (
	templateComponents []string
	templateOutput     string
	templateRegisterAs string
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Build and render template items",
}

var templateRenderCmd = &cobra.Command{
	Use:     "render <template>",
	Short:   "Fill a template with registered items and write its texture",
	Example: `  itemctl template render spear --component shaft=rope --component tip=rock -o spear.png`,
	Args:    cobra.ExactArgs(1),
	RunE:    runTemplateRender,
}

func init() {
	templateRenderCmd.Flags().StringArrayVarP(&templateComponents, "component", "c", nil, "part=item assignment, repeatable")
	templateRenderCmd.Flags().StringVarP(&templateOutput, "output", "o", "", "PNG file to write")
	templateRenderCmd.Flags().StringVar(&templateRegisterAs, "name", "", "registry name for the built item")
	_ = templateRenderCmd.MarkFlagRequired("output")
	templateCmd.AddCommand(templateRenderCmd)
}

func runTemplateRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	components, err := parseComponents(templateComponents)
	if err != nil {
		return err
	}

	built, err := current.svc.BuildTemplateItem(ctx, &inventory.BuildTemplateItemInput{
		Template:   args[0],
		Components: components,
		RegisterAs: templateRegisterAs,
	})
	if err != nil {
		return err
	}

	tmplItem, ok := built.Item.(*template.Item)
	if !ok {
		return errors.Internalf("template %s did not produce a template item", args[0])
	}
	img, err := current.templates.Render(ctx, tmplItem)
	if err != nil {
		return err
	}
	if err := writePNG(templateOutput, img); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "rendered %s to %s\n", built.Name, templateOutput)
	return nil
}

func parseComponents(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		part, name, found := strings.Cut(pair, "=")
		if !found || part == "" || name == "" {
			return nil, errors.InvalidArgumentf("component %q must be part=item", pair)
		}
		out[part] = name
	}
	return out, nil
}
