// Package template builds composite items from named component items and a
// declarative template, merging their attributes and compositing a texture
// from per-component images cut out by a colour mask.
package template

import (
	"image/color"
	"sort"

	"github.com/google/uuid"

	"github.com/KirkDiggler/ducttape-items/internal/assets"
	"github.com/KirkDiggler/ducttape-items/internal/entities/attribute"
	"github.com/KirkDiggler/ducttape-items/internal/errors"
)

// Strategy is the declared merge mode of one attribute kind. It is parsed and
// kept on the template but merging always concatenates.
type Strategy string

const (
	StrategySum     Strategy = "Sum"
	StrategyAverage Strategy = "Average"
	StrategyManual  Strategy = "Manual"
)

// ItemTemplate is a loaded template definition
type ItemTemplate struct {
	// Folder is the logical asset folder holding the mask and component images
	Folder     string
	DataName   string
	Attributes attribute.Map
	Strategies map[attribute.Kind]Strategy
	// Components maps component names to their mask colour
	Components map[string]color.NRGBA
	// Fallback maps component names to the logical path of their fallback image
	Fallback map[string]string
}

// LoadTemplate converts a definition into a template rooted at folder. Entries
// of one kind are ordered by priority, then by id.
func LoadTemplate(def *Definition, folder string) (*ItemTemplate, error) {
	if def == nil {
		return nil, errors.TemplateLoadf("no definition for %s", folder)
	}
	if err := def.Validate(); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeTemplateLoad, "invalid template in %s", folder)
	}

	tmpl := &ItemTemplate{
		Folder:     folder,
		DataName:   def.DataName,
		Attributes: make(attribute.Map, len(def.Attribute)),
		Strategies: make(map[attribute.Kind]Strategy, len(def.Attribute)),
		Components: make(map[string]color.NRGBA, len(def.Components)),
		Fallback:   make(map[string]string, len(def.Fallback)),
	}

	for kindName, kindDef := range def.Attribute {
		kind, err := attribute.ParseKind(kindName)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeTemplateLoad, "invalid attribute kind")
		}
		entries, err := loadEntries(kindDef.Attr)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeTemplateLoad, "invalid %s entries", kind)
		}
		tmpl.Attributes[kind] = append(tmpl.Attributes[kind], entries...)
		attribute.SortByPriority(tmpl.Attributes[kind])
		tmpl.Strategies[kind] = Strategy(kindDef.Strategy)
	}

	for part, hexColor := range def.Components {
		c, err := ParseMaskColor(hexColor)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeTemplateLoad, "invalid mask colour for %s", part)
		}
		tmpl.Components[part] = c
	}

	for part, fallback := range def.Fallback {
		tmpl.Fallback[part] = ComponentImagePath(folder, part, fallback)
	}

	return tmpl, nil
}

func loadEntries(defs map[string]AttributeDef) ([]attribute.Attribute, error) {
	entries := make([]attribute.Attribute, 0, len(defs))
	for rawID, def := range defs {
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid attribute id %q", rawID)
		}
		mod, err := loadModifier(def.Modifier)
		if err != nil {
			return nil, err
		}
		reason := attribute.Hidden()
		if def.Reason != "" {
			reason = attribute.Display(def.Reason)
		}
		entries = append(entries, attribute.Attribute{
			ID:       id,
			Reason:   reason,
			Priority: def.Priority,
			Modifier: mod,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID.String() < entries[j].ID.String()
	})
	return entries, nil
}

func loadModifier(m map[string]float64) (attribute.Modifier, error) {
	if len(m) != 1 {
		return attribute.Modifier{}, errors.InvalidArgumentf("modifier needs exactly one operation, got %d", len(m))
	}
	for name, value := range m {
		op, err := attribute.ParseOperation(name)
		if err != nil {
			return attribute.Modifier{}, err
		}
		return attribute.Modifier{Op: op, Value: value}, nil
	}
	return attribute.Modifier{}, nil
}

// ComponentImagePath is the logical path of the image drawn for component
// part when filled by the item identified by ident
func ComponentImagePath(folder, part, ident string) string {
	return assets.Join(folder, part+":"+ident+".png")
}

// MaskPath is the logical path of the template's mask image
func (t *ItemTemplate) MaskPath() string {
	return assets.Join(t.Folder, MaskImage)
}

// Parts returns the component names in sorted order
func (t *ItemTemplate) Parts() []string {
	parts := make([]string, 0, len(t.Components))
	for part := range t.Components {
		parts = append(parts, part)
	}
	sort.Strings(parts)
	return parts
}
