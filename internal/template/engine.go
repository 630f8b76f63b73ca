package template

import (
	"context"
	"image"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/ducttape-items/internal/assets"
	"github.com/KirkDiggler/ducttape-items/internal/entities/item"
	"github.com/KirkDiggler/ducttape-items/internal/errors"
	"github.com/KirkDiggler/ducttape-items/internal/logger"
	"github.com/KirkDiggler/ducttape-items/internal/metrics"
	"github.com/KirkDiggler/ducttape-items/internal/pkg/clock"
)

// Defaults applied by NewEngine
const (
	DefaultSize      = 32
	DefaultCacheSize = 64
)

// Config configures an Engine
type Config struct {
	Store     assets.Store
	Size      int
	CacheSize int
	Metrics   metrics.Recorder
	Clock     clock.Clock
}

// Validate validates the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg == nil {
		return vb.RequiredField("config").Build()
	}
	if cfg.Store == nil {
		vb.RequiredField("store")
	}
	if cfg.Size < 0 {
		vb.InvalidField("size", "must not be negative")
	}
	if cfg.CacheSize < 0 {
		vb.InvalidField("cache_size", "must not be negative")
	}
	return vb.Build()
}

// Engine loads templates from the asset store and renders template item
// textures. Mask images and rendered textures are cached.
type Engine struct {
	store    assets.Store
	size     int
	masks    *lru.Cache[string, image.Image]
	renders  *lru.Cache[string, *image.NRGBA]
	recorder metrics.Recorder
	clock    clock.Clock
}

// NewEngine creates a template engine
func NewEngine(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	size := cfg.Size
	if size == 0 {
		size = DefaultSize
	}
	cacheSize := cfg.CacheSize
	if cacheSize == 0 {
		cacheSize = DefaultCacheSize
	}

	masks, err := lru.New[string, image.Image](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mask cache")
	}
	renders, err := lru.New[string, *image.NRGBA](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create render cache")
	}

	e := &Engine{
		store:    cfg.Store,
		size:     size,
		masks:    masks,
		renders:  renders,
		recorder: metrics.OrNop(cfg.Metrics),
		clock:    cfg.Clock,
	}
	if e.clock == nil {
		e.clock = clock.New()
	}
	return e, nil
}

// Size returns the edge length of rendered textures
func (e *Engine) Size() int {
	return e.size
}

// Folder returns the logical folder of the named template
func Folder(name string) string {
	return assets.Logical("item", name)
}

// Load reads the named template from item/{name}/template.toml, falling back
// to template.yaml
func (e *Engine) Load(ctx context.Context, name string) (*ItemTemplate, error) {
	folder := Folder(name)

	var (
		data []byte
		file string
		err  error
	)
	for _, candidate := range []string{DefinitionTOML, DefinitionYAML} {
		file = assets.Join(folder, candidate)
		data, err = e.store.ReadFile(ctx, file)
		if err == nil || !errors.IsNotFound(err) {
			break
		}
	}
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeTemplateLoad, "failed to read template %s", name)
	}

	def, err := ParseDefinition(file, data)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeTemplateLoad, "failed to parse template %s", name)
	}
	tmpl, err := LoadTemplate(def, folder)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("loaded item template",
		"template", name,
		"data_name", tmpl.DataName,
		"components", len(tmpl.Components))
	return tmpl, nil
}

// Populate builds a template item whose texture is rendered by the engine
func (e *Engine) Populate(t *ItemTemplate, components map[string]item.Item) *Item {
	it := t.Populate(components)
	it.SetTexture(&renderedTexture{engine: e, item: it})
	return it
}

type renderedTexture struct {
	engine *Engine
	item   *Item
}

func (t *renderedTexture) Image(ctx context.Context) (image.Image, error) {
	return t.engine.Render(ctx, t.item)
}

// Render composites the texture of it. Every filled part draws its primary
// image {part}:{ident}.png, or the part's fallback when the primary cannot be
// opened, through the mask cut from template.png. Parts are drawn in sorted
// order. A missing mask or a part with neither image fails the whole render.
func (e *Engine) Render(ctx context.Context, it *Item) (*image.NRGBA, error) {
	start := e.clock.Now()
	key := renderKey(it)

	if cached, ok := e.renders.Get(key); ok {
		e.recorder.TemplateRender(metrics.ResultCached, e.clock.Now().Sub(start))
		return cloneNRGBA(cached), nil
	}

	img, err := e.render(ctx, it)
	if err != nil {
		e.recorder.TemplateRender(metrics.ResultError, e.clock.Now().Sub(start))
		logger.FromContext(ctx).Error("failed to render template texture",
			"item", it.Ident(),
			"error", err)
		return nil, err
	}

	e.renders.Add(key, img)
	e.recorder.TemplateRender(metrics.ResultOK, e.clock.Now().Sub(start))
	return cloneNRGBA(img), nil
}

func (e *Engine) render(ctx context.Context, it *Item) (*image.NRGBA, error) {
	tmpl := it.Template()

	ref, err := e.mask(ctx, tmpl)
	if err != nil {
		return nil, err
	}

	components := it.Components()
	parts := make([]string, 0, len(components))
	for part := range components {
		if _, ok := tmpl.Components[part]; !ok {
			logger.FromContext(ctx).Warn("component has no mask colour",
				"template", tmpl.DataName,
				"component", part)
			continue
		}
		parts = append(parts, part)
	}
	sort.Strings(parts)

	images := make([]image.Image, len(parts))
	g, gctx := errgroup.WithContext(ctx)
	for i, part := range parts {
		g.Go(func() error {
			img, err := e.componentImage(gctx, tmpl, part, components[part].Ident())
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	layers := make([]Layer, len(parts))
	for i, part := range parts {
		layers[i] = Layer{Part: part, Mask: NewMask(ref, tmpl.Components[part]), Image: images[i]}
	}
	return Composite(e.size, layers), nil
}

func (e *Engine) mask(ctx context.Context, tmpl *ItemTemplate) (image.Image, error) {
	p := tmpl.MaskPath()
	if ref, ok := e.masks.Get(p); ok {
		return ref, nil
	}
	ref, err := e.store.OpenImage(ctx, p)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeTextureComposite, "failed to open mask for %s", tmpl.DataName)
	}
	e.masks.Add(p, ref)
	return ref, nil
}

func (e *Engine) componentImage(ctx context.Context, tmpl *ItemTemplate, part, ident string) (image.Image, error) {
	primary := ComponentImagePath(tmpl.Folder, part, ident)
	img, err := e.store.OpenImage(ctx, primary)
	if err == nil {
		return img, nil
	}

	fallback, ok := tmpl.Fallback[part]
	if !ok {
		return nil, errors.WrapWithCodef(err, errors.CodeTextureComposite, "no image or fallback for %s:%s", part, ident)
	}
	e.recorder.TextureFallback()
	logger.FromContext(ctx).Debug("using fallback component image",
		"component", part,
		"item", ident,
		"fallback", fallback)

	img, err = e.store.OpenImage(ctx, fallback)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeTextureComposite, "failed to open fallback for %s:%s", part, ident)
	}
	return img, nil
}

// Purge drops every cached mask and texture
func (e *Engine) Purge() {
	e.masks.Purge()
	e.renders.Purge()
}

func renderKey(it *Item) string {
	components := it.Components()
	pairs := make([]string, 0, len(components))
	for part, c := range components {
		pairs = append(pairs, part+"="+c.Ident())
	}
	sort.Strings(pairs)
	return it.Template().Folder + "?" + strings.Join(pairs, "&")
}
