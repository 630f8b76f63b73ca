package template_test

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ducttape-items/internal/assets"
	assetsmock "github.com/KirkDiggler/ducttape-items/internal/assets/mock"
	"github.com/KirkDiggler/ducttape-items/internal/entities/attribute"
	"github.com/KirkDiggler/ducttape-items/internal/entities/item"
	"github.com/KirkDiggler/ducttape-items/internal/errors"
	"github.com/KirkDiggler/ducttape-items/internal/items"
	"github.com/KirkDiggler/ducttape-items/internal/metrics"
	metricsmock "github.com/KirkDiggler/ducttape-items/internal/metrics/mock"
	"github.com/KirkDiggler/ducttape-items/internal/pkg/clock"
	"github.com/KirkDiggler/ducttape-items/internal/template"
)

const fixtureSize = 4

var (
	maskShaft = color.NRGBA{R: 0xff, A: 0xff}
	maskTip   = color.NRGBA{B: 0xff, A: 0xff}
	white     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	green     = color.NRGBA{G: 0xff, A: 0xff}
	yellow    = color.NRGBA{R: 0xff, G: 0xff, A: 0xff}
	purple    = color.NRGBA{R: 0x80, B: 0x80, A: 0xff}
)

type EngineTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	recorder *metricsmock.MockRecorder
	root     string
	engine   *template.Engine
	ctx      context.Context
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.recorder = metricsmock.NewMockRecorder(s.ctrl)
	s.ctx = context.Background()
	s.root = s.T().TempDir()

	spear := filepath.Join(s.root, "item", "spear")
	s.Require().NoError(os.MkdirAll(spear, 0o755))
	s.Require().NoError(os.WriteFile(filepath.Join(spear, template.DefinitionTOML), []byte(spearTOML), 0o644))

	// left column pair is the shaft, right pair the tip, the rest unmasked
	s.writePNG(filepath.Join(spear, template.MaskImage), func(x, _ int) color.NRGBA {
		switch {
		case x < 2:
			return maskShaft
		case x == 3:
			return maskTip
		default:
			return white
		}
	})
	s.writePNG(filepath.Join(spear, "shaft:rock.png"), solid(green))
	s.writePNG(filepath.Join(spear, "tip:rock.png"), solid(yellow))
	s.writePNG(filepath.Join(spear, "tip:rope.png"), solid(purple))

	store, err := assets.NewFileStore(&assets.Config{Root: s.root})
	s.Require().NoError(err)

	s.engine, err = template.NewEngine(&template.Config{
		Store:   store,
		Size:    fixtureSize,
		Metrics: s.recorder,
		Clock:   &clock.Fixed{At: time.Unix(0, 0)},
	})
	s.Require().NoError(err)
}

func (s *EngineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func solid(c color.NRGBA) func(x, y int) color.NRGBA {
	return func(int, int) color.NRGBA { return c }
}

func (s *EngineTestSuite) writePNG(p string, at func(x, y int) color.NRGBA) {
	img := image.NewNRGBA(image.Rect(0, 0, fixtureSize, fixtureSize))
	for y := 0; y < fixtureSize; y++ {
		for x := 0; x < fixtureSize; x++ {
			img.SetNRGBA(x, y, at(x, y))
		}
	}
	f, err := os.Create(p)
	s.Require().NoError(err)
	defer f.Close()
	s.Require().NoError(png.Encode(f, img))
}

func (s *EngineTestSuite) TestNewEngineValidation() {
	_, err := template.NewEngine(nil)
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = template.NewEngine(&template.Config{})
	s.True(errors.IsInvalidArgument(err))

	e, err := template.NewEngine(&template.Config{Store: assetsmock.NewMockStore(s.ctrl)})
	s.Require().NoError(err)
	s.Equal(template.DefaultSize, e.Size())
}

func (s *EngineTestSuite) TestLoad() {
	tmpl, err := s.engine.Load(s.ctx, "spear")
	s.Require().NoError(err)
	s.Equal("spear", tmpl.DataName)
	s.Equal(template.Folder("spear"), tmpl.Folder)
}

func (s *EngineTestSuite) TestLoadMissingTemplate() {
	_, err := s.engine.Load(s.ctx, "halberd")
	s.Error(err)
	s.True(errors.IsTemplateLoad(err))
	s.True(errors.Is(err, template.ErrTemplateLoad))
}

func (s *EngineTestSuite) TestLoadMalformedTemplate() {
	dir := filepath.Join(s.root, "item", "broken")
	s.Require().NoError(os.MkdirAll(dir, 0o755))
	s.Require().NoError(os.WriteFile(filepath.Join(dir, template.DefinitionTOML), []byte("data_name = "), 0o644))

	_, err := s.engine.Load(s.ctx, "broken")
	s.True(errors.IsTemplateLoad(err))
}

func (s *EngineTestSuite) TestRenderCompositesMaskedComponents() {
	tmpl, err := s.engine.Load(s.ctx, "spear")
	s.Require().NoError(err)
	rock := items.NewRock()
	spear := s.engine.Populate(tmpl, map[string]item.Item{"shaft": rock, "tip": rock})

	s.recorder.EXPECT().TemplateRender(metrics.ResultOK, time.Duration(0))

	img, err := spear.Texture().Image(s.ctx)
	s.Require().NoError(err)
	s.Equal(image.Rect(0, 0, fixtureSize, fixtureSize), img.Bounds())

	out := img.(*image.NRGBA)
	for y := 0; y < fixtureSize; y++ {
		s.Equal(green, out.NRGBAAt(0, y))
		s.Equal(green, out.NRGBAAt(1, y))
		s.Equal(color.NRGBA{}, out.NRGBAAt(2, y))
		s.Equal(yellow, out.NRGBAAt(3, y))
	}
}

func (s *EngineTestSuite) TestRenderUsesFallback() {
	tmpl, err := s.engine.Load(s.ctx, "spear")
	s.Require().NoError(err)
	// no tip:dev_tablet.png, so the tip falls back to tip:rock.png
	spear := s.engine.Populate(tmpl, map[string]item.Item{
		"shaft": items.NewRock(),
		"tip":   items.NewDevTablet(nil),
	})

	s.recorder.EXPECT().TextureFallback()
	s.recorder.EXPECT().TemplateRender(metrics.ResultOK, gomock.Any())

	img, err := s.engine.Render(s.ctx, spear)
	s.Require().NoError(err)
	s.Equal(yellow, img.NRGBAAt(3, 0))
}

func (s *EngineTestSuite) TestRenderPrefersPrimary() {
	tmpl, err := s.engine.Load(s.ctx, "spear")
	s.Require().NoError(err)
	spear := s.engine.Populate(tmpl, map[string]item.Item{
		"shaft": items.NewRock(),
		"tip":   items.NewRope(nil),
	})

	s.recorder.EXPECT().TemplateRender(metrics.ResultOK, gomock.Any())

	img, err := s.engine.Render(s.ctx, spear)
	s.Require().NoError(err)
	s.Equal(purple, img.NRGBAAt(3, 2))
}

func (s *EngineTestSuite) TestRenderSkipsPartWithoutMaskColour() {
	tmpl, err := s.engine.Load(s.ctx, "spear")
	s.Require().NoError(err)
	// grip has neither a mask colour nor an image
	spear := s.engine.Populate(tmpl, map[string]item.Item{
		"shaft": items.NewRock(),
		"tip":   items.NewRock(),
		"grip":  items.NewRope(nil),
	})

	s.recorder.EXPECT().TemplateRender(metrics.ResultOK, gomock.Any())

	img, err := s.engine.Render(s.ctx, spear)
	s.Require().NoError(err)
	s.Equal(green, img.NRGBAAt(0, 0))
	s.Equal(color.NRGBA{}, img.NRGBAAt(2, 0))
	s.Equal(yellow, img.NRGBAAt(3, 0))
}

func (s *EngineTestSuite) TestRenderIsCached() {
	tmpl, err := s.engine.Load(s.ctx, "spear")
	s.Require().NoError(err)
	rock := items.NewRock()
	spear := s.engine.Populate(tmpl, map[string]item.Item{"shaft": rock, "tip": rock})

	gomock.InOrder(
		s.recorder.EXPECT().TemplateRender(metrics.ResultOK, gomock.Any()),
		s.recorder.EXPECT().TemplateRender(metrics.ResultCached, gomock.Any()),
	)

	first, err := s.engine.Render(s.ctx, spear)
	s.Require().NoError(err)
	first.SetNRGBA(0, 0, white)

	second, err := s.engine.Render(s.ctx, spear)
	s.Require().NoError(err)
	s.Equal(green, second.NRGBAAt(0, 0))
}

func (s *EngineTestSuite) TestRenderMissingMask() {
	s.Require().NoError(os.Remove(filepath.Join(s.root, "item", "spear", template.MaskImage)))
	tmpl, err := s.engine.Load(s.ctx, "spear")
	s.Require().NoError(err)
	rock := items.NewRock()
	spear := s.engine.Populate(tmpl, map[string]item.Item{"shaft": rock})

	s.recorder.EXPECT().TemplateRender(metrics.ResultError, gomock.Any())

	_, err = s.engine.Render(s.ctx, spear)
	s.Error(err)
	s.True(errors.IsTextureComposite(err))
	s.True(errors.Is(err, template.ErrTextureComposite))
}

func (s *EngineTestSuite) TestRenderMissingPrimaryWithoutFallback() {
	tmpl, err := s.engine.Load(s.ctx, "spear")
	s.Require().NoError(err)
	// the shaft has no fallback and there is no shaft:rope.png
	spear := s.engine.Populate(tmpl, map[string]item.Item{"shaft": items.NewRope(nil)})

	s.recorder.EXPECT().TemplateRender(metrics.ResultError, gomock.Any())

	_, err = s.engine.Render(s.ctx, spear)
	s.True(errors.IsTextureComposite(err))
}

func (s *EngineTestSuite) TestRenderMissingPrimaryAndFallback() {
	s.Require().NoError(os.Remove(filepath.Join(s.root, "item", "spear", "tip:rock.png")))
	tmpl, err := s.engine.Load(s.ctx, "spear")
	s.Require().NoError(err)
	spear := s.engine.Populate(tmpl, map[string]item.Item{"tip": items.NewDevTablet(nil)})

	s.recorder.EXPECT().TextureFallback()
	s.recorder.EXPECT().TemplateRender(metrics.ResultError, gomock.Any())

	_, err = s.engine.Render(s.ctx, spear)
	s.True(errors.IsTextureComposite(err))
}

func (s *EngineTestSuite) TestLoadFallsBackToYAML() {
	store := assetsmock.NewMockStore(s.ctrl)
	e, err := template.NewEngine(&template.Config{Store: store})
	s.Require().NoError(err)

	folder := template.Folder("spear")
	gomock.InOrder(
		store.EXPECT().ReadFile(s.ctx, folder+"/template.toml").
			Return(nil, errors.NotFound("missing")),
		store.EXPECT().ReadFile(s.ctx, folder+"/template.yaml").
			Return([]byte(spearYAML), nil),
	)

	tmpl, err := e.Load(s.ctx, "spear")
	s.Require().NoError(err)
	s.Equal(template.StrategyAverage, tmpl.Strategies[attribute.Durability])
}

func (s *EngineTestSuite) TestLoadStopsOnReadFailure() {
	store := assetsmock.NewMockStore(s.ctrl)
	e, err := template.NewEngine(&template.Config{Store: store})
	s.Require().NoError(err)

	store.EXPECT().ReadFile(s.ctx, template.Folder("spear")+"/template.toml").
		Return(nil, errors.Internal("disk on fire"))

	_, err = e.Load(s.ctx, "spear")
	s.True(errors.IsTemplateLoad(err))
}
