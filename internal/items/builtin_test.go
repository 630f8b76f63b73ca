package items_test

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	assetsmock "github.com/KirkDiggler/ducttape-items/internal/assets/mock"
	"github.com/KirkDiggler/ducttape-items/internal/engine"
	"github.com/KirkDiggler/ducttape-items/internal/entities/attribute"
	"github.com/KirkDiggler/ducttape-items/internal/entities/item"
	"github.com/KirkDiggler/ducttape-items/internal/items"
)

type recordingRegistry map[string]item.Item

func (r recordingRegistry) Register(name string, it item.Item) { r[name] = it }

type BuiltinTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *assetsmock.MockStore
}

func TestBuiltinSuite(t *testing.T) {
	suite.Run(t, new(BuiltinTestSuite))
}

func (s *BuiltinTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = assetsmock.NewMockStore(s.ctrl)
}

func (s *BuiltinTestSuite) TestRockAndRopeValues() {
	testCases := []struct {
		name     string
		item     item.Item
		display  string
		expected map[attribute.Kind]float64
	}{
		{
			name:    "rock",
			item:    items.NewRock(),
			display: "🪨",
			expected: map[attribute.Kind]float64{
				attribute.Sharpness: 2, attribute.Durability: 50, attribute.Weight: 5,
				attribute.Strength: 10, attribute.Agility: 5, attribute.Reach: 5,
			},
		},
		{
			name:    "rope",
			item:    items.NewRope(nil),
			display: "🪢",
			expected: map[attribute.Kind]float64{
				attribute.Sharpness: 0, attribute.Durability: 150, attribute.Weight: 5,
				attribute.Strength: 10, attribute.Agility: 5, attribute.Reach: 10,
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.name, tc.item.Ident())
			s.Equal(tc.display, tc.item.Name())

			everything := tc.item.Stats().GetEverything()
			s.Len(everything, 6)
			for _, entries := range everything {
				s.Require().Len(entries, 1)
				s.Equal(uint8(0), entries[0].Priority)
				s.Equal(attribute.Display(tc.display), entries[0].Reason)
			}

			s.Equal(tc.expected, engine.NewAggregator(everything).AggregateAll())
		})
	}
}

func (s *BuiltinTestSuite) TestRockBreakdown() {
	agg := engine.NewAggregator(items.NewRock().Stats().GetEverything())

	s.Equal(" = 50 (🪨)\n = 50", agg.Breakdown(attribute.Durability).String())
}

func (s *BuiltinTestSuite) TestDevTablet() {
	tablet := items.NewDevTablet(nil)

	s.Equal("Tablet", tablet.Name())
	s.Equal("dev_tablet", tablet.Ident())
	s.Empty(tablet.Stats().GetEverything())
}

func (s *BuiltinTestSuite) TestStatsAreIsolatedCopies() {
	rock := items.NewRock()
	snapshot := rock.Stats()
	rock.MutableStats().RemoveAll(attribute.Reach)

	_, err := snapshot.GetAll(attribute.Reach)
	s.NoError(err)
	_, err = rock.Stats().GetAll(attribute.Reach)
	s.Error(err)
}

func (s *BuiltinTestSuite) TestRopeTextureLoadsFromAssets() {
	ctx := context.Background()
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	s.store.EXPECT().
		OpenImage(ctx, "res://assets/item/rope/rope.png").
		Return(img, nil)

	got, err := items.NewRope(s.store).Texture().Image(ctx)
	s.Require().NoError(err)
	s.Same(img, got)
}

func (s *BuiltinTestSuite) TestRockHasNoTexture() {
	img, err := items.NewRock().Texture().Image(context.Background())
	s.NoError(err)
	s.Nil(img)
}

func (s *BuiltinTestSuite) TestRegisterDefaults() {
	reg := recordingRegistry{}
	items.RegisterDefaults(reg, s.store)

	s.Len(reg, 4)
	for _, name := range []string{"rock", "air", "rope", "dev_tablet"} {
		s.Contains(reg, name)
		s.Equal(name, reg[name].Ident())
	}
	s.True(item.IsAir(reg["air"]))
}
