package attribute_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ducttape-items/internal/entities/attribute"
	"github.com/KirkDiggler/ducttape-items/internal/errors"
	"github.com/KirkDiggler/ducttape-items/internal/text"
)

type AttributeTestSuite struct {
	suite.Suite
}

func TestAttributeSuite(t *testing.T) {
	suite.Run(t, new(AttributeTestSuite))
}

func (s *AttributeTestSuite) TestClassification() {
	testCases := []struct {
		name     string
		modifier attribute.Modifier
		expected attribute.Classification
		color    string
	}{
		{"multiply above one", attribute.Multiply(1.5), attribute.Buff, "green"},
		{"multiply by one", attribute.Multiply(1), attribute.Neutral, "yellow"},
		{"multiply below one", attribute.Multiply(0.75), attribute.Debuff, "red"},
		{"positive add", attribute.Add(10), attribute.Buff, "green"},
		{"zero add", attribute.Add(0), attribute.Neutral, "yellow"},
		{"negative add", attribute.Add(-10), attribute.Debuff, "red"},
		{"set is neutral", attribute.Set(-100), attribute.Neutral, "yellow"},
		{"nan add", attribute.Add(math.NaN()), attribute.Unclassified, "white"},
	}

	colors := map[string]interface{}{
		"green":  text.Green,
		"yellow": text.Yellow,
		"red":    text.Red,
		"white":  text.White,
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.modifier.Classify())
			s.Equal(colors[tc.color], tc.modifier.Color())
		})
	}
}

func (s *AttributeTestSuite) TestModifierString() {
	s.Equal(" x 1.5", attribute.Multiply(1.5).String())
	s.Equal(" + 10", attribute.Add(10).String())
	s.Equal(" - 10", attribute.Add(-10).String())
	s.Equal(" - 0", attribute.Add(0).String())
	s.Equal(" = 100", attribute.Set(100).String())
}

func (s *AttributeTestSuite) TestApply() {
	s.Equal(15.0, attribute.Multiply(1.5).Apply(10))
	s.Equal(20.0, attribute.Add(10).Apply(10))
	s.Equal(3.0, attribute.Set(3).Apply(10))
}

func (s *AttributeTestSuite) TestAttributeText() {
	shown := attribute.New(attribute.Display("🪨"), 0, attribute.Set(50))
	s.Equal(" = 50 (🪨)", shown.Text().String())

	hidden := attribute.New(attribute.Hidden(), 0, attribute.Set(50))
	s.Equal(" = 50", hidden.Text().String())
	s.True(hidden.Reason.IsHidden())
	s.NotEqual(shown.ID, hidden.ID)
}

func (s *AttributeTestSuite) TestParseKind() {
	k, err := attribute.ParseKind("durability")
	s.Require().NoError(err)
	s.Equal(attribute.Durability, k)

	_, err = attribute.ParseKind("mana")
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *AttributeTestSuite) TestKindTextRoundTripInJSONKeys() {
	m := map[attribute.Kind]int{attribute.Reach: 1}
	data, err := json.Marshal(m)
	s.Require().NoError(err)
	s.JSONEq(`{"Reach":1}`, string(data))

	var back map[attribute.Kind]int
	s.Require().NoError(json.Unmarshal(data, &back))
	s.Equal(m, back)
}

func (s *AttributeTestSuite) TestGlyphs() {
	s.Equal("⚡", attribute.Durability.Glyph())
	s.Equal("🏹", attribute.Reach.Glyph())
	s.Len(attribute.AllKinds, 6)
}

func (s *AttributeTestSuite) TestSortByPriorityIsStable() {
	a := attribute.New(attribute.Display("a"), 2, attribute.Add(1))
	b := attribute.New(attribute.Display("b"), 0, attribute.Add(1))
	c := attribute.New(attribute.Display("c"), 2, attribute.Add(1))
	d := attribute.New(attribute.Display("d"), 1, attribute.Add(1))

	entries := []attribute.Attribute{a, b, c, d}
	attribute.SortByPriority(entries)

	s.Equal([]attribute.Attribute{b, d, a, c}, entries)
}

func (s *AttributeTestSuite) TestMapCloneAndExtend() {
	base := attribute.Map{
		attribute.Durability: {attribute.New(attribute.Hidden(), 0, attribute.Set(1))},
	}
	clone := base.Clone()
	clone[attribute.Durability][0].Priority = 9
	s.Equal(uint8(0), base[attribute.Durability][0].Priority)

	base.Extend(attribute.Map{
		attribute.Durability: {attribute.New(attribute.Hidden(), 1, attribute.Add(1))},
		attribute.Weight:     {attribute.New(attribute.Hidden(), 0, attribute.Set(5))},
	})
	s.Len(base[attribute.Durability], 2)
	s.Equal(3, base.Len())
	s.Equal([]attribute.Kind{attribute.Durability, attribute.Weight}, base.Kinds())
}
