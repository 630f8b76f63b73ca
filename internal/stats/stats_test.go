package stats_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ducttape-items/internal/entities/attribute"
	"github.com/KirkDiggler/ducttape-items/internal/errors"
	"github.com/KirkDiggler/ducttape-items/internal/stats"
)

type BasicStatsTestSuite struct {
	suite.Suite
	store *stats.Basic
	base  attribute.Attribute
}

func TestBasicStatsSuite(t *testing.T) {
	suite.Run(t, new(BasicStatsTestSuite))
}

func (s *BasicStatsTestSuite) SetupTest() {
	s.base = attribute.New(attribute.Display("🪨"), 0, attribute.Set(50))
	s.store = stats.NewBuilder().
		WithAttribute(attribute.Durability, s.base).
		Build()
}

func (s *BasicStatsTestSuite) TestPushThenGetOne() {
	entry := attribute.New(attribute.Display("oil"), 3, attribute.Multiply(1.2))
	s.store.Push(attribute.Durability, entry)

	got, err := s.store.GetOne(attribute.Durability, entry.ID)
	s.Require().NoError(err)
	s.Equal(entry, got)
}

func (s *BasicStatsTestSuite) TestRemoveThenGetOneFails() {
	s.store.Remove(attribute.Durability, s.base.ID)

	_, err := s.store.GetOne(attribute.Durability, s.base.ID)
	s.Error(err)
	s.True(errors.IsNotFound(err))

	all, err := s.store.GetAll(attribute.Durability)
	s.NoError(err)
	s.Empty(all)
}

func (s *BasicStatsTestSuite) TestAbsentKind() {
	_, err := s.store.GetAll(attribute.Reach)
	s.Error(err)
	s.True(errors.Is(err, stats.ErrUnknownKind))
	s.True(errors.IsUnknownAttributeKind(err))

	_, err = s.store.GetOne(attribute.Reach, uuid.New())
	s.True(errors.IsUnknownAttributeKind(err))

	s.Empty(s.store.Entries(attribute.Reach))
	s.False(s.store.Has(attribute.Reach))
}

func (s *BasicStatsTestSuite) TestPushKeepsPrioritySorted() {
	late := attribute.New(attribute.Hidden(), 8, attribute.Add(-10))
	early := attribute.New(attribute.Hidden(), 2, attribute.Add(10))
	tie := attribute.New(attribute.Hidden(), 2, attribute.Add(1))

	s.store.Push(attribute.Durability, late)
	s.store.Push(attribute.Durability, early)
	s.store.Push(attribute.Durability, tie)

	all, err := s.store.GetAll(attribute.Durability)
	s.Require().NoError(err)
	s.Equal([]attribute.Attribute{s.base, early, tie, late}, all)
}

func (s *BasicStatsTestSuite) TestPushMany() {
	s.store.PushMany(attribute.Map{
		attribute.Reach:      {attribute.New(attribute.Hidden(), 0, attribute.Set(5))},
		attribute.Durability: {attribute.New(attribute.Hidden(), 1, attribute.Add(5))},
	})

	s.True(s.store.Has(attribute.Reach))
	s.Len(s.store.Entries(attribute.Durability), 2)
}

func (s *BasicStatsTestSuite) TestSet() {
	testCases := []struct {
		name      string
		id        func() uuid.UUID
		wantValue float64
	}{
		{
			name:      "replaces matching id",
			id:        func() uuid.UUID { return s.base.ID },
			wantValue: 75,
		},
		{
			name:      "unknown id is ignored",
			id:        uuid.New,
			wantValue: 50,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			replacement := attribute.New(attribute.Display("🪨"), 0, attribute.Set(75))
			s.store.Set(attribute.Durability, tc.id(), replacement)

			all := s.store.Entries(attribute.Durability)
			s.Require().Len(all, 1)
			s.Equal(tc.wantValue, all[0].Modifier.Value)
		})
	}
}

func (s *BasicStatsTestSuite) TestSetOnAbsentKindIsNoop() {
	s.store.Set(attribute.Weight, uuid.New(), s.base)
	s.False(s.store.Has(attribute.Weight))
}

func (s *BasicStatsTestSuite) TestSetAllReplacesList() {
	a := attribute.New(attribute.Hidden(), 5, attribute.Set(1))
	b := attribute.New(attribute.Hidden(), 1, attribute.Set(2))
	s.store.SetAll(attribute.Durability, []attribute.Attribute{a, b})

	s.Equal([]attribute.Attribute{b, a}, s.store.Entries(attribute.Durability))
}

func (s *BasicStatsTestSuite) TestRemoveAll() {
	s.store.RemoveAll(attribute.Durability)

	s.False(s.store.Has(attribute.Durability))
	_, err := s.store.GetAll(attribute.Durability)
	s.True(errors.IsUnknownAttributeKind(err))
}

func (s *BasicStatsTestSuite) TestGetEverythingIsACopy() {
	everything := s.store.GetEverything()
	everything[attribute.Durability][0].Priority = 200
	delete(everything, attribute.Durability)

	got, err := s.store.GetOne(attribute.Durability, s.base.ID)
	s.Require().NoError(err)
	s.Equal(uint8(0), got.Priority)
}

func (s *BasicStatsTestSuite) TestCloneIsIndependent() {
	clone := s.store.Clone()
	clone.RemoveAll(attribute.Durability)

	s.True(s.store.Has(attribute.Durability))
}

func (s *BasicStatsTestSuite) TestBuilderWithAttributes() {
	entries := []attribute.Attribute{
		attribute.New(attribute.Hidden(), 4, attribute.Multiply(2)),
		attribute.New(attribute.Hidden(), 0, attribute.Set(3)),
	}
	store := stats.NewBuilder().
		WithAttributes(attribute.Agility, entries).
		WithMap(attribute.Map{attribute.Weight: {attribute.New(attribute.Hidden(), 0, attribute.Set(1))}}).
		Build()

	all := store.Entries(attribute.Agility)
	s.Equal(entries[1], all[0])
	s.Equal(entries[0], all[1])
	s.True(store.Has(attribute.Weight))
}
