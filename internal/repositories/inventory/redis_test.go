package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ducttape-items/internal/errors"
	"github.com/KirkDiggler/ducttape-items/internal/pkg/clock"
	"github.com/KirkDiggler/ducttape-items/internal/redis"
	"github.com/KirkDiggler/ducttape-items/internal/repositories/inventory"
	"github.com/KirkDiggler/ducttape-items/internal/testutils"
	"github.com/KirkDiggler/ducttape-items/internal/testutils/builders"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redis.Client
	mr      *miniredis.Miniredis
	cleanup func()
	clock   *clock.Fixed
	repo    inventory.Repository
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.mr, s.cleanup = testutils.CreateTestRedisClientWithServer(s.T(), nil)
	s.clock = &clock.Fixed{At: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s.ctx = context.Background()

	repo, err := inventory.NewRedisRepository(&inventory.Config{
		Client: s.client,
		Clock:  s.clock,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepositoryValidation() {
	testCases := []struct {
		name string
		cfg  *inventory.Config
	}{
		{name: "nil config", cfg: nil},
		{name: "missing client", cfg: &inventory.Config{Clock: s.clock}},
		{name: "missing clock", cfg: &inventory.Config{Client: s.client}},
		{name: "negative ttl", cfg: &inventory.Config{Client: s.client, Clock: s.clock, TTL: -time.Second}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := inventory.NewRedisRepository(tc.cfg)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestSaveThenLoad() {
	snapshot := builders.NewSnapshotBuilder().
		WithID("player").
		WithSlot(0, "rock", 3).
		WithSlot(5, "spear", 1).
		Build()

	saved, err := s.repo.Save(s.ctx, inventory.SaveInput{Snapshot: snapshot})
	s.Require().NoError(err)
	s.Equal(s.clock.At, saved.Snapshot.SavedAt)
	s.True(snapshot.SavedAt.IsZero(), "input snapshot must not be modified")

	s.True(s.mr.Exists("inventory:player"))
	s.Equal(time.Hour, s.mr.TTL("inventory:player"))

	loaded, err := s.repo.Load(s.ctx, inventory.LoadInput{ID: "player"})
	s.Require().NoError(err)
	s.Equal(saved.Snapshot, loaded.Snapshot)
	s.Equal(inventory.LayoutSized, loaded.Snapshot.Layout)
	s.Equal(16, loaded.Snapshot.Size)
	s.Require().Len(loaded.Snapshot.Slots, 2)
	s.Equal(inventory.Slot{Index: 5, Item: "spear", Count: 1}, loaded.Snapshot.Slots[1])
}

func (s *RedisRepositoryTestSuite) TestSaveTTLOverride() {
	_, err := s.repo.Save(s.ctx, inventory.SaveInput{
		Snapshot: builders.NewSnapshotBuilder().WithID("chest").Unsized().Build(),
		TTL:      time.Minute,
	})
	s.Require().NoError(err)
	s.Equal(time.Minute, s.mr.TTL("inventory:chest"))
}

func (s *RedisRepositoryTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, inventory.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, inventory.SaveInput{Snapshot: builders.NewSnapshotBuilder().WithID("").Build()})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, inventory.SaveInput{
		Snapshot: builders.NewSnapshotBuilder().WithSlot(-1, "rock", 1).Build(),
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestLoadMissing() {
	_, err := s.repo.Load(s.ctx, inventory.LoadInput{ID: "nobody"})
	s.Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Load(s.ctx, inventory.LoadInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestLoadCorrupt() {
	s.Require().NoError(s.mr.Set("inventory:broken", "{not json"))

	_, err := s.repo.Load(s.ctx, inventory.LoadInput{ID: "broken"})
	s.Error(err)
	s.True(errors.IsInternal(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, inventory.SaveInput{Snapshot: builders.NewSnapshotBuilder().WithID("player").Build()})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, inventory.DeleteInput{ID: "player"})
	s.Require().NoError(err)
	s.True(out.Deleted)
	s.False(s.mr.Exists("inventory:player"))

	out, err = s.repo.Delete(s.ctx, inventory.DeleteInput{ID: "player"})
	s.Require().NoError(err)
	s.False(out.Deleted)
}

func (s *RedisRepositoryTestSuite) TestListPrunesExpired() {
	for _, id := range []string{"zed", "amy", "temp"} {
		ttl := time.Duration(0)
		if id == "temp" {
			ttl = time.Second
		}
		_, err := s.repo.Save(s.ctx, inventory.SaveInput{
			Snapshot: builders.NewSnapshotBuilder().WithID(id).Build(),
			TTL:      ttl,
		})
		s.Require().NoError(err)
	}
	s.mr.FastForward(2 * time.Second)

	out, err := s.repo.List(s.ctx, inventory.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"amy", "zed"}, out.IDs)

	members, err := s.mr.Members("inventory_index")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"amy", "zed"}, members)
}
