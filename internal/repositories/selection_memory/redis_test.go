package selectionmemory_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/techbase"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
	selectionmemory "github.com/SwiggitySwerve/megamek-web-sub007/internal/repositories/selection_memory"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo selectionmemory.Repository
	ctx  context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.repo = selectionmemory.NewRedisRepository(client, 2*time.Hour)
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TestGetUnknownSessionIsEmpty() {
	out, err := s.repo.Get(s.ctx, selectionmemory.GetInput{SessionID: "fresh"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Memory)
	s.Equal(0, out.Memory.Len())
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	memory := techbase.NewMemory()
	memory.Put(mech.CategoryEngine, mech.TechBaseClan, string(mech.EngineXLClan))
	memory.Put(mech.CategoryEngine, mech.TechBaseInnerSphere, string(mech.EngineLight))
	memory.Put(mech.CategoryHeatSink, mech.TechBaseClan, string(mech.HeatSinkDoubleClan))

	_, err := s.repo.Save(s.ctx, selectionmemory.SaveInput{SessionID: "s1", Memory: memory})
	s.Require().NoError(err)

	s.Equal("XL_CLAN", s.mr.HGet("selection_memory:s1", "ENGINE|CLAN"))
	s.Equal(2*time.Hour, s.mr.TTL("selection_memory:s1"))

	out, err := s.repo.Get(s.ctx, selectionmemory.GetInput{SessionID: "s1"})
	s.Require().NoError(err)
	s.Equal(memory.Entries(), out.Memory.Entries())
}

func (s *RedisRepositoryTestSuite) TestSaveReplaces() {
	first := techbase.NewMemory()
	first.Put(mech.CategoryGyro, mech.TechBaseInnerSphere, string(mech.GyroXL))
	_, err := s.repo.Save(s.ctx, selectionmemory.SaveInput{SessionID: "s1", Memory: first})
	s.Require().NoError(err)

	second := techbase.NewMemory()
	second.Put(mech.CategoryArmor, mech.TechBaseClan, string(mech.ArmorFerroFibrousClan))
	_, err = s.repo.Save(s.ctx, selectionmemory.SaveInput{SessionID: "s1", Memory: second})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, selectionmemory.GetInput{SessionID: "s1"})
	s.Require().NoError(err)
	s.Equal(second.Entries(), out.Memory.Entries())
}

func (s *RedisRepositoryTestSuite) TestSaveEmptyClears() {
	memory := techbase.NewMemory()
	memory.Put(mech.CategoryGyro, mech.TechBaseInnerSphere, string(mech.GyroXL))
	_, err := s.repo.Save(s.ctx, selectionmemory.SaveInput{SessionID: "s1", Memory: memory})
	s.Require().NoError(err)

	_, err = s.repo.Save(s.ctx, selectionmemory.SaveInput{SessionID: "s1", Memory: nil})
	s.Require().NoError(err)
	s.False(s.mr.Exists("selection_memory:s1"))
}

func (s *RedisRepositoryTestSuite) TestGetSkipsUnparseableFields() {
	s.mr.HSet("selection_memory:s1", "ENGINE|CLAN", "XL_CLAN")
	s.mr.HSet("selection_memory:s1", "legacy", "x")
	s.mr.HSet("selection_memory:s1", "ENGINE|STAR_LEAGUE", "XL")

	out, err := s.repo.Get(s.ctx, selectionmemory.GetInput{SessionID: "s1"})
	s.Require().NoError(err)
	s.Equal(1, out.Memory.Len())
}

func (s *RedisRepositoryTestSuite) TestExpiry() {
	memory := techbase.NewMemory()
	memory.Put(mech.CategoryGyro, mech.TechBaseInnerSphere, string(mech.GyroXL))
	_, err := s.repo.Save(s.ctx, selectionmemory.SaveInput{SessionID: "s1", Memory: memory})
	s.Require().NoError(err)

	s.mr.FastForward(3 * time.Hour)

	out, err := s.repo.Get(s.ctx, selectionmemory.GetInput{SessionID: "s1"})
	s.Require().NoError(err)
	s.Equal(0, out.Memory.Len())
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	memory := techbase.NewMemory()
	memory.Put(mech.CategoryGyro, mech.TechBaseInnerSphere, string(mech.GyroXL))
	_, err := s.repo.Save(s.ctx, selectionmemory.SaveInput{SessionID: "s1", Memory: memory})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, selectionmemory.DeleteInput{SessionID: "s1"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("selection_memory:s1"))

	_, err = s.repo.Delete(s.ctx, selectionmemory.DeleteInput{SessionID: "s1"})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestEmptySessionID() {
	_, err := s.repo.Get(s.ctx, selectionmemory.GetInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.Save(s.ctx, selectionmemory.SaveInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.Delete(s.ctx, selectionmemory.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}
