package mechdraft_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/redis"
	mechdraft "github.com/SwiggitySwerve/megamek-web-sub007/internal/repositories/mech_draft"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client redis.Client
	mr     *miniredis.Miniredis
	repo   mechdraft.Repository
	ctx    context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())
	s.repo = mechdraft.NewRedisRepository(s.client, time.Hour)
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) newDraft(id, owner string, updatedAt int64) *mech.Draft {
	return &mech.Draft{
		ID:            id,
		OwnerID:       owner,
		Name:          "Hunchback HBK-4G",
		Tonnage:       50,
		TechBase:      mech.TechBaseInnerSphere,
		TechBaseMode:  mech.TechBaseModeInnerSphere,
		EngineType:    mech.EngineStandard,
		EngineRating:  200,
		WalkMP:        4,
		RunMP:         6,
		StructureType: mech.StructureStandard,
		GyroType:      mech.GyroStandard,
		CockpitType:   mech.CockpitStandard,
		ArmorType:     mech.ArmorStandard,
		HeatSinkType:  mech.HeatSinkSingle,
		HeatSinkCount: 13,
		Armor: mech.ArmorAllocation{
			mech.LocationHead:        {Front: 9},
			mech.LocationCenterTorso: {Front: 26, Rear: 5},
		},
		Equipment: []mech.MountedEquipment{
			{EquipmentID: "ac-20", Location: mech.LocationRightTorso, SlotIndex: 0},
		},
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	draft := s.newDraft("draft-1", "pilot-1", 100)

	out, err := s.repo.Create(s.ctx, mechdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)
	s.Equal(draft, out.Draft)

	got, err := s.repo.Get(s.ctx, mechdraft.GetInput{ID: "draft-1"})
	s.Require().NoError(err)
	s.Equal(draft, got.Draft)

	s.True(s.mr.Exists("mech_draft:draft-1"))
	s.Equal(time.Hour, s.mr.TTL("mech_draft:draft-1"))
	members, err := s.mr.Members("mech_draft:owner:pilot-1")
	s.Require().NoError(err)
	s.Equal([]string{"draft-1"}, members)
}

func (s *RedisRepositoryTestSuite) TestCreateErrors() {
	s.Run("nil draft", func() {
		_, err := s.repo.Create(s.ctx, mechdraft.CreateInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("empty id", func() {
		_, err := s.repo.Create(s.ctx, mechdraft.CreateInput{Draft: &mech.Draft{}})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("duplicate id", func() {
		draft := s.newDraft("dup", "", 1)
		_, err := s.repo.Create(s.ctx, mechdraft.CreateInput{Draft: draft})
		s.Require().NoError(err)

		_, err = s.repo.Create(s.ctx, mechdraft.CreateInput{Draft: draft})
		s.True(errors.IsAlreadyExists(err))
	})
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, mechdraft.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, mechdraft.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	draft := s.newDraft("draft-1", "pilot-1", 100)
	_, err := s.repo.Create(s.ctx, mechdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	s.mr.FastForward(30 * time.Minute)

	changed := *draft
	changed.Name = "Hunchback HBK-4P"
	changed.OwnerID = "pilot-2"
	changed.UpdatedAt = 200

	_, err = s.repo.Update(s.ctx, mechdraft.UpdateInput{Draft: &changed})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, mechdraft.GetInput{ID: "draft-1"})
	s.Require().NoError(err)
	s.Equal("Hunchback HBK-4P", got.Draft.Name)
	s.Equal(time.Hour, s.mr.TTL("mech_draft:draft-1"))

	old, err := s.repo.ListByOwner(s.ctx, mechdraft.ListByOwnerInput{OwnerID: "pilot-1"})
	s.Require().NoError(err)
	s.Empty(old.Drafts)

	moved, err := s.repo.ListByOwner(s.ctx, mechdraft.ListByOwnerInput{OwnerID: "pilot-2"})
	s.Require().NoError(err)
	s.Len(moved.Drafts, 1)
}

func (s *RedisRepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, mechdraft.UpdateInput{Draft: s.newDraft("ghost", "", 1)})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("mech_draft:ghost"))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, mechdraft.CreateInput{Draft: s.newDraft("draft-1", "pilot-1", 1)})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, mechdraft.DeleteInput{ID: "draft-1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, mechdraft.GetInput{ID: "draft-1"})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("mech_draft:owner:pilot-1"))

	_, err = s.repo.Delete(s.ctx, mechdraft.DeleteInput{ID: "draft-1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByOwner() {
	for _, d := range []*mech.Draft{
		s.newDraft("a", "pilot-1", 10),
		s.newDraft("b", "pilot-1", 30),
		s.newDraft("c", "pilot-1", 20),
		s.newDraft("d", "pilot-2", 40),
	} {
		_, err := s.repo.Create(s.ctx, mechdraft.CreateInput{Draft: d})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListByOwner(s.ctx, mechdraft.ListByOwnerInput{OwnerID: "pilot-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Drafts, 3)
	s.Equal("b", out.Drafts[0].ID)
	s.Equal("c", out.Drafts[1].ID)
	s.Equal("a", out.Drafts[2].ID)

	limited, err := s.repo.ListByOwner(s.ctx, mechdraft.ListByOwnerInput{OwnerID: "pilot-1", Limit: 1})
	s.Require().NoError(err)
	s.Len(limited.Drafts, 1)

	none, err := s.repo.ListByOwner(s.ctx, mechdraft.ListByOwnerInput{OwnerID: "pilot-3"})
	s.Require().NoError(err)
	s.NotNil(none.Drafts)
	s.Empty(none.Drafts)

	_, err = s.repo.ListByOwner(s.ctx, mechdraft.ListByOwnerInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestListByOwnerPrunesExpired() {
	_, err := s.repo.Create(s.ctx, mechdraft.CreateInput{Draft: s.newDraft("a", "pilot-1", 1)})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, mechdraft.CreateInput{Draft: s.newDraft("b", "pilot-1", 2)})
	s.Require().NoError(err)

	s.mr.Del("mech_draft:a")

	out, err := s.repo.ListByOwner(s.ctx, mechdraft.ListByOwnerInput{OwnerID: "pilot-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Drafts, 1)
	s.Equal("b", out.Drafts[0].ID)

	members, err := s.mr.Members("mech_draft:owner:pilot-1")
	s.Require().NoError(err)
	s.Equal([]string{"b"}, members)
}

func (s *RedisRepositoryTestSuite) TestStorageFailure() {
	s.mr.SetError("ERR storage offline")
	defer s.mr.SetError("")

	_, err := s.repo.Get(s.ctx, mechdraft.GetInput{ID: "x"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}
