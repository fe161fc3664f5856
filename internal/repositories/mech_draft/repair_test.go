package mechdraft_test

import (
	mechdraft "github.com/SwiggitySwerve/megamek-web-sub007/internal/repositories/mech_draft"
)

func (s *RedisRepositoryTestSuite) TestFindCorruptedAndPurge() {
	for _, d := range []struct{ id, owner string }{{"good-1", "owner-a"}, {"good-2", "owner-b"}} {
		_, err := s.repo.Create(s.ctx, mechdraft.CreateInput{Draft: s.newDraft(d.id, d.owner, 100)})
		s.Require().NoError(err)
	}

	s.Require().NoError(s.mr.Set("mech_draft:broken", `{"id": "broken", "tonnage": `))
	s.Require().NoError(s.mr.Set("mech_draft:empty", `{"id": "empty"}`))
	s.Require().NoError(s.mr.Set("mech_draft:moved", `{"id": "elsewhere", "tonnage": 50}`))
	_, err := s.mr.SAdd("mech_draft:owner:owner-a", "broken", "empty")
	s.Require().NoError(err)

	found, err := mechdraft.FindCorrupted(s.ctx, s.client)
	s.Require().NoError(err)

	reasons := make(map[string]string, len(found))
	for _, c := range found {
		reasons[c.ID] = c.Reason
	}
	s.Len(reasons, 3)
	s.Contains(reasons["broken"], "malformed JSON")
	s.Equal("missing tonnage", reasons["empty"])
	s.Contains(reasons["moved"], "does not match key")

	removed, err := mechdraft.Purge(s.ctx, s.client, found)
	s.Require().NoError(err)
	s.Equal(3, removed)

	s.False(s.mr.Exists("mech_draft:broken"))
	s.True(s.mr.Exists("mech_draft:good-1"))

	members, err := s.mr.Members("mech_draft:owner:owner-a")
	s.Require().NoError(err)
	s.Equal([]string{"good-1"}, members)

	again, err := mechdraft.FindCorrupted(s.ctx, s.client)
	s.Require().NoError(err)
	s.Empty(again)
}

func (s *RedisRepositoryTestSuite) TestPurgeNothing() {
	removed, err := mechdraft.Purge(s.ctx, s.client, nil)
	s.Require().NoError(err)
	s.Zero(removed)
}
