package serializer_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/builder"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/pkg/clock"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/serializer"
)

type SerializerTestSuite struct {
	suite.Suite
	now        time.Time
	serializer *serializer.Serializer
	draft      mech.Draft
}

func TestSerializerSuite(t *testing.T) {
	suite.Run(t, new(SerializerTestSuite))
}

func (s *SerializerTestSuite) SetupTest() {
	s.now = time.Date(3025, 1, 15, 9, 30, 0, 0, time.UTC)

	var err error
	s.serializer, err = serializer.New(&serializer.Config{
		AppVersion: "0.4.0",
		Clock:      clock.NewFixed(s.now),
	})
	s.Require().NoError(err)

	d, err := builder.CreateEmpty(55, mech.TechBaseClan)
	s.Require().NoError(err)
	d = builder.SetArmor(d, mech.ArmorAllocation{mech.LocationCenterTorso: {Front: 20, Rear: 8}})
	d = builder.AddEquipment(d, "er-medium-laser-clan", mech.LocationRightArm)
	d.ID = "draft-7"
	d.Name = "Shadow Cat"
	s.draft = d
}

func (s *SerializerTestSuite) TestRoundTrip() {
	s.True(s.draft.IsDirty)

	data, err := s.serializer.Marshal(s.draft)
	s.Require().NoError(err)

	env, err := serializer.Unmarshal(data)
	s.Require().NoError(err)
	s.Equal(serializer.FormatVersion, env.FormatVersion)
	s.Equal(serializer.Application{Name: "mechlab", Version: "0.4.0"}, env.Application)
	s.True(s.now.Equal(env.SavedAt))

	want := s.draft.Clone()
	want.IsDirty = false
	s.Equal(want, env.Draft)

	// the caller's draft is untouched
	s.True(s.draft.IsDirty)
}

func (s *SerializerTestSuite) TestEnvelopeShape() {
	data, err := s.serializer.Marshal(s.draft)
	s.Require().NoError(err)

	var raw map[string]any
	s.Require().NoError(json.Unmarshal(data, &raw))
	s.Equal("1.0", raw["formatVersion"])
	s.Equal("3025-01-15T09:30:00Z", raw["savedAt"])
	s.Contains(raw, "application")
	s.Contains(raw, "draft")
}

func (s *SerializerTestSuite) TestUnmarshalRejects() {
	testCases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "future format",
			doc:     `{"formatVersion":"2.0","application":{"name":"mechlab","version":"9"},"savedAt":"3025-01-01T00:00:00Z","draft":{"tonnage":50}}`,
			wantErr: "unsupported format version",
		},
		{
			name:    "foreign application",
			doc:     `{"formatVersion":"1.0","application":{"name":"heavy-metal","version":"1"},"savedAt":"3025-01-01T00:00:00Z","draft":{"tonnage":50}}`,
			wantErr: "heavy-metal",
		},
		{
			name:    "missing tonnage",
			doc:     `{"formatVersion":"1.0","application":{"name":"mechlab","version":"1"},"savedAt":"3025-01-01T00:00:00Z","draft":{}}`,
			wantErr: "tonnage",
		},
		{
			name:    "not json",
			doc:     `formatVersion: 1.0`,
			wantErr: "malformed",
		},
		{
			name:    "unknown field",
			doc:     `{"formatVersion":"1.0","application":{"name":"mechlab"},"draft":{"tonnage":50},"checksum":"x"}`,
			wantErr: "malformed",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			env, err := serializer.Unmarshal([]byte(tc.doc))
			s.Nil(env)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.wantErr)
		})
	}
}

func (s *SerializerTestSuite) TestUnmarshalFillsEmptyCollections() {
	doc := `{"formatVersion":"1.0","application":{"name":"mechlab","version":"1"},"savedAt":"3025-01-01T00:00:00Z","draft":{"tonnage":50}}`

	env, err := serializer.Unmarshal([]byte(doc))
	s.Require().NoError(err)
	s.NotNil(env.Draft.Armor)
	s.NotNil(env.Draft.Equipment)
}

func (s *SerializerTestSuite) TestNewValidatesConfig() {
	_, err := serializer.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = serializer.New(&serializer.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "AppVersion")
	s.Contains(err.Error(), "Clock")
}
