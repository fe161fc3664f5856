package mech_test

import (
	"os"
	"path/filepath"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
)

func (s *UnitRecordTestSuite) TestReadUnitFile() {
	dir := s.T().TempDir()

	s.Run("json by default", func() {
		path := filepath.Join(dir, "hbk.json")
		s.Require().NoError(os.WriteFile(path, []byte(testUnitJSON), 0o600))

		unit, err := mech.ReadUnitFile(path)
		s.Require().NoError(err)
		s.Equal("Hunchback HBK-4G", unit.Name())
		s.Len(unit.Equipment, 2)
	})

	s.Run("yaml by extension", func() {
		path := filepath.Join(dir, "wolf.YML")
		doc := "chassis: Timber Wolf\nmodel: Prime\ntechBase: CLAN\ntonnage: 75\n"
		s.Require().NoError(os.WriteFile(path, []byte(doc), 0o600))

		unit, err := mech.ReadUnitFile(path)
		s.Require().NoError(err)
		s.Equal(75, unit.Tonnage)
	})

	s.Run("missing file", func() {
		_, err := mech.ReadUnitFile(filepath.Join(dir, "nope.json"))
		s.True(errors.IsNotFound(err))
	})
}

func (s *UnitRecordTestSuite) TestDecodeUnitRejects() {
	testCases := []struct {
		name   string
		data   string
		isYAML bool
	}{
		{name: "malformed json", data: `{"tonnage": `},
		{name: "malformed yaml", data: "tonnage: [", isYAML: true},
		{name: "no tonnage", data: `{"chassis": "Locust"}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			unit, err := mech.DecodeUnit([]byte(tc.data), tc.isYAML)
			s.Nil(unit)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}
