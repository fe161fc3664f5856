package mech

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
)

// DecodeUnit parses a unit record, as YAML when isYAML is set and JSON
// otherwise. Fields the record format does not know are ignored.
func DecodeUnit(data []byte, isYAML bool) (*UnitRecord, error) {
	var unit UnitRecord
	var err error
	if isYAML {
		err = yaml.Unmarshal(data, &unit)
	} else {
		err = json.Unmarshal(data, &unit)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed unit record")
	}
	if unit.Tonnage == 0 {
		return nil, errors.InvalidArgument("unit record has no tonnage")
	}
	return &unit, nil
}

// ReadUnitFile reads a unit record from disk. Files ending in .yaml or .yml
// are YAML.
func ReadUnitFile(path string) (*UnitRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("unit file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read unit file %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	return DecodeUnit(data, ext == ".yaml" || ext == ".yml")
}
