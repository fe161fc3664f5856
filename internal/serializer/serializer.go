// Package serializer saves and loads drafts as versioned JSON envelopes
package serializer

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/pkg/clock"
)

const (
	// FormatVersion is the only envelope layout this package reads and writes
	FormatVersion = "1.0"

	// ApplicationName identifies envelopes written by this application
	ApplicationName = "mechlab"
)

// Application names the program that wrote an envelope
type Application struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Envelope wraps a saved draft
type Envelope struct {
	FormatVersion string      `json:"formatVersion"`
	Application   Application `json:"application"`
	SavedAt       time.Time   `json:"savedAt"`
	Draft         mech.Draft  `json:"draft"`
}

// Config configures a Serializer
type Config struct {
	// AppVersion is recorded in every envelope written
	AppVersion string
	Clock      clock.Clock
}

// Validate ensures all required fields are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("AppVersion", c.AppVersion, vb)
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

// Serializer converts drafts to and from envelopes
type Serializer struct {
	appVersion string
	clock      clock.Clock
}

// New creates a serializer
func New(cfg *Config) (*Serializer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Serializer{
		appVersion: cfg.AppVersion,
		clock:      cfg.Clock,
	}, nil
}

// Marshal wraps a draft in an envelope. The saved copy is marked clean.
func (s *Serializer) Marshal(d mech.Draft) ([]byte, error) {
	d = d.Clone()
	d.IsDirty = false

	env := Envelope{
		FormatVersion: FormatVersion,
		Application: Application{
			Name:    ApplicationName,
			Version: s.appVersion,
		},
		SavedAt: s.clock.Now().UTC(),
		Draft:   d,
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal envelope")
	}
	return data, nil
}

// Unmarshal reads an envelope. Unknown format versions, envelopes from other
// applications and drafts without a tonnage are rejected with
// InvalidArgument.
func Unmarshal(data []byte) (*Envelope, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var env Envelope
	if err := dec.Decode(&env); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed envelope")
	}

	if env.FormatVersion != FormatVersion {
		return nil, errors.InvalidArgumentf("unsupported format version %q", env.FormatVersion).
			WithMeta("formatVersion", env.FormatVersion)
	}
	if env.Application.Name != ApplicationName {
		return nil, errors.InvalidArgumentf("envelope was written by %q, not %s", env.Application.Name, ApplicationName).
			WithMeta("application", env.Application.Name)
	}
	if env.Draft.Tonnage == 0 {
		return nil, errors.InvalidArgument("envelope draft has no tonnage")
	}
	if env.Draft.Armor == nil {
		env.Draft.Armor = mech.ArmorAllocation{}
	}
	if env.Draft.Equipment == nil {
		env.Draft.Equipment = []mech.MountedEquipment{}
	}

	return &env, nil
}
