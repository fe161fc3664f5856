package registry

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Equipment []Equipment `yaml:"equipment"`
}

// Load decodes a YAML catalog. Unknown fields are rejected so typos in a
// hand-edited catalog surface at startup.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return New()
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}
	return New(file.Equipment...)
}

// LoadFile reads a YAML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path) // #nosec G304 -- operator supplied catalog path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open catalog %s", path)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// Default returns the catalog embedded in the binary
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}
