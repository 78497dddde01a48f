package hbetl

import (
	"os"

	"github.com/itsatony/go-cuserr"
	"gopkg.in/yaml.v3"
)

// Manifest declares partials and constant helper bodies data-first,
// without writing Go closures — the "PartialNotRegistered" escape hatch
// for callers who keep their template fragments in a YAML file
// alongside the templates that reference them.
type Manifest struct {
	Partials map[string]string `yaml:"partials"`
	Helpers  map[string]string `yaml:"helpers"`
}

// LoadManifest reads and parses a YAML manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, cuserr.WrapStdError(err, "HBETL_MANIFEST", "failed to read manifest file").
			WithMetadata("path", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, cuserr.WrapStdError(err, "HBETL_MANIFEST", "failed to parse manifest YAML").
			WithMetadata("path", path)
	}
	return m, nil
}

// Apply registers every partial and constant helper declared in m onto
// r, in map order (Go's map iteration order is unspecified but harmless
// here since every entry is registered independently and last-write-wins
// does not apply within a single manifest — names are expected unique).
func (m Manifest) Apply(r *Registry) error {
	for name, body := range m.Partials {
		if err := r.RegisterPartial(name, body); err != nil {
			return err
		}
	}
	for name, body := range m.Helpers {
		constBody := body
		fn := HelperFunc(func(*TagModel) (string, error) {
			return constBody, nil
		})
		if err := r.RegisterHelper(name, fn); err != nil {
			return err
		}
	}
	return nil
}
