// Package registry holds the embedded country/city location registry.
// City order within a country is fixed and defines bulk-sweep order.
package registry

import (
	_ "embed"
	"sync"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// AllCities is the synthetic city value that selects every city of the
// chosen country (bulk sweep).
const AllCities = "ALL_CITIES"

//go:embed locations.yaml
var locationsYAML []byte

// Country is one selectable country.
type Country struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Registry maps country codes to their ordered city lists.
type Registry struct {
	Countries []Country           `yaml:"countries"`
	Cities    map[string][]string `yaml:"cities"`
}

var (
	loadOnce sync.Once
	loaded   *Registry
	loadErr  error
)

// Load parses the embedded location registry. The result is cached.
func Load() (*Registry, error) {
	loadOnce.Do(func() {
		var r Registry
		if err := yaml.Unmarshal(locationsYAML, &r); err != nil {
			loadErr = eris.Wrap(err, "registry: parse locations")
			return
		}
		loaded = &r
	})
	return loaded, loadErr
}

// CountryName returns the display name for a country code, falling back
// to the code itself when unknown.
func (r *Registry) CountryName(code string) string {
	for _, c := range r.Countries {
		if c.Code == code {
			return c.Name
		}
	}
	return code
}

// CitiesFor returns the ordered city list for a country code. The list
// is empty for unknown codes.
func (r *Registry) CitiesFor(code string) []string {
	return r.Cities[code]
}
