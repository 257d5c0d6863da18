// Package manifest builds the declarative deployment artifact consumed by an
// external function-platform deploy tool. The tool's own lifecycle commands
// (deploy, remove, plugin install) stay outside this module; the manifest is
// the whole contract between the two.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/freekieb7/pebble/http"
)

var (
	ErrMissingService = errors.New("manifest: service name is required")
	ErrMissingRuntime = errors.New("manifest: provider runtime is required")
	ErrNoFunctions    = errors.New("manifest: at least one function is required")
)

type Manifest struct {
	Service   string              `yaml:"service"`
	Provider  Provider            `yaml:"provider"`
	Functions map[string]Function `yaml:"functions"`
	Plugins   []string            `yaml:"plugins,omitempty"`
}

type Provider struct {
	Name    string `yaml:"name"`
	Runtime string `yaml:"runtime"`
}

type Function struct {
	Handler string  `yaml:"handler"`
	Events  []Event `yaml:"events,omitempty"`
}

type Event struct {
	HTTP *HTTPEvent `yaml:"http,omitempty"`
}

type HTTPEvent struct {
	Path   string `yaml:"path"`
	Method string `yaml:"method"`
}

// FromRouter maps every registered route to an HTTP trigger event on a single
// deployable function, in registration order.
func FromRouter(service, providerName, runtime, handler string, router *http.Router) *Manifest {
	routes := router.Routes()
	events := make([]Event, 0, len(routes))
	for _, route := range routes {
		events = append(events, Event{
			HTTP: &HTTPEvent{
				Path:   route.Path,
				Method: strings.ToLower(route.Method),
			},
		})
	}

	return &Manifest{
		Service: service,
		Provider: Provider{
			Name:    providerName,
			Runtime: runtime,
		},
		Functions: map[string]Function{
			"api": {
				Handler: handler,
				Events:  events,
			},
		},
	}
}

func (m *Manifest) Validate() error {
	if m.Service == "" {
		return ErrMissingService
	}
	if m.Provider.Runtime == "" {
		return ErrMissingRuntime
	}
	if len(m.Functions) == 0 {
		return ErrNoFunctions
	}

	for name, function := range m.Functions {
		if function.Handler == "" {
			return fmt.Errorf("manifest: function %s has no handler", name)
		}
	}

	return nil
}

func (m *Manifest) Write(w io.Writer) error {
	if err := m.Validate(); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(m)
}

func Load(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: decode failed: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}
