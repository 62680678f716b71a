package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/Soulverse-Ecosystem/status-check/internal/domain"
)

type endpointsDoc struct {
	Endpoints []domain.EndpointSpec `yaml:"endpoints"`
}

// LoadEndpoints reads the ordered endpoint list. Declaration order is
// preserved — it decides probe and notification order for a run. Methods are
// normalized to upper case; an empty method means GET.
func LoadEndpoints(path string) ([]domain.EndpointSpec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read endpoints file: %w", err)
	}
	var doc endpointsDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse endpoints file %s: %w", path, err)
	}
	if len(doc.Endpoints) == 0 {
		return nil, fmt.Errorf("endpoints file %s: no endpoints configured", path)
	}

	seen := make(map[string]struct{}, len(doc.Endpoints))
	for i := range doc.Endpoints {
		ep := &doc.Endpoints[i]
		ep.Name = strings.TrimSpace(ep.Name)
		ep.Method = strings.ToUpper(strings.TrimSpace(ep.Method))
		if err := validateEndpoint(*ep); err != nil {
			return nil, fmt.Errorf("endpoint %d (%q): %w", i, ep.Name, err)
		}
		if _, dup := seen[ep.Name]; dup {
			return nil, fmt.Errorf("endpoint %d: duplicate name %q", i, ep.Name)
		}
		seen[ep.Name] = struct{}{}
	}
	return doc.Endpoints, nil
}

func validateEndpoint(ep domain.EndpointSpec) error {
	return validation.ValidateStruct(&ep,
		validation.Field(&ep.Name, validation.Required),
		validation.Field(&ep.URL, validation.Required, validation.By(validateHTTPURL)),
		validation.Field(&ep.Method, validation.In(
			"",
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		)),
	)
}
