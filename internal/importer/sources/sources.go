// Package sources builds the job sources known by the import command.
package sources

import (
	"net/http"
	"sort"
	"strings"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/config"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/importer"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/importer/adzuna"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/importer/francetravail"
)

type factory func(cfg *config.Config, httpClient *http.Client) (importer.Source, error)

var registry = map[string]factory{
	"francetravail": func(cfg *config.Config, httpClient *http.Client) (importer.Source, error) {
		c, err := francetravail.NewClient(cfg.FranceTravail, httpClient)
		if err != nil {
			return nil, err
		}
		return c, nil
	},
	"adzuna": func(cfg *config.Config, httpClient *http.Client) (importer.Source, error) {
		c, err := adzuna.NewClient(cfg.Adzuna, httpClient)
		if err != nil {
			return nil, err
		}
		return c, nil
	},
}

// Names lists the registered sources in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the source registered under name (case insensitive).
func New(name string, cfg *config.Config, httpClient *http.Client) (importer.Source, error) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, importer.Misconfigured("unknown source %q, expected one of %s", name, strings.Join(Names(), ", "))
	}
	return f(cfg, httpClient)
}
