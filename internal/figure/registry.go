package figure

import (
	"fmt"
	"sort"
	"time"

	"github.com/san-kum/nucviz/internal/config"
	log "github.com/sirupsen/logrus"
)

// Builder computes a figure from configuration.
type Builder func(cfg *config.Config) (*Figure, error)

type Registry struct {
	builders map[string]Builder
	info     map[string]string
}

func NewRegistry() *Registry {
	r := &Registry{
		builders: make(map[string]Builder),
		info:     make(map[string]string),
	}

	r.Register("deformation", "spherical-harmonic surface deformation", Deformation)
	r.Register("fission", "SEMF deformation energy vs alpha20^2", Fission)
	r.Register("separation", "neutron separation energies S_n, S_2n", Separation)

	return r
}

func (r *Registry) Register(name, description string, b Builder) {
	r.builders[name] = b
	r.info[name] = description
}

func (r *Registry) Get(name string) (Builder, error) {
	b, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown figure: %s", name)
	}
	return b, nil
}

func (r *Registry) Build(name string, cfg *config.Config) (*Figure, error) {
	b, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	fig, err := b(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	log.WithFields(log.Fields{
		"figure":  name,
		"series":  len(fig.Series),
		"surface": fig.IsSurface(),
		"elapsed": time.Since(start),
	}).Debug("figure built")
	return fig, nil
}

func (r *Registry) Describe(name string) string {
	return r.info[name]
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
