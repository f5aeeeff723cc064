package catalog

import (
	"fmt"

	"github.com/vantagics/bizlens/pkg/models/domain"
)

// Catalog is the static mapping from domain id to DomainProfile. It is built
// once at process start and shared read-only by the detector and calculator,
// so no locking is needed after construction.
type Catalog struct {
	order    []string
	profiles map[string]*domain.DomainProfile
}

// New builds the default catalog. Domain declaration order is significant: it
// breaks detection-score ties deterministically.
func New() *Catalog {
	c := &Catalog{profiles: make(map[string]*domain.DomainProfile)}
	for _, p := range defaultProfiles() {
		c.register(p)
	}
	return c
}

func (c *Catalog) register(p *domain.DomainProfile) {
	if _, exists := c.profiles[p.ID]; exists {
		panic(fmt.Sprintf("catalog: duplicate domain profile %q", p.ID))
	}
	c.order = append(c.order, p.ID)
	c.profiles[p.ID] = p
}

// DomainProfile looks up a profile by id.
func (c *Catalog) DomainProfile(id string) (*domain.DomainProfile, error) {
	p, ok := c.profiles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDomain, id)
	}
	return p, nil
}

// KPIDefinitions returns the ordered KPI set of a domain.
func (c *Catalog) KPIDefinitions(id string) ([]domain.KPIDefinition, error) {
	p, err := c.DomainProfile(id)
	if err != nil {
		return nil, err
	}
	return p.KPIs, nil
}

// DomainIDs returns all domain ids in declaration order.
func (c *Catalog) DomainIDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Profiles iterates profiles in declaration order.
func (c *Catalog) Profiles() []*domain.DomainProfile {
	out := make([]*domain.DomainProfile, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.profiles[id])
	}
	return out
}

// GeneralProfile returns the fallback profile used when no domain scores
// above the detection threshold. It is always registered.
func (c *Catalog) GeneralProfile() *domain.DomainProfile {
	return c.profiles[DomainGeneral]
}
