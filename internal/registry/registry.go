// Package registry provides the read-only equipment catalog the construction
// engine resolves mounted equipment against.
package registry

//go:generate mockgen -destination=mock/mock_registry.go -package=registrymock github.com/SwiggitySwerve/megamek-web-sub007/internal/registry Registry

import (
	"sort"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
)

// Category groups equipment by role
type Category string

// Equipment categories
const (
	CategoryWeapon     Category = "weapon"
	CategoryAmmunition Category = "ammunition"
	CategoryHeatSink   Category = "heat_sink"
	CategoryJumpJet    Category = "jump_jet"
	CategoryEquipment  Category = "equipment"
)

// IsValid checks the category is known
func (c Category) IsValid() bool {
	switch c {
	case CategoryWeapon, CategoryAmmunition, CategoryHeatSink, CategoryJumpJet, CategoryEquipment:
		return true
	default:
		return false
	}
}

// Subsystem returns the draft subsystem that owns equipment of this category
// for tech-base checks.
func (c Category) Subsystem() mech.Subsystem {
	switch c {
	case CategoryHeatSink:
		return mech.SubsystemHeatSink
	case CategoryJumpJet:
		return mech.SubsystemMovement
	default:
		return mech.SubsystemEquipment
	}
}

// Equipment is one catalog entry. An empty TechBase means the item is
// available to both tech bases.
type Equipment struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Category      Category      `json:"category" yaml:"category"`
	TechBase      mech.TechBase `json:"techBase,omitempty" yaml:"techBase,omitempty"`
	Weight        float64       `json:"weight" yaml:"weight"`
	CriticalSlots int           `json:"criticalSlots" yaml:"criticalSlots"`
	Cost          int64         `json:"cost" yaml:"cost"`
	BattleValue   int           `json:"battleValue" yaml:"battleValue"`
	Heat          int           `json:"heat" yaml:"heat"`
}

// LookupResult is the outcome of resolving an equipment id
type LookupResult struct {
	Found     bool
	Equipment Equipment
}

// Registry resolves equipment ids. Implementations are read-only after
// construction and safe for concurrent use.
type Registry interface {
	Lookup(id string) LookupResult
}

// Catalog is the in-memory Registry
type Catalog struct {
	items map[string]Equipment
}

var _ Registry = (*Catalog)(nil)

// New builds a catalog, rejecting invalid entries and duplicate ids
func New(items ...Equipment) (*Catalog, error) {
	c := &Catalog{items: make(map[string]Equipment, len(items))}
	for i, item := range items {
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("id", item.ID, vb)
		if !item.Category.IsValid() {
			vb.InvalidField("category", "unknown category "+string(item.Category))
		}
		if item.TechBase != "" && !item.TechBase.IsValid() {
			vb.InvalidField("techBase", "unknown tech base "+string(item.TechBase))
		}
		if item.Weight < 0 {
			vb.InvalidField("weight", "must not be negative")
		}
		if item.CriticalSlots < 0 {
			vb.InvalidField("criticalSlots", "must not be negative")
		}
		if err := vb.Build(); err != nil {
			return nil, errors.Wrapf(err, "equipment entry %d", i)
		}
		if _, exists := c.items[item.ID]; exists {
			return nil, errors.AlreadyExistsf("equipment %s registered twice", item.ID)
		}
		c.items[item.ID] = item
	}
	return c, nil
}

// Lookup resolves an equipment id
func (c *Catalog) Lookup(id string) LookupResult {
	item, ok := c.items[id]
	return LookupResult{Found: ok, Equipment: item}
}

// List returns every entry sorted by id
func (c *Catalog) List() []Equipment {
	out := make([]Equipment, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.items)
}
