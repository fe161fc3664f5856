package techbase

import (
	"sort"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
)

type memoryKey struct {
	category mech.ComponentCategory
	techBase mech.TechBase
}

// Memory remembers the last valid selection per category and tech base so a
// mode round trip can restore it. A Memory belongs to one editing session and
// is not safe for concurrent use.
type Memory struct {
	entries map[memoryKey]string
}

// Entry is one remembered selection
type Entry struct {
	Category mech.ComponentCategory `json:"category"`
	TechBase mech.TechBase          `json:"techBase"`
	Value    string                 `json:"value"`
}

// NewMemory returns an empty memory
func NewMemory() *Memory {
	return &Memory{entries: make(map[memoryKey]string)}
}

// MemoryFromEntries rebuilds a memory from persisted entries
func MemoryFromEntries(entries []Entry) *Memory {
	m := NewMemory()
	for _, e := range entries {
		m.Put(e.Category, e.TechBase, e.Value)
	}
	return m
}

// Get returns the remembered selection
func (m *Memory) Get(category mech.ComponentCategory, techBase mech.TechBase) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.entries[memoryKey{category, techBase}]
	return v, ok
}

// Put records a selection. A nil memory discards it.
func (m *Memory) Put(category mech.ComponentCategory, techBase mech.TechBase, value string) {
	if m == nil {
		return
	}
	if m.entries == nil {
		m.entries = make(map[memoryKey]string)
	}
	m.entries[memoryKey{category, techBase}] = value
}

// Len returns the number of remembered selections
func (m *Memory) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Clone returns an independent copy
func (m *Memory) Clone() *Memory {
	out := NewMemory()
	if m == nil {
		return out
	}
	for k, v := range m.entries {
		out.entries[k] = v
	}
	return out
}

// Entries lists the remembered selections sorted by category then tech base
func (m *Memory) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{Category: k.category, TechBase: k.techBase, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].TechBase < out[j].TechBase
	})
	return out
}
