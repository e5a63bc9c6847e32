// Package spawn scatters entities across a finished level. The actual entity
// creation lives outside this module; builders hand their spawn regions to a
// Spawner collaborator keyed by a depth-weighted random table.
package spawn

import "math/rand"

// Spawner creates one entity of the named kind at a tile coordinate. The
// runtime supplies the implementation; generation only decides placement.
type Spawner interface {
	Spawn(kind string, x, y int)
}

// Entry is one weighted row of a spawn table. Weights at or below zero make
// the entry ineligible, which is how depth-gated entries drop out on early
// levels.
type Entry struct {
	Kind   string
	Weight int
}

// Table is a weighted random table over entity kinds.
type Table struct {
	entries     []Entry
	totalWeight int
}

// NewTable builds a table from its entries, ignoring non-positive weights.
func NewTable(entries ...Entry) *Table {
	t := &Table{}
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		t.entries = append(t.entries, e)
		t.totalWeight += e.Weight
	}
	return t
}

// Roll picks a kind with probability proportional to its weight, or "" from
// an empty table.
func (t *Table) Roll(rng *rand.Rand) string {
	if t.totalWeight <= 0 {
		return ""
	}
	roll := rng.Intn(t.totalWeight)
	cumulative := 0
	for i := range t.entries {
		cumulative += t.entries[i].Weight
		if roll < cumulative {
			return t.entries[i].Kind
		}
	}
	return ""
}

// DepthTable is the stock dungeon table: deeper levels weight nastier
// monsters and better loot upward.
func DepthTable(depth int) *Table {
	return NewTable(
		Entry{Kind: "goblin", Weight: 10},
		Entry{Kind: "orc", Weight: 1 + depth},
		Entry{Kind: "health-potion", Weight: 7},
		Entry{Kind: "fireball-scroll", Weight: 2 + depth},
		Entry{Kind: "confusion-scroll", Weight: 2 + depth},
		Entry{Kind: "magic-missile-scroll", Weight: 4},
		Entry{Kind: "dagger", Weight: 3},
		Entry{Kind: "shield", Weight: 3},
		Entry{Kind: "longsword", Weight: depth - 1},
		Entry{Kind: "tower-shield", Weight: depth - 1},
		Entry{Kind: "rations", Weight: 10},
		Entry{Kind: "magic-mapping-scroll", Weight: 2},
		Entry{Kind: "bear-trap", Weight: 2},
	)
}
