// Package menu holds the fixed lookup table from item name to service burst.
// The table is immutable once constructed – accessors hand out copies so
// callers can never mutate the underlying map.
package menu

import "sort"

// Item pairs an item name with the service time it requires.
type Item struct {
	Name  string
	Burst int
}

// Menu maps item names to their service bursts.
type Menu struct {
	items map[string]int
}

// defaultItems is the compiled-in table. A surrounding configuration layer
// may override it, the core treats these as constants.
var defaultItems = map[string]int{
	"americano":     2,
	"latte":         3,
	"cappuccino":    3,
	"mocha":         4,
	"tea":           1,
	"macchiato":     2,
	"hot_chocolate": 4,
}

// Default returns a menu populated with the compiled-in items.
func Default() *Menu {
	return New(defaultItems)
}

// New builds a menu from the supplied table. The input map is copied so later
// mutation by the caller has no effect on the returned menu.
func New(items map[string]int) *Menu {
	ret := &Menu{items: make(map[string]int, len(items))}
	for name, burst := range items {
		ret.items[name] = burst
	}
	return ret
}

// Lookup returns the service burst for name and whether name is on the menu.
func (m *Menu) Lookup(name string) (int, bool) {
	burst, ok := m.items[name]
	return burst, ok
}

// Items returns all entries sorted by name in ascending lexicographic order.
func (m *Menu) Items() []Item {
	out := make([]Item, 0, len(m.items))
	for name, burst := range m.items {
		out = append(out, Item{Name: name, Burst: burst})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of entries.
func (m *Menu) Len() int {
	return len(m.items)
}
