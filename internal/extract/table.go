package extract

import (
	"fmt"
	"sort"
	"strings"
)

// Table maps RANCID vendor names to extractors. Names are matched without
// regard to case, since config keys reach the table lowercased.
type Table struct {
	byVendor map[string]Extractor
}

// ForStyle returns the built-in extractor for a style.
func ForStyle(s Style) (Extractor, error) {
	switch s {
	case StyleTerse:
		return Terse{}, nil
	case StyleBlock:
		return Block{}, nil
	case StyleSet:
		return Set{}, nil
	}
	return nil, fmt.Errorf("unknown extractor style %q (want %s, %s or %s)", s, StyleTerse, StyleBlock, StyleSet)
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{byVendor: make(map[string]Extractor)}
}

// DefaultTable knows the vendors RANCID archives most commonly hold.
func DefaultTable() *Table {
	t := NewTable()
	t.Register("juniper", Terse{})
	t.Register("cisco", Block{})
	t.Register("cisco_switch", Set{})
	return t
}

// Register binds vendor to x, replacing any previous binding.
func (t *Table) Register(vendor string, x Extractor) {
	t.byVendor[strings.ToLower(vendor)] = x
}

// Alias binds vendor to the built-in extractor for style.
func (t *Table) Alias(vendor string, style Style) error {
	x, err := ForStyle(style)
	if err != nil {
		return fmt.Errorf("vendor %s: %w", vendor, err)
	}
	t.Register(vendor, x)
	return nil
}

// Lookup returns the extractor for vendor. Vendors without one are not an error.
func (t *Table) Lookup(vendor string) (Extractor, bool) {
	x, ok := t.byVendor[strings.ToLower(vendor)]
	return x, ok
}

// Vendors lists the registered vendor names in sorted order.
func (t *Table) Vendors() []string {
	names := make([]string, 0, len(t.byVendor))
	for name := range t.byVendor {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
