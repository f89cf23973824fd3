// Package topology turns a populated prefix store into diagnostic groups and
// point-to-point links.
package topology

import (
	"net/netip"
	"sort"

	"github.com/teichopsia/rancid2dot/internal/model"
	"github.com/teichopsia/rancid2dot/internal/prefix"
)

// Group is a prefix shared by two or more endpoints, sorted by address.
type Group struct {
	Prefix    netip.Prefix
	Endpoints []model.Endpoint
}

// IsLink reports whether the group is a point-to-point circuit.
func (g Group) IsLink() bool {
	return len(g.Endpoints) == 2
}

type Topology struct {
	Diagnostics []Group      // every prefix with two or more endpoints
	Links       []model.Link // every prefix with exactly two endpoints
	Unpaired    int          // prefixes with a single endpoint
	Segments    int          // prefixes with three or more endpoints
}

// Aggregate classifies every prefix in store by how many endpoints it holds.
// Groups and links come out ordered by network address then mask length.
func Aggregate(store *prefix.Store) *Topology {
	t := &Topology{}

	var entries []*prefix.Entry
	store.Walk(func(e *prefix.Entry) {
		entries = append(entries, e)
	})
	sort.Slice(entries, func(i, j int) bool {
		return lessPrefix(entries[i].Prefix, entries[j].Prefix)
	})

	for _, e := range entries {
		eps := e.Endpoints()
		switch {
		case len(eps) < 2:
			t.Unpaired++
			continue
		case len(eps) == 2:
			t.Links = append(t.Links, model.Link{Prefix: e.Prefix, A: eps[0], B: eps[1]})
		default:
			t.Segments++
		}
		t.Diagnostics = append(t.Diagnostics, Group{Prefix: e.Prefix, Endpoints: eps})
	}
	return t
}

func lessPrefix(a, b netip.Prefix) bool {
	av, bv := prefix.Uint32(a.Addr()), prefix.Uint32(b.Addr())
	if av != bv {
		return av < bv
	}
	return a.Bits() < b.Bits()
}
