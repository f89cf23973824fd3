// Package prefix holds the IPv4 prefix store that groups interface addresses
// by the network they belong to.
package prefix

import (
	"fmt"
	"net/netip"
	"sort"
	"sync"

	"github.com/teichopsia/rancid2dot/internal/model"
)

// Entry collects the endpoints configured inside one prefix, keyed by host address.
type Entry struct {
	Prefix netip.Prefix

	mu        sync.Mutex
	endpoints map[netip.Addr]model.Endpoint
}

// Attach records ep under its host address. When the address is already
// claimed by a different owner the endpoint that sorts first is kept, so the
// outcome does not depend on ingestion order. The return value reports
// whether a conflicting endpoint was seen.
func (e *Entry) Attach(ep model.Endpoint) (conflict bool) {
	addr := ep.Address.Addr()

	e.mu.Lock()
	defer e.mu.Unlock()

	cur, ok := e.endpoints[addr]
	if !ok {
		e.endpoints[addr] = ep
		return false
	}
	if cur.Device == ep.Device && cur.Interface == ep.Interface {
		return false
	}
	if ep.Less(cur) {
		e.endpoints[addr] = ep
	}
	return true
}

// Len returns the number of distinct host addresses in the entry.
func (e *Entry) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.endpoints)
}

// Endpoints returns the entry's endpoints sorted by numeric address.
func (e *Entry) Endpoints() []model.Endpoint {
	e.mu.Lock()
	out := make([]model.Endpoint, 0, len(e.endpoints))
	for _, ep := range e.endpoints {
		out = append(out, ep)
	}
	e.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return Uint32(out[i].Address.Addr()) < Uint32(out[j].Address.Addr())
	})
	return out
}

// node is one bit position in the trie. entry is set when a prefix ends here.
type node struct {
	child [2]*node
	entry *Entry
}

// Store is a binary trie keyed on exact IPv4 prefixes. Overlapping prefixes
// of different lengths live on different nodes and are never merged.
// A Store is safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	root node
	size int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Insert returns the entry for p, creating it on first use. Host bits in p
// are cleared before lookup, so 10.0.0.1/30 and 10.0.0.2/30 share an entry.
func (s *Store) Insert(p netip.Prefix) (*Entry, error) {
	if !p.IsValid() || !p.Addr().Is4() {
		return nil, fmt.Errorf("%w: %s", ErrBadAddress, p)
	}
	p = p.Masked()
	v := Uint32(p.Addr())

	s.mu.Lock()
	defer s.mu.Unlock()

	n := &s.root
	for i := 0; i < p.Bits(); i++ {
		bit := (v >> (31 - i)) & 1
		if n.child[bit] == nil {
			n.child[bit] = &node{}
		}
		n = n.child[bit]
	}
	if n.entry == nil {
		n.entry = &Entry{Prefix: p, endpoints: make(map[netip.Addr]model.Endpoint)}
		s.size++
	}
	return n.entry, nil
}

// Add inserts the network of ep.Address and attaches ep to it.
func (s *Store) Add(ep model.Endpoint) (conflict bool, err error) {
	e, err := s.Insert(ep.Address)
	if err != nil {
		return false, err
	}
	return e.Attach(ep), nil
}

// Lookup returns the entry for exactly p, if one was inserted.
func (s *Store) Lookup(p netip.Prefix) (*Entry, bool) {
	if !p.IsValid() || !p.Addr().Is4() {
		return nil, false
	}
	p = p.Masked()
	v := Uint32(p.Addr())

	s.mu.Lock()
	defer s.mu.Unlock()

	n := &s.root
	for i := 0; i < p.Bits(); i++ {
		n = n.child[(v>>(31-i))&1]
		if n == nil {
			return nil, false
		}
	}
	return n.entry, n.entry != nil
}

// Len returns the number of distinct prefixes in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Walk calls fn for every prefix in the store. Iteration order is an
// implementation detail; callers needing an order must sort. fn must not
// call back into the store.
func (s *Store) Walk(fn func(*Entry)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stack := []*node{&s.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.entry != nil {
			fn(n.entry)
		}
		for i := 1; i >= 0; i-- {
			if n.child[i] != nil {
				stack = append(stack, n.child[i])
			}
		}
	}
}
