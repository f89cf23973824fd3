package topology

import (
	"sort"

	"github.com/teichopsia/rancid2dot/internal/model"
)

// Node is a device that terminates at least one link. Ports lists its linked
// interfaces in name order; a port's index is its position in the list.
type Node struct {
	Name  string
	Ports []string
}

// Graph is the renderable view of a set of links.
type Graph struct {
	Nodes []Node // sorted by device name
	Links []model.Link

	index map[string]map[string]int
}

// BuildGraph collects the devices and interfaces that take part in links.
func BuildGraph(links []model.Link) *Graph {
	ports := make(map[string]map[string]bool)
	mark := func(ep model.Endpoint) {
		if ports[ep.Device] == nil {
			ports[ep.Device] = make(map[string]bool)
		}
		ports[ep.Device][ep.Interface] = true
	}
	for _, l := range links {
		mark(l.A)
		mark(l.B)
	}

	g := &Graph{
		Links: links,
		index: make(map[string]map[string]int, len(ports)),
	}
	for device, set := range ports {
		n := Node{Name: device}
		for iface := range set {
			n.Ports = append(n.Ports, iface)
		}
		sort.Strings(n.Ports)

		g.index[device] = make(map[string]int, len(n.Ports))
		for i, iface := range n.Ports {
			g.index[device][iface] = i
		}
		g.Nodes = append(g.Nodes, n)
	}
	sort.Slice(g.Nodes, func(i, j int) bool { return g.Nodes[i].Name < g.Nodes[j].Name })

	return g
}

// PortIndex returns the position of iface among device's ports.
func (g *Graph) PortIndex(device, iface string) (int, bool) {
	i, ok := g.index[device][iface]
	return i, ok
}
