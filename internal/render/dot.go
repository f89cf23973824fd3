package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/teichopsia/rancid2dot/internal/topology"
	"github.com/teichopsia/rancid2dot/internal/util"
)

// DOTRenderer generates an undirected Graphviz graph with one record node per
// device and one field per linked interface.
type DOTRenderer struct {
	Theme     *Theme
	Direction string
}

func (r *DOTRenderer) rankdir() string {
	if r.Direction == "down" {
		return "TB"
	}
	return "LR"
}

func (r *DOTRenderer) Render(w io.Writer, g *topology.Graph) error {
	theme := r.Theme
	if theme == nil {
		theme = GetTheme("")
	}
	var b strings.Builder

	fmt.Fprintf(&b, `
graph gx {
    rankdir=%s;
    dim=3;
    graph [bgcolor=%s,ranksep=0.5];
    node [shape=Mrecord,bgcolor=%s,
    fontcolor=%s,color=%s,
    fontsize=14,fontname="Times-Roman"];
    edge [color=%s];

`, r.rankdir(), dotColor(theme.Background), dotColor(theme.Node.Fill),
		dotColor(theme.Node.Font), dotColor(theme.Node.Stroke), dotColor(theme.Edge))

	for _, n := range g.Nodes {
		id := util.DotID(n.Name)
		fmt.Fprintf(&b, `    %s[label="%s`, id, util.RecordLabel(n.Name))
		for i, port := range n.Ports {
			fmt.Fprintf(&b, "|<%s>%s", portID(id, i), util.RecordLabel(port))
		}
		b.WriteString("\"];\n")
	}

	for _, l := range g.Links {
		ai, ok := g.PortIndex(l.A.Device, l.A.Interface)
		if !ok {
			return fmt.Errorf("link %s: no port for %s %s", l.Prefix, l.A.Device, l.A.Interface)
		}
		zi, ok := g.PortIndex(l.B.Device, l.B.Interface)
		if !ok {
			return fmt.Errorf("link %s: no port for %s %s", l.Prefix, l.B.Device, l.B.Interface)
		}
		a, z := util.DotID(l.A.Device), util.DotID(l.B.Device)
		fmt.Fprintf(&b, "    %s:%s--%s:%s;\n", a, portID(a, ai), z, portID(z, zi))
	}

	b.WriteString("    }\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func portID(node string, i int) string {
	return fmt.Sprintf("%s_%d", node, i)
}

// dotColor quotes hex colors; named colors are left bare.
func dotColor(c string) string {
	if strings.HasPrefix(c, "#") {
		return `"` + c + `"`
	}
	return c
}
