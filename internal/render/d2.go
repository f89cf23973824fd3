package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/teichopsia/rancid2dot/internal/topology"
	"github.com/teichopsia/rancid2dot/internal/util"
)

// D2Renderer generates D2 diagram text: a container per device holding one
// shape per linked interface, connected port to port.
type D2Renderer struct {
	Theme     *Theme
	Direction string
}

func (r *D2Renderer) direction() string {
	if r.Direction == "" {
		return "right"
	}
	return r.Direction
}

func (r *D2Renderer) Render(w io.Writer, g *topology.Graph) error {
	theme := r.Theme
	if theme == nil {
		theme = GetTheme("")
	}
	var b strings.Builder

	fmt.Fprintf(&b, "direction: %s\n", r.direction())
	fmt.Fprintf(&b, "style.fill: %q\n\n", theme.Background)

	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "%s: %s {\n", util.SanitizeID(n.Name), util.Quote(n.Name))
		fmt.Fprintf(&b, "  style.fill: %q\n", theme.Node.Fill)
		fmt.Fprintf(&b, "  style.stroke: %q\n", theme.Node.Stroke)
		fmt.Fprintf(&b, "  style.font-color: %q\n", theme.Node.Font)
		for i, port := range n.Ports {
			fmt.Fprintf(&b, "  p%d: %s\n", i, util.Quote(port))
		}
		b.WriteString("}\n\n")
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
		fmt.Fprintf(&b, "%s.p%d -- %s.p%d: %s {\n",
			util.SanitizeID(l.A.Device), ai, util.SanitizeID(l.B.Device), zi, util.Quote(l.Prefix.String()))
		fmt.Fprintf(&b, "  style.stroke: %q\n", theme.Edge)
		b.WriteString("}\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
