package render

import (
	"fmt"
	"io"

	"github.com/teichopsia/rancid2dot/internal/topology"
)

const (
	FormatDOT = "dot"
	FormatD2  = "d2"
)

// Renderer defines the interface for diagram generators.
type Renderer interface {
	Render(w io.Writer, g *topology.Graph) error
}

// Options are shared by all renderers.
type Options struct {
	Theme     string
	Direction string // right or down
}

// New returns the renderer for format.
func New(format string, opts Options) (Renderer, error) {
	theme := GetTheme(opts.Theme)
	switch format {
	case "", FormatDOT:
		return &DOTRenderer{Theme: theme, Direction: opts.Direction}, nil
	case FormatD2:
		return &D2Renderer{Theme: theme, Direction: opts.Direction}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatDOT, FormatD2)
}
