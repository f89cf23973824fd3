package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/teichopsia/rancid2dot/internal/topology"
)

// WriteDiagnostics lists every shared prefix, one line each:
//
//	10.0.0.1/30 r1 Gi0/0; 10.0.0.2/30 r2 Gi0/0;
func WriteDiagnostics(w io.Writer, groups []topology.Group) error {
	var b strings.Builder
	for _, g := range groups {
		for _, ep := range g.Endpoints {
			fmt.Fprintf(&b, "%s; ", ep)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
