package extract

import (
	"io"
	"regexp"

	"github.com/teichopsia/rancid2dot/internal/prefix"
)

// RANCID stores the Juniper "show interfaces terse" output as comments:
//
//	# sh int terse: ge-0/0/0.0   up    up   inet     10.0.0.1/30
var terseLine = regexp.MustCompile(`^# sh int terse:\s+(\S+)\s+(up|down)\s+(up|down)\s+inet\s+(\S+)`)

// Terse extracts addresses from interface-terse dumps. Admin and link state
// are matched but down interfaces are still recorded.
type Terse struct{}

func (Terse) Style() Style { return StyleTerse }

func (Terse) Extract(device string, r io.Reader) (*Result, error) {
	res := &Result{}
	err := scanLines(r, func(n int, line string) {
		m := terseLine.FindStringSubmatch(line)
		if m == nil {
			return
		}
		iface, addr := m[1], m[4]
		p, err := prefix.ParseHost(addr)
		if err != nil {
			res.fail(device, n, line, err)
			return
		}
		res.add(device, iface, p)
	})
	return res, err
}
