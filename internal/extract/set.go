package extract

import (
	"io"
	"regexp"

	"github.com/teichopsia/rancid2dot/internal/prefix"
)

// set interface sc0 1 10.1.1.2/24
// set interface sc0 1 10.1.1.2/255.255.255.0 10.1.1.255
var setInterface = regexp.MustCompile(`^set interface\s+(\S+)\s+(\d+)\s+(\S+)/(\S+)`)

// Set extracts management addresses from CatOS-style switch configurations.
// The mask is a length or, when it contains a dot, a netmask.
type Set struct{}

func (Set) Style() Style { return StyleSet }

func (Set) Extract(device string, r io.Reader) (*Result, error) {
	res := &Result{}
	err := scanLines(r, func(n int, line string) {
		m := setInterface.FindStringSubmatch(line)
		if m == nil {
			return
		}
		p, err := prefix.FromMask(m[3], m[4])
		if err != nil {
			res.fail(device, n, line, err)
			return
		}
		res.add(device, m[1], p)
	})
	return res, err
}
