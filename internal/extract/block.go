package extract

import (
	"io"
	"regexp"

	"github.com/teichopsia/rancid2dot/internal/prefix"
)

var (
	blockInterface = regexp.MustCompile(`^interface\s+(\S+)$`)
	blockAddress   = regexp.MustCompile(`^\s+ip\s+address\s+(\S+)\s+(\S+)$`)
	blockEnd       = regexp.MustCompile(`^\s*!`)
)

// blockState tracks whether the scanner is inside an interface stanza.
type blockState struct {
	iface string
	in    bool
}

var noInterface = blockState{}

func inInterface(name string) blockState {
	return blockState{iface: name, in: true}
}

// Block extracts addresses from IOS-style configurations:
//
//	interface GigabitEthernet0/0
//	 ip address 10.0.0.1 255.255.255.252
//	!
//
// Address lines outside an interface stanza are ignored, as are secondary
// addresses.
type Block struct{}

func (Block) Style() Style { return StyleBlock }

func (Block) Extract(device string, r io.Reader) (*Result, error) {
	res := &Result{}
	state := noInterface
	err := scanLines(r, func(n int, line string) {
		state = state.next(device, n, line, res)
	})
	return res, err
}

func (s blockState) next(device string, n int, line string, res *Result) blockState {
	if m := blockInterface.FindStringSubmatch(line); m != nil {
		return inInterface(m[1])
	}
	if m := blockAddress.FindStringSubmatch(line); m != nil {
		if !s.in {
			return s
		}
		p, err := prefix.FromNetmask(m[1], m[2])
		if err != nil {
			res.fail(device, n, line, err)
			return s
		}
		res.add(device, s.iface, p)
		return s
	}
	if blockEnd.MatchString(line) {
		return noInterface
	}
	return s
}
