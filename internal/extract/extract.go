// Package extract pulls interface addresses out of saved device
// configurations. Each vendor grammar is one Extractor.
package extract

import (
	"bufio"
	"fmt"
	"io"
	"net/netip"
	"strings"

	"github.com/teichopsia/rancid2dot/internal/model"
)

// Style names a configuration grammar.
type Style string

const (
	// StyleTerse reads "show interfaces terse" dumps, one line per interface.
	StyleTerse Style = "terse"
	// StyleBlock reads indented interface blocks terminated by "!".
	StyleBlock Style = "block"
	// StyleSet reads single-line "set interface" switch directives.
	StyleSet Style = "set"
)

// Extractor scans one device's configuration text.
type Extractor interface {
	Style() Style
	// Extract returns every address found in r. The error is reserved for
	// read failures; bad lines are reported in Result.LineErrors.
	Extract(device string, r io.Reader) (*Result, error)
}

// Result holds what an extractor found in one configuration.
type Result struct {
	Endpoints  []model.Endpoint
	LineErrors []*LineError
}

func (res *Result) add(device, iface string, addr netip.Prefix) {
	res.Endpoints = append(res.Endpoints, model.Endpoint{
		Device:    device,
		Interface: iface,
		Address:   addr,
	})
}

func (res *Result) fail(device string, line int, text string, err error) {
	res.LineErrors = append(res.LineErrors, &LineError{
		Device: device,
		Line:   line,
		Text:   text,
		Err:    err,
	})
}

// LineError is a matching configuration line whose address or mask could not be parsed.
type LineError struct {
	Device string
	Line   int
	Text   string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s line %d: %v", e.Device, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// scanLines feeds each line of r, without its line terminator, to fn along
// with its 1-based line number.
func scanLines(r io.Reader, fn func(n int, line string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		fn(n, strings.TrimRight(sc.Text(), "\r"))
	}
	return sc.Err()
}
