package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/teichopsia/rancid2dot/internal/render"
	"github.com/teichopsia/rancid2dot/internal/ui"
)

// findExecutable and execCommand are replaced in tests.
var findExecutable = func(name string) (string, error) {
	return exec.LookPath(name)
}

var execCommand = func(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

// renderCommand returns the binary and arguments that turn src into an image.
func renderCommand(format, src, image string) (bin string, args []string, out string) {
	out = strings.TrimSuffix(src, filepath.Ext(src)) + "." + image
	if format == render.FormatD2 {
		return "d2", []string{src, out}, out
	}
	return "dot", []string{"-T" + image, "-o", out, src}, out
}

func renderImage(format, src, image string) error {
	switch image {
	case "svg", "png":
	default:
		return withHint(fmt.Errorf("unsupported image format %q", image), "use svg or png")
	}

	bin, args, out := renderCommand(format, src, image)
	path, err := findExecutable(bin)
	if err != nil {
		return withHint(fmt.Errorf("%s not found in PATH", bin), "install Graphviz or d2, or render the output file yourself")
	}

	cmd := execCommand(path, args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s render failed: %w", bin, err)
	}

	ui.Success(fmt.Sprintf("Rendered %s", out))
	return nil
}
