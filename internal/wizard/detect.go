package wizard

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

// DetectionResult holds what was auto-detected on the system.
type DetectionResult struct {
	RouterDBs         []string // router.db files found, sorted
	GraphvizAvailable bool
	D2Available       bool
}

// Detector abstracts filesystem and path lookups for testing.
type Detector interface {
	LookPath(name string) (string, error)
	Stat(path string) (os.FileInfo, error)
	Glob(pattern string) ([]string, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) LookPath(name string) (string, error) { return exec.LookPath(name) }
func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
func (OSDetector) Glob(pattern string) ([]string, error) { return filepath.Glob(pattern) }

// RANCID keeps one router.db per group directory.
var routerDBPatterns = []string{
	"router.db",
	"*/router.db",
	"/var/lib/rancid/*/router.db",
	"/usr/local/rancid/var/*/router.db",
}

// Detect scans the environment for RANCID archives and renderers.
func Detect(d Detector) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	if _, err := d.LookPath("dot"); err == nil {
		result.GraphvizAvailable = true
	}
	if _, err := d.LookPath("d2"); err == nil {
		result.D2Available = true
	}

	seen := make(map[string]bool)
	for _, pattern := range routerDBPatterns {
		matches, err := d.Glob(pattern)
		if err != nil {
			continue
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			if info, err := d.Stat(m); err != nil || info.IsDir() {
				continue
			}
			seen[m] = true
			result.RouterDBs = append(result.RouterDBs, m)
		}
	}
	sort.Strings(result.RouterDBs)

	return result
}
