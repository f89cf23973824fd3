package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	out := FormatError("Failed to load inventory", "open router.db: no such file", "pass the path to router.db")
	assert.Contains(t, out, "Error: Failed to load inventory")
	assert.Contains(t, out, "open router.db: no such file")
	assert.Contains(t, out, "Hint: pass the path to router.db")
}

func TestFormatErrorTitleOnly(t *testing.T) {
	out := FormatError("boom", "", "")
	assert.Contains(t, out, "Error: boom")
	assert.NotContains(t, out, "Hint:")
}
