package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemes(t *testing.T) {
	assert.Equal(t, []string{"classic", "dark", "monochrome", "ocean"}, ThemeNames())
	assert.Equal(t, "dark", GetTheme("dark").Name)
	assert.Equal(t, "classic", GetTheme("neon").Name)
	assert.Equal(t, "classic", GetTheme("").Name)
}
