package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"GTBank", 10, "GTBank"},
		{"First City Monument Bank", 10, "First C..."},
		{"Access", 3, "Acc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TruncateWithEllipsis(tt.in, tt.max), tt.in)
	}
}

func TestDivider(t *testing.T) {
	assert.Empty(t, Divider(0))
	assert.Equal(t, 12, lipgloss.Width(Divider(12)))
}

func TestBadge(t *testing.T) {
	assert.Contains(t, Badge("USDT", false), "USDT ▾")
	assert.Contains(t, Badge("USDT", true), "USDT ▴")
}
