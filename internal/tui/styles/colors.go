package styles

import "github.com/charmbracelet/lipgloss"

// Evergreen -- checkout palette
// Deep teal surfaces with mint accents, red reserved for field errors.

var (
	// Backgrounds (darkest to lightest)
	BgDeep    = lipgloss.Color("#01161a") // Deepest -- main background
	BgPanel   = lipgloss.Color("#022a30") // Card background
	BgSurface = lipgloss.Color("#013941") // Inputs, active tab
	BgHover   = lipgloss.Color("#0b4a52") // Highlighted dropdown row

	// Accents
	AccentPrimary   = lipgloss.Color("#CCF6E5") // Mint -- focus, active tab
	AccentSecondary = lipgloss.Color("#5ed3a8") // Green -- amounts, badges
	AccentGold      = lipgloss.Color("#f5a623") // Gold -- notices

	// Status
	StatusOK    = lipgloss.Color("#22c55e") // Green
	StatusWarn  = lipgloss.Color("#f59e0b") // Amber
	StatusError = lipgloss.Color("#ef4444") // Red -- validation messages

	// Text
	TextPrimary   = lipgloss.Color("#f1f5f4") // High contrast
	TextSecondary = lipgloss.Color("#9fb5b0") // Labels
	TextMuted     = lipgloss.Color("#5f7773") // Placeholders, disabled

	// Borders
	BorderNormal  = lipgloss.Color("#1f4b51") // Idle field
	BorderFocused = lipgloss.Color("#CCF6E5") // Mint focus ring
)
