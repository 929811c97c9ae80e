package components

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/cashout/internal/catalog"
	"github.com/Dallionking/cashout/internal/tui/styles"
)

const (
	// SelectPlaceholder is shown while nothing is selected.
	SelectPlaceholder = "Select an option"
	// NoResults is shown when the search matches no option.
	NoResults = "No results found"

	maxSuggestDistance = 3
	maxVisibleOptions  = 6
)

// Select is a searchable dropdown. It owns only the open/search/cursor state;
// the selected option is pushed in by the parent model.
type Select struct {
	Field       string
	Label       string
	Placeholder string
	Options     []catalog.Option
	Selected    *catalog.Option
	Error       string
	Width       int

	focused bool
	open    bool
	cursor  int
	search  textinput.Model
}

// NewSelect creates a closed Select for field.
func NewSelect(field, label string, options []catalog.Option) Select {
	ti := textinput.New()
	ti.Placeholder = "Search"
	ti.Prompt = "⌕ "
	ti.CharLimit = 32
	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.TextMuted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.TextPrimary)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.AccentPrimary)

	return Select{
		Field:       field,
		Label:       label,
		Placeholder: SelectPlaceholder,
		Options:     options,
		Width:       40,
		search:      ti,
	}
}

// Focus marks the select as the active field.
func (s *Select) Focus() { s.focused = true }

// Blur closes the dropdown and drops focus.
func (s *Select) Blur() {
	s.focused = false
	s.close()
}

// Focused reports whether the select has focus.
func (s Select) Focused() bool { return s.focused }

// IsOpen reports whether the dropdown list is showing.
func (s Select) IsOpen() bool { return s.open }

// Query returns the current search text.
func (s Select) Query() string { return s.search.Value() }

func (s *Select) openList() {
	s.open = true
	s.cursor = 0
	s.search.SetValue("")
	s.search.Focus()
}

func (s *Select) close() {
	s.open = false
	s.cursor = 0
	s.search.SetValue("")
	s.search.Blur()
}

// Filtered returns the options whose name contains the search text,
// case-insensitively, in catalog order.
func (s Select) Filtered() []catalog.Option {
	q := strings.ToLower(strings.TrimSpace(s.search.Value()))
	if q == "" {
		return s.Options
	}
	var out []catalog.Option
	for _, o := range s.Options {
		if strings.Contains(strings.ToLower(o.Name), q) {
			out = append(out, o)
		}
	}
	return out
}

// Suggestion returns the option name closest to the search text when the
// search matches nothing, or "" when no name is within edit distance 3.
func (s Select) Suggestion() string {
	q := strings.ToLower(strings.TrimSpace(s.search.Value()))
	if q == "" || len(s.Filtered()) > 0 {
		return ""
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, o := range s.Options {
		candidates := append([]string{o.Name}, strings.Fields(o.Name)...)
		for _, c := range candidates {
			d := levenshtein.ComputeDistance(q, strings.ToLower(c))
			if d < bestDist {
				best, bestDist = o.Name, d
			}
		}
	}
	return best
}

// Update handles keys while focused. Picking an option closes the list and
// returns a command producing OptionSelectedMsg.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if !s.open {
		switch keyMsg.String() {
		case "enter", " ", "down":
			s.openList()
			return s, textinput.Blink
		}
		return s, nil
	}

	switch keyMsg.String() {
	case "esc":
		s.close()
		return s, nil
	case "up", "ctrl+p":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil
	case "down", "ctrl+n":
		if s.cursor < len(s.Filtered())-1 {
			s.cursor++
		}
		return s, nil
	case "enter":
		filtered := s.Filtered()
		if len(filtered) == 0 {
			return s, nil
		}
		picked := filtered[s.cursor]
		s.Selected = &picked
		s.close()
		return s, emit(OptionSelectedMsg{Field: s.Field, Option: picked})
	}

	before := s.search.Value()
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	if s.search.Value() != before {
		s.cursor = 0
	}
	return s, cmd
}

// View renders the label, the closed field and, when open, the list.
func (s Select) View() string {
	var b strings.Builder
	b.WriteString(styles.Label.Render(s.Label))
	b.WriteString("\n")

	text := lipgloss.NewStyle().Foreground(styles.TextMuted).Render(s.Placeholder)
	if s.Selected != nil {
		text = styles.Value.Render(styles.TruncateWithEllipsis(s.Selected.Name, s.innerWidth()-4))
	}
	arrow := "▾"
	if s.open {
		arrow = "▴"
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(s.innerWidth()-4).Render(text),
		styles.Dim(arrow),
	)
	b.WriteString(s.frame().Width(s.innerWidth()).Render(row))

	if s.open {
		b.WriteString("\n")
		b.WriteString(s.ListView())
	} else if s.Error != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorText.Render(s.Error))
	}
	return b.String()
}

// BadgeView renders the selection as a compact pill, used for the token
// selector inside the pay input.
func (s Select) BadgeView() string {
	text := "—"
	if s.Selected != nil {
		text = catalog.ShortName(s.Selected.Name)
	}
	if s.focused && !s.open {
		return lipgloss.NewStyle().Underline(true).Render(styles.Badge(text, false))
	}
	return styles.Badge(text, s.open)
}

// ListView renders the search box and the filtered options.
func (s Select) ListView() string {
	lines := []string{s.search.View()}

	filtered := s.Filtered()
	if len(filtered) == 0 {
		lines = append(lines, styles.Dim(NoResults))
		if hint := s.Suggestion(); hint != "" {
			lines = append(lines, styles.Dim("Did you mean ")+styles.Mint(hint)+styles.Dim("?"))
		}
	}

	start := 0
	if s.cursor >= maxVisibleOptions {
		start = s.cursor - maxVisibleOptions + 1
	}
	for i := start; i < len(filtered) && i < start+maxVisibleOptions; i++ {
		o := filtered[i]
		mark := "  "
		if s.Selected != nil && s.Selected.ID == o.ID {
			mark = styles.Green("✓ ")
		}
		style := lipgloss.NewStyle().Foreground(styles.TextSecondary)
		if i == s.cursor {
			style = lipgloss.NewStyle().Background(styles.BgHover).Foreground(styles.AccentPrimary).Bold(true)
		}
		lines = append(lines, mark+style.Render(o.Name))
	}

	return styles.Dropdown.Width(s.innerWidth()).Render(strings.Join(lines, "\n"))
}

func (s Select) frame() lipgloss.Style {
	switch {
	case s.focused:
		return styles.FieldFocused
	case s.Error != "":
		return styles.FieldError
	default:
		return styles.Field
	}
}

func (s Select) innerWidth() int {
	if s.Width < 12 {
		return 12
	}
	return s.Width
}
