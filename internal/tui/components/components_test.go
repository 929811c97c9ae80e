package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/cashout/internal/catalog"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }
func press(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

// collect runs cmd and any batched children concurrently and returns the
// messages produced within a short window. Cursor blink commands sleep, so
// they are simply left behind.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	out := make(chan tea.Msg, 64)
	var run func(c tea.Cmd)
	run = func(c tea.Cmd) {
		go func() {
			msg := c()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, child := range batch {
					if child != nil {
						run(child)
					}
				}
				return
			}
			out <- msg
		}()
	}
	run(cmd)

	var msgs []tea.Msg
	timeout := time.After(200 * time.Millisecond)
	for {
		select {
		case m := <-out:
			msgs = append(msgs, m)
		case <-timeout:
			return msgs
		}
	}
}

func bankSelect() Select {
	s := NewSelect("recipientBank", "Bank", catalog.Default().Banks)
	s.Focus()
	return s
}

func TestSelectIgnoresKeysWhenBlurred(t *testing.T) {
	s := NewSelect("recipientBank", "Bank", catalog.Default().Banks)
	s, cmd := s.Update(press(tea.KeyEnter))
	assert.False(t, s.IsOpen())
	assert.Nil(t, cmd)
}

func TestSelectFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query lists everything", "", []string{"First Bank", "GTBank", "Access Bank", "UBA", "Zenith Bank"}},
		{"case insensitive substring", "BANK", []string{"First Bank", "GTBank", "Access Bank", "Zenith Bank"}},
		{"middle of name", "ccess", []string{"Access Bank"}},
		{"no match", "xyz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := bankSelect()
			s, _ = s.Update(press(tea.KeyEnter))
			require.True(t, s.IsOpen())
			if tt.query != "" {
				s, _ = s.Update(runes(tt.query))
			}
			var names []string
			for _, o := range s.Filtered() {
				names = append(names, o.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestSelectNoResultsAndSuggestion(t *testing.T) {
	s := bankSelect()
	s, _ = s.Update(press(tea.KeyEnter))
	s, _ = s.Update(runes("gtbenk"))

	assert.Empty(t, s.Filtered())
	assert.Equal(t, "GTBank", s.Suggestion())
	view := s.View()
	assert.Contains(t, view, NoResults)
	assert.Contains(t, view, "GTBank")

	s2 := bankSelect()
	s2, _ = s2.Update(press(tea.KeyEnter))
	s2, _ = s2.Update(runes("qqqqqqqqqq"))
	assert.Empty(t, s2.Suggestion(), "nothing within edit distance 3")
}

func TestSelectPickEmitsMessageAndCloses(t *testing.T) {
	s := bankSelect()
	s, _ = s.Update(press(tea.KeyEnter))
	s, _ = s.Update(runes("bank"))
	s, _ = s.Update(press(tea.KeyDown))
	s, cmd := s.Update(press(tea.KeyEnter))

	require.NotNil(t, cmd)
	msg, ok := cmd().(OptionSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, "recipientBank", msg.Field)
	assert.Equal(t, "bank-2", msg.Option.ID)
	assert.False(t, s.IsOpen())
	assert.Empty(t, s.Query())
	require.NotNil(t, s.Selected)
	assert.Equal(t, "GTBank", s.Selected.Name)
}

func TestSelectEscapeResetsSearch(t *testing.T) {
	s := bankSelect()
	s, _ = s.Update(press(tea.KeyEnter))
	s, _ = s.Update(runes("zen"))
	require.Equal(t, "zen", s.Query())

	s, cmd := s.Update(press(tea.KeyEsc))
	assert.Nil(t, cmd)
	assert.False(t, s.IsOpen())
	assert.Nil(t, s.Selected)

	s, _ = s.Update(press(tea.KeyEnter))
	assert.Empty(t, s.Query())
	assert.Len(t, s.Filtered(), 5)
}

func TestSelectEnterOnEmptyResultKeepsOpen(t *testing.T) {
	s := bankSelect()
	s, _ = s.Update(press(tea.KeyEnter))
	s, _ = s.Update(runes("xyz"))
	s, cmd := s.Update(press(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.True(t, s.IsOpen())
}

func TestSelectViewPlaceholderAndError(t *testing.T) {
	s := NewSelect("sourceWallet", "Pay from", catalog.Default().Wallets)
	s.Error = "Please select a wallet"
	view := s.View()
	assert.Contains(t, view, "Pay from")
	assert.Contains(t, view, SelectPlaceholder)
	assert.Contains(t, view, "Please select a wallet")
}

func TestSelectBadgeShowsFirstWord(t *testing.T) {
	c := catalog.Default()
	s := NewSelect("token", "Token", c.TokenOptions())
	opt := c.TokenOptions()[1]
	s.Selected = &opt
	assert.Contains(t, s.BadgeView(), "USDT")
	assert.NotContains(t, s.BadgeView(), "CELO")
}

func TestPayInputFiltersKeystrokes(t *testing.T) {
	in := NewPayInput("payAmount", "")
	in.Focus()

	var cmd tea.Cmd
	for _, r := range "1.5" {
		in, cmd = in.Update(runes(string(r)))
	}
	assert.Equal(t, "1.5", in.Value())

	var changed []ValueChangedMsg
	for _, m := range collect(cmd) {
		if v, ok := m.(ValueChangedMsg); ok {
			changed = append(changed, v)
		}
	}
	require.Len(t, changed, 1)
	assert.Equal(t, ValueChangedMsg{Field: "payAmount", Value: "1.5"}, changed[0])

	for _, bad := range []string{"a", ".", "-", " "} {
		in, cmd = in.Update(runes(bad))
		assert.Equal(t, "1.5", in.Value(), "rejected %q", bad)
		assert.Nil(t, cmd)
	}

	in, _ = in.Update(press(tea.KeyBackspace))
	assert.Equal(t, "1.", in.Value())
}

func TestReceiveInputIsReadOnly(t *testing.T) {
	in := NewReceiveInput("450,000.00")
	assert.Nil(t, in.Focus())
	in, cmd := in.Update(runes("9"))
	assert.Nil(t, cmd)
	assert.Equal(t, "450,000.00", in.Value())
	assert.Contains(t, in.View(), "You receive")
	assert.Contains(t, in.View(), "450,000.00")
}

func TestInputEmitsChangesAndShowsError(t *testing.T) {
	in := NewInput("accountNumber", "Account number", "Enter your account number")
	in.Focus()
	in, cmd := in.Update(runes("12345"))
	assert.Equal(t, "12345", in.Value())

	found := false
	for _, m := range collect(cmd) {
		if v, ok := m.(ValueChangedMsg); ok {
			found = true
			assert.Equal(t, "12345", v.Value)
		}
	}
	assert.True(t, found)

	in.Error = "Account number must be at least 10 digits"
	in.Blur()
	assert.Contains(t, in.View(), "Account number must be at least 10 digits")
}

func TestDisabledInput(t *testing.T) {
	in := NewDisabledInput("Account name", "ODUTUGA GBEKE")
	assert.Nil(t, in.Focus())
	assert.False(t, in.Focused())
	in, cmd := in.Update(runes("x"))
	assert.Nil(t, cmd)
	assert.Equal(t, "ODUTUGA GBEKE", in.Value())
	assert.Contains(t, in.View(), "ODUTUGA GBEKE")
}

func TestTabBarNeighborWraps(t *testing.T) {
	tb := TabBar{Tabs: catalog.Default().Tabs, Active: catalog.TabCryptoToCash}
	assert.Equal(t, catalog.TabCashToCrypto, tb.Neighbor(1))
	assert.Equal(t, catalog.TabLoan, tb.Neighbor(-1))
	assert.Equal(t, catalog.TabCryptoToCash, tb.Neighbor(3))
	assert.Equal(t, catalog.TabID("x"), TabBar{Active: "x"}.Neighbor(1))
}

func TestButtonKeepsLabelWhenDisabled(t *testing.T) {
	out := Button{Label: "Convert now", Disabled: true, Width: 30}.Render()
	assert.Contains(t, out, "Convert now")
}

func TestProgressStep(t *testing.T) {
	out := ProgressStep{Steps: []string{"Payment", "Recipient details"}, Current: 1}.Render()
	assert.Contains(t, out, "Recipient details")
	assert.Contains(t, out, "2/2")
}

func TestHeaderBackHint(t *testing.T) {
	out := Header{Title: "Recipient details", BackHint: true, Width: 50}.Render()
	assert.Contains(t, out, "esc")
	assert.Contains(t, out, "Recipient details")
}

func TestFooterSkipsDisabledBindings(t *testing.T) {
	back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	back.SetEnabled(false)
	f := Footer{Bindings: []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		back,
	}, Width: 60}
	out := f.Render()
	assert.Contains(t, out, "next field")
	assert.False(t, strings.Contains(out, "back"))
}

func TestConfirmDialog(t *testing.T) {
	tests := []struct {
		name      string
		keys      []tea.KeyMsg
		confirmed bool
	}{
		{"y confirms", []tea.KeyMsg{runes("y")}, true},
		{"n declines", []tea.KeyMsg{runes("n")}, false},
		{"esc declines", []tea.KeyMsg{press(tea.KeyEsc)}, false},
		{"enter defaults to no", []tea.KeyMsg{press(tea.KeyEnter)}, false},
		{"left then enter", []tea.KeyMsg{press(tea.KeyLeft), press(tea.KeyEnter)}, true},
		{"second ctrl+c", []tea.KeyMsg{press(tea.KeyCtrlC)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewConfirmDialog("Leave checkout?", "Your details will be lost.")
			for _, k := range tt.keys {
				d, _ = d.Update(k)
			}
			assert.True(t, d.Done)
			assert.Equal(t, tt.confirmed, d.Confirmed)
		})
	}
}
