package views

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/cashout/internal/catalog"
	"github.com/Dallionking/cashout/internal/tui/models"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingSender) snapshot() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tea.Msg(nil), r.msgs...)
}

func TestForwardReloadsUntilChannelCloses(t *testing.T) {
	events := make(chan catalog.Event, 2)
	c := catalog.Default()
	events <- catalog.Event{Path: "/tmp/catalog.json", Catalog: c}
	events <- catalog.Event{Path: "/tmp/catalog.json", Err: errors.New("bad json")}
	close(events)

	rec := &recordingSender{}
	forwardReloads(context.Background(), events, rec)

	msgs := rec.snapshot()
	require.Len(t, msgs, 2)
	first, ok := msgs[0].(models.CatalogReloadedMsg)
	require.True(t, ok)
	assert.Same(t, c, first.Catalog)
	assert.NoError(t, first.Err)

	second := msgs[1].(models.CatalogReloadedMsg)
	assert.EqualError(t, second.Err, "bad json")
	assert.Equal(t, "/tmp/catalog.json", second.Path)
}

func TestForwardReloadsStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan catalog.Event)
	done := make(chan struct{})

	go func() {
		forwardReloads(ctx, events, &recordingSender{})
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forwardReloads did not return after cancel")
	}
}
