// Package fetch keeps the browser's view of the remote collection in sync
// with the query descriptor.
package fetch

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"pokebrowse/internal/api"
	"pokebrowse/internal/domain"
	"pokebrowse/internal/query"
)

// ViewModel is the render-ready projection of the latest fetched page
type ViewModel struct {
	Entities   []domain.Pokemon
	Loading    bool
	TotalPages int
}

// ResultMsg carries a finished request back to the UI loop
type ResultMsg struct {
	Seq        uint64
	Descriptor query.Descriptor
	Page       domain.Page
	Err        error
}

// Options controls how overlapping responses are reconciled
type Options struct {
	// DiscardStale drops a response older than the newest one already
	// applied. When false, responses are applied in arrival order.
	DiscardStale bool
}

// Coordinator issues requests and folds their results into the view model.
// Trigger and Apply must be called from the UI loop; only the returned
// commands run on other goroutines.
type Coordinator struct {
	ctx    context.Context
	client api.Client
	opts   Options

	vm       ViewModel
	seq      uint64 // last issued request
	applied  uint64 // newest request whose result is displayed
	inFlight int
	last     query.Descriptor
}

// New creates a coordinator with an empty, loading view model
func New(ctx context.Context, client api.Client, opts Options) *Coordinator {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Coordinator{
		ctx:    ctx,
		client: client,
		opts:   opts,
		vm:     ViewModel{Loading: true},
	}
}

// View returns the current view model
func (c *Coordinator) View() ViewModel {
	return c.vm
}

// InFlight returns the number of requests that have not reported back
func (c *Coordinator) InFlight() int {
	return c.inFlight
}

// Trigger returns the command that fetches the page for d. Earlier requests
// are not cancelled.
func (c *Coordinator) Trigger(d query.Descriptor) tea.Cmd {
	c.seq++
	seq := c.seq
	c.inFlight++
	c.last = d

	log.Printf("fetch #%d: %s", seq, d.Encode())

	ctx, client := c.ctx, c.client
	return func() tea.Msg {
		page, err := client.List(ctx, d)
		return ResultMsg{
			Seq:        seq,
			Descriptor: d,
			Page:       page,
			Err:        err,
		}
	}
}

// Reload re-issues the most recently triggered descriptor
func (c *Coordinator) Reload() tea.Cmd {
	return c.Trigger(c.last)
}

// Apply folds a result into the view model and reports whether the view
// model was replaced. Failures are logged and leave it untouched, including
// the loading flag.
func (c *Coordinator) Apply(msg ResultMsg) bool {
	if c.inFlight > 0 {
		c.inFlight--
	}

	if msg.Err != nil {
		log.Printf("fetch #%d failed: %v", msg.Seq, msg.Err)
		return false
	}

	if c.opts.DiscardStale && msg.Seq < c.applied {
		log.Printf("fetch #%d dropped: #%d already displayed", msg.Seq, c.applied)
		return false
	}

	c.vm = ViewModel{
		Entities:   msg.Page.Data,
		Loading:    false,
		TotalPages: msg.Page.TotalPages,
	}
	c.applied = msg.Seq
	log.Printf("fetch #%d applied: %d rows, %d pages", msg.Seq, len(msg.Page.Data), msg.Page.TotalPages)
	return true
}
