package autocomplete

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Iron-Ham/searchbox/internal/errors"
	"github.com/Iron-Ham/searchbox/internal/logging"
	"github.com/benbjohnson/clock"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

// DefaultDebounce is the quiet period used when Options.Debounce is not set.
const DefaultDebounce = 500 * time.Millisecond

// Options configures a Controller.
type Options struct {
	// Debounce is the quiet period between the last keystroke and the lookup.
	// Zero or negative selects DefaultDebounce.
	Debounce time.Duration

	// Clock drives the debounce timer. Defaults to the wall clock.
	Clock clock.Clock

	// OnSelect receives the committed value on select, submit and clear.
	OnSelect func(value string)

	// OnError receives lookup failures, wrapped in *errors.FetchError.
	OnError func(err error)

	// OnUpdate is called after a lookup response has been applied.
	OnUpdate func()

	Logger *logging.Logger
}

// Controller is the debounced search state machine. It is safe for
// concurrent use.
type Controller struct {
	fetcher  Fetcher
	debounce time.Duration
	clock    clock.Clock
	onSelect func(string)
	onError  func(error)
	onUpdate func()
	logger   *logging.Logger

	mu     sync.Mutex
	state  State
	timer  *clock.Timer
	cancel context.CancelFunc // cancels the lookup of the current generation
	closed bool

	lookups conc.WaitGroup
}

// New creates a Controller in the initial state: empty term, StatusIdle and
// no results.
func New(fetcher Fetcher, opts Options) *Controller {
	c := &Controller{
		fetcher:  fetcher,
		debounce: opts.Debounce,
		clock:    opts.Clock,
		onSelect: opts.OnSelect,
		onError:  opts.OnError,
		onUpdate: opts.OnUpdate,
		logger:   opts.Logger,
	}
	if c.debounce <= 0 {
		c.debounce = DefaultDebounce
	}
	if c.clock == nil {
		c.clock = clock.New()
	}
	if c.logger == nil {
		c.logger = logging.NopLogger()
	}
	c.logger = c.logger.WithComponent("controller")
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Results = slices.Clone(c.state.Results)
	return s
}

// Debounce returns the configured quiet period.
func (c *Controller) Debounce() time.Duration {
	return c.debounce
}

// InputChange records a keystroke. The term is updated immediately. A blank
// term resets the controller and reports "" to OnSelect; anything else
// supersedes pending work, switches to StatusLoading and restarts the
// debounce timer.
func (c *Controller) InputChange(raw string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.state.Term = raw
	term := strings.TrimSpace(raw)
	if term == "" {
		c.resetLocked()
		c.mu.Unlock()
		c.notifySelect("")
		return
	}

	gen := c.supersedeLocked()
	c.state.Status = StatusLoading
	c.state.Results = nil
	c.timer = c.clock.AfterFunc(c.debounce, func() {
		c.fire(gen, term)
	})
	c.mu.Unlock()
}

// Select commits a result: the term becomes the item's name, the list closes
// and OnSelect receives the name.
func (c *Controller) Select(item Item) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.supersedeLocked()
	c.state.Term = item.Name
	c.state.Status = StatusIdle
	c.state.Results = nil
	c.mu.Unlock()

	c.logger.Debug("item selected", "id", item.ID, "name", item.Name)
	c.notifySelect(item.Name)
}

// Submit commits the raw term as typed. It does nothing when the trimmed term
// is empty.
func (c *Controller) Submit() {
	c.mu.Lock()
	if c.closed || strings.TrimSpace(c.state.Term) == "" {
		c.mu.Unlock()
		return
	}
	term := c.state.Term
	c.supersedeLocked()
	c.state.Status = StatusIdle
	c.state.Results = nil
	c.mu.Unlock()

	c.logger.Debug("term submitted", "term", term)
	c.notifySelect(term)
}

// Clear returns to the initial state and reports "" to OnSelect.
func (c *Controller) Clear() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.resetLocked()
	c.mu.Unlock()

	c.notifySelect("")
}

// Close stops the debounce timer, cancels the in-flight lookup and waits for
// lookup goroutines to return. Later commands are ignored. Close is
// idempotent and must not be called from a callback.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.supersedeLocked()
	c.mu.Unlock()

	c.lookups.Wait()
	c.logger.Debug("controller closed")
	return nil
}

// resetLocked supersedes pending work and restores the initial state.
// The caller must hold c.mu.
func (c *Controller) resetLocked() {
	c.supersedeLocked()
	c.state.Term = ""
	c.state.Status = StatusIdle
	c.state.Results = nil
}

// supersedeLocked stops the pending timer, cancels the current lookup and
// starts a new generation, which it returns. The caller must hold c.mu.
func (c *Controller) supersedeLocked() uint64 {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state.Generation++
	return c.state.Generation
}

// fire runs when the debounce timer of generation gen expires.
func (c *Controller) fire(gen uint64, term string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.state.Generation {
		return
	}
	c.timer = nil

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.logger.WithTerm(term).Debug("lookup started", "generation", gen)
	c.lookups.Go(func() {
		c.lookup(ctx, gen, term)
	})
}

// lookup calls the fetcher and applies the response if gen is still current.
func (c *Controller) lookup(ctx context.Context, gen uint64, term string) {
	log := c.logger.WithTerm(term)
	items, panicked, err := c.callFetcher(ctx, term)

	c.mu.Lock()
	if c.closed || gen != c.state.Generation {
		c.mu.Unlock()
		log.Debug("stale response discarded", "generation", gen)
		return
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	switch {
	case err != nil:
		c.state.Status = StatusEmpty
		c.state.Results = nil
	case len(items) == 0:
		c.state.Status = StatusEmpty
		c.state.Results = nil
	default:
		c.state.Status = StatusIdle
		c.state.Results = slices.Clone(items)
	}
	c.mu.Unlock()

	if err != nil {
		fetchErr := errors.NewFetchError(term, err).WithGeneration(gen)
		if panicked {
			fetchErr = fetchErr.WithSeverity(errors.SeverityError)
		}
		log.Report(fetchErr, "lookup failed", "generation", gen)
		if c.onError != nil {
			c.onError(fetchErr)
		}
	} else {
		log.Debug("lookup applied", "generation", gen, "results", len(items))
	}

	if c.onUpdate != nil {
		c.onUpdate()
	}
}

// callFetcher invokes the fetcher, converting a panic into an error and
// reporting whether one occurred.
func (c *Controller) callFetcher(ctx context.Context, term string) (items []Item, panicked bool, err error) {
	var pc panics.Catcher
	pc.Try(func() {
		items, err = c.fetcher.Fetch(ctx, term)
	})
	if r := pc.Recovered(); r != nil {
		return nil, true, r.AsError()
	}
	return items, false, err
}

func (c *Controller) notifySelect(value string) {
	if c.onSelect != nil {
		c.onSelect(value)
	}
}
