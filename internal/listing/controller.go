package listing

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/clientes/internal/client"
	"github.com/umalmyha/clientes/internal/model"
)

// Default delays of controller timers
const (
	DefaultSearchDelay = 300 * time.Millisecond
	DefaultMessageTTL  = 3 * time.Second
)

// ClienteAPI is subset of cliente API used by list screen
type ClienteAPI interface {
	List(context.Context) ([]*model.Cliente, error)
	Create(context.Context, *model.Cliente) (*model.Cliente, error)
	Update(context.Context, string, *model.Cliente) error
	Delete(context.Context, string) error
}

// Options tune Controller, zero values fall back to defaults
type Options struct {
	SearchDelay time.Duration
	MessageTTL  time.Duration
	// Confirm asks user a question, deletion is cancelled on false
	Confirm func(question string) bool
	// OnChange receives every new state, it is called outside of controller lock
	OnChange func(State)
}

// Controller sequences state transitions with cliente API calls.
// It is safe for concurrent use, results arriving after Close are dropped.
type Controller struct {
	mu        sync.Mutex
	state     State
	closed    bool
	notifying sync.WaitGroup

	api      ClienteAPI
	logger   logrus.FieldLogger
	confirm  func(string) bool
	onChange func(State)

	ctx    context.Context
	cancel context.CancelFunc

	search *Debouncer[string]
	expiry *Debouncer[struct{}]
}

func NewController(api ClienteAPI, logger logrus.FieldLogger, opts Options) *Controller {
	if opts.SearchDelay <= 0 {
		opts.SearchDelay = DefaultSearchDelay
	}
	if opts.MessageTTL <= 0 {
		opts.MessageTTL = DefaultMessageTTL
	}
	if opts.Confirm == nil {
		opts.Confirm = func(string) bool { return true }
	}
	if opts.OnChange == nil {
		opts.OnChange = func(State) {}
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		state:    Initial(),
		api:      api,
		logger:   logger,
		confirm:  opts.Confirm,
		onChange: opts.OnChange,
		ctx:      ctx,
		cancel:   cancel,
	}

	c.search = NewDebouncer(opts.SearchDelay, func(term string) {
		c.update(func(s State) State {
			next, _ := CommitSearch(s, term)
			return next
		})
	})
	c.expiry = NewDebouncer(opts.MessageTTL, func(struct{}) {
		c.update(ExpireMessage)
	})
	return c
}

// State returns snapshot of current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) update(fn func(State) State) (State, bool) {
	c.mu.Lock()
	if c.closed {
		s := c.state
		c.mu.Unlock()
		return s, false
	}
	c.state = fn(c.state)
	s := c.state
	c.notifying.Add(1)
	c.mu.Unlock()

	defer c.notifying.Done()
	c.onChange(s)
	return s, true
}

func (c *Controller) dropped() bool {
	return c.ctx.Err() != nil
}

// Load fetches full record set, failure keeps records loaded before
func (c *Controller) Load() {
	if _, ok := c.update(LoadStarted); !ok {
		return
	}

	records, err := c.api.List(c.ctx)
	if c.dropped() {
		return
	}

	if err != nil {
		c.logger.Debugf("failed to load clientes - %s", err)
		c.update(func(s State) State { return LoadFailed(s, client.Message(err)) })
		return
	}
	c.update(func(s State) State { return LoadSucceeded(s, records) })
}

// Type receives raw search input, term is committed after quiet period
func (c *Controller) Type(raw string) {
	c.search.Push(raw)
}

// Refresh clears search and reloads records
func (c *Controller) Refresh() {
	c.search.Cancel()
	if _, ok := c.update(ClearSearch); !ok {
		return
	}
	c.Load()
}

func (c *Controller) SortBy(field Field) {
	c.update(func(s State) State { return SortBy(s, field) })
}

func (c *Controller) ToggleOrder() {
	c.update(ToggleOrder)
}

func (c *Controller) BeginCreate() {
	c.update(BeginCreate)
}

// BeginEdit opens form for loaded record, false if there is no such record
func (c *Controller) BeginEdit(ruc string) bool {
	found := false
	c.update(func(s State) State {
		if rec := s.Find(ruc); rec != nil {
			found = true
			return BeginEdit(s, rec)
		}
		return s
	})
	return found
}

// ShowDetails selects loaded record for detail view, false if there is no such record
func (c *Controller) ShowDetails(ruc string) bool {
	found := false
	c.update(func(s State) State {
		if rec := s.Find(ruc); rec != nil {
			found = true
			return ShowDetails(s, rec)
		}
		return s
	})
	return found
}

func (c *Controller) CloseDetails() {
	c.update(CloseDetails)
}

func (c *Controller) EditFromDetails() {
	c.update(EditFromDetails)
}

// DeleteFromDetails deletes record shown in detail view
func (c *Controller) DeleteFromDetails() bool {
	selected := c.State().Selected
	if selected == nil {
		return false
	}

	if !c.confirm(ConfirmDeleteMessage) {
		return false
	}
	c.update(CloseDetails)
	return c.delete(selected.RUC)
}

func (c *Controller) SetField(field Field, value string) {
	c.update(func(s State) State { return SetField(s, field, value) })
}

func (c *Controller) CancelForm() {
	c.update(CancelForm)
}

// Save validates form and submits it, true when record was stored
func (c *Controller) Save() bool {
	var (
		submitted bool
		snapshot  State
	)
	c.update(func(s State) State {
		next, ok := SubmitStarted(s)
		submitted, snapshot = ok, next
		return next
	})
	if !submitted {
		return false
	}

	var err error
	if snapshot.IsEditing {
		err = c.api.Update(c.ctx, snapshot.Form.OriginalRUC, snapshot.Form.Cliente())
	} else {
		_, err = c.api.Create(c.ctx, snapshot.Form.Cliente())
	}

	if c.dropped() {
		return false
	}

	if err != nil {
		c.logger.Debugf("failed to save cliente %s - %s", snapshot.Form.RUC, err)
		c.update(func(s State) State { return SaveFailed(s, client.Message(err)) })
		return false
	}

	c.update(SaveSucceeded)
	c.expiry.Push(struct{}{})
	c.Load()
	return true
}

// Delete asks for confirmation and deletes record, true when record was deleted
func (c *Controller) Delete(ruc string) bool {
	if !c.confirm(ConfirmDeleteMessage) {
		return false
	}
	return c.delete(ruc)
}

func (c *Controller) delete(ruc string) bool {
	if _, ok := c.update(DeleteStarted); !ok {
		return false
	}

	err := c.api.Delete(c.ctx, ruc)
	if c.dropped() {
		return false
	}

	if err != nil {
		c.logger.Debugf("failed to delete cliente %s - %s", ruc, err)
		c.update(func(s State) State { return DeleteFailed(s, client.Message(err)) })
		return false
	}

	c.update(DeleteSucceeded)
	c.expiry.Push(struct{}{})
	c.Load()
	return true
}

// Close cancels in-flight requests and pending timers.
// It returns once no OnChange call is running, so it must not be called from OnChange.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.search.Stop()
	c.expiry.Stop()
	c.notifying.Wait()
}
