package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/domain/schema"
	"github.com/erp/console/internal/infrastructure/api"
)

// FormState is the modal form lifecycle.
type FormState int

const (
	Closed FormState = iota
	Editing
	Submitting
)

func (s FormState) String() string {
	switch s {
	case Closed:
		return "closed"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	default:
		return fmt.Sprintf("FormState(%d)", int(s))
	}
}

// ErrInvalid is returned when a submit is rejected by validation; the
// per-field messages are available from Errors.
var ErrInvalid = errors.New("validation failed")

// ErrBusy is returned when a submit arrives while one is already in flight.
var ErrBusy = errors.New("submit in flight")

// Option is one choice in a reference dropdown.
type Option struct {
	ID    int
	Label string
}

// Form manages one entity's create/edit modal. A form is either closed,
// editing, or submitting; only one submission can be in flight at a time,
// and a failed submission returns to editing with the draft intact.
type Form struct {
	client *api.Client
	entity *catalog.Entity
	log    *zap.Logger

	mu        sync.Mutex
	state     FormState
	editID    int
	draft     schema.Draft
	errors    map[string]string
	submitErr string
	options   map[string][]Option
}

// NewForm builds a form controller for one entity.
func NewForm(client *api.Client, entity *catalog.Entity, log *zap.Logger) *Form {
	return &Form{client: client, entity: entity, log: log, options: map[string][]Option{}}
}

// State returns the current lifecycle state.
func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// EditID returns the id being edited, or 0 for a create form.
func (f *Form) EditID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editID
}

// OpenCreate opens an empty form seeded with the schema's defaults.
func (f *Form) OpenCreate(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = Editing
	f.editID = 0
	f.draft = f.entity.Schema.Defaults(now)
	f.errors = nil
	f.submitErr = ""
}

// OpenEdit opens the form pre-filled from an existing record.
func (f *Form) OpenEdit(rec api.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = Editing
	f.editID = f.entity.ID(rec)
	f.draft = f.entity.Schema.DraftFromRecord(rec)
	f.errors = nil
	f.submitErr = ""
}

// Close discards the draft.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = Closed
	f.editID = 0
	f.draft = nil
	f.errors = nil
	f.submitErr = ""
}

// Set updates one draft field by its form name.
func (f *Form) Set(uiKey, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.draft == nil {
		return
	}
	f.draft[uiKey] = value
	delete(f.errors, uiKey)
}

// Value returns one draft field.
func (f *Form) Value(uiKey string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft[uiKey]
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() schema.Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(schema.Draft, len(f.draft))
	for k, v := range f.draft {
		out[k] = v
	}
	return out
}

// Errors returns the per-field validation messages from the last submit.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors
}

// SubmitError returns the friendly message from the last failed submission.
func (f *Form) SubmitError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitErr
}

// LoadOptions fetches the dropdown choices for every entity this form's
// reference fields point at. An empty referenced collection is not an
// error; the dropdown simply has no choices. A fetch failure leaves the
// previous options in place.
func (f *Form) LoadOptions(ctx context.Context) error {
	var firstErr error
	for _, src := range f.entity.Schema.RefSources() {
		ref, ok := catalog.ByName(src)
		if !ok {
			continue
		}
		recs, err := f.client.List(ctx, ref.Resource())
		if err != nil {
			f.log.Warn("reference options unavailable",
				zap.String("entity", f.entity.Name),
				zap.String("source", src),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		opts := make([]Option, 0, len(recs))
		for _, rec := range recs {
			opts = append(opts, Option{ID: ref.ID(rec), Label: ref.Label(rec)})
		}
		f.mu.Lock()
		f.options[src] = opts
		f.mu.Unlock()
	}
	return firstErr
}

// Options returns the dropdown choices for one referenced entity.
func (f *Form) Options(source string) []Option {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.options[source]
}

// Submit validates the draft and sends it to the backend. Validation
// failures never leave the console; the backend only sees drafts that
// passed. On transport or backend failure the form returns to editing with
// the draft intact and a friendly message set.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case Submitting:
		f.mu.Unlock()
		return ErrBusy
	case Closed:
		f.mu.Unlock()
		return errors.New("form is closed")
	}

	errs := f.entity.Schema.Validate(f.draft, f.entity.Rules)
	if len(errs) > 0 {
		f.errors = errs
		f.mu.Unlock()
		return ErrInvalid
	}
	f.errors = nil
	f.submitErr = ""
	f.state = Submitting
	editID := f.editID
	body := f.entity.Schema.WireFromDraft(f.draft)
	f.mu.Unlock()

	var err error
	if editID == 0 {
		_, err = f.client.Create(ctx, f.entity.Resource(), body)
	} else {
		_, err = f.client.Update(ctx, f.entity.Resource(), editID, body)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Editing
		f.submitErr = api.FriendlyMessage(err, fmt.Sprintf("Could not save %s", f.entity.Title))
		f.log.Warn("submit failed",
			zap.String("entity", f.entity.Name),
			zap.Int("id", editID),
			zap.Error(err))
		return err
	}
	f.state = Closed
	f.editID = 0
	f.draft = nil
	return nil
}
