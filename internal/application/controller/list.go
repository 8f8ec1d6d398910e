// Package controller holds the generic list and form state machines shared
// by every entity screen. They are entity-agnostic: all behavior differences
// come from the catalog descriptor they are constructed with.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/infrastructure/api"
)

// ErrCancelled is returned when the user declines a confirmation prompt.
var ErrCancelled = errors.New("cancelled")

// Confirmer asks the user to approve a destructive action.
type Confirmer func(prompt string) bool

// List manages one entity's collection view: the full fetched set, the
// filter query, and the loading flag. The filtered view is always derived
// from the full set, so clearing the query restores every record without
// another fetch.
type List struct {
	client  *api.Client
	entity  *catalog.Entity
	confirm Confirmer
	log     *zap.Logger

	mu      sync.Mutex
	gen     int
	cancel  context.CancelFunc
	all     []api.Record
	query   string
	loading bool
	err     error
}

// NewList builds a list controller for one entity. confirm may be nil, in
// which case deletes proceed without a prompt.
func NewList(client *api.Client, entity *catalog.Entity, confirm Confirmer, log *zap.Logger) *List {
	return &List{client: client, entity: entity, confirm: confirm, log: log}
}

// Entity returns the descriptor this controller was built for.
func (l *List) Entity() *catalog.Entity {
	return l.entity
}

// Refresh fetches the collection and replaces the record set wholesale.
// Starting a new refresh supersedes any in-flight one: the older fetch is
// cancelled and its result, if it still arrives, is discarded.
func (l *List) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.loading = true
	l.mu.Unlock()

	recs, err := l.client.List(ctx, l.entity.Resource())

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		cancel()
		return nil
	}
	l.loading = false
	l.cancel = nil
	cancel()
	if err != nil {
		l.err = err
		l.log.Warn("list refresh failed",
			zap.String("entity", l.entity.Name),
			zap.Error(err))
		return err
	}
	l.err = nil
	l.all = recs
	return nil
}

// Close cancels any in-flight fetch and marks its eventual result stale.
// Navigating away from the screen must not let a late response clobber the
// next screen's state.
func (l *List) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.loading = false
}

// SetQuery updates the filter text. The record set is untouched.
func (l *List) SetQuery(q string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.query = q
}

// Query returns the current filter text.
func (l *List) Query() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.query
}

// All returns every fetched record.
func (l *List) All() []api.Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.all
}

// Records returns the records matching the current query.
func (l *List) Records() []api.Record {
	l.mu.Lock()
	query := l.query
	all := l.all
	l.mu.Unlock()

	if query == "" {
		return all
	}
	var out []api.Record
	for _, rec := range all {
		if l.entity.Matches(rec, query) {
			out = append(out, rec)
		}
	}
	return out
}

// Loading reports whether a fetch is in flight.
func (l *List) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Err returns the last fetch error, cleared by a successful refresh.
func (l *List) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Delete removes one record after confirmation, then refetches the
// collection so the view reflects what the backend actually holds.
func (l *List) Delete(ctx context.Context, id int) error {
	if l.entity.ListOnly {
		return fmt.Errorf("%s is read only", l.entity.Title)
	}
	if l.confirm != nil && !l.confirm(fmt.Sprintf("Delete %s #%d?", l.entity.Title, id)) {
		return ErrCancelled
	}
	if err := l.client.Delete(ctx, l.entity.Resource(), id); err != nil {
		l.log.Warn("delete failed",
			zap.String("entity", l.entity.Name),
			zap.Int("id", id),
			zap.Error(err))
		return err
	}
	return l.Refresh(ctx)
}
