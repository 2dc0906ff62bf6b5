// Package admin drives the editable lists of the admin pages. Every list is
// an Editor: a small state machine over a draft item that persists the whole
// collection on save or delete.
package admin

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

type State int

const (
	Viewing State = iota
	EditingExisting
	CreatingNew
	Saving
	Deleting
)

func (s State) String() string {
	switch s {
	case Viewing:
		return "viewing"
	case EditingExisting:
		return "editingExistingItem"
	case CreatingNew:
		return "creatingNewItem"
	case Saving:
		return "saving"
	case Deleting:
		return "deleting"
	}
	return "unknown"
}

var (
	ErrBusy        = errors.New("another save or delete is in progress")
	ErrNotEditing  = errors.New("no item is being edited")
	ErrUnknownItem = errors.New("item not found")
	ErrWrongState  = errors.New("action not allowed in the current state")
)

// Gate is shared by every editor persisting the same document, so a second
// submission is refused while one is in flight.
type Gate struct {
	mu   sync.Mutex
	busy bool
}

func (g *Gate) acquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return false
	}
	g.busy = true
	return true
}

func (g *Gate) release() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}

// PersistFunc stores the full collection and returns it as saved, with any
// server-issued ids filled in.
type PersistFunc[T any] func(ctx context.Context, items []T) ([]T, error)

type Editor[T any] struct {
	mu       sync.Mutex
	state    State
	items    []T
	draft    T
	deleting string
	// bumped by Cancel so a late persistence result does not move the state
	generation int

	idOf    func(T) string
	newItem func() T
	persist PersistFunc[T]
	gate    *Gate
}

func NewEditor[T any](items []T, idOf func(T) string, newItem func() T, persist PersistFunc[T], gate *Gate) *Editor[T] {
	if gate == nil {
		gate = &Gate{}
	}
	return &Editor[T]{
		items:   append([]T(nil), items...),
		idOf:    idOf,
		newItem: newItem,
		persist: persist,
		gate:    gate,
	}
}

func (e *Editor[T]) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Items returns a copy of the current collection.
func (e *Editor[T]) Items() []T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]T(nil), e.items...)
}

// Draft returns the item being edited.
func (e *Editor[T]) Draft() (T, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	editing := e.state == EditingExisting || e.state == CreatingNew || e.state == Saving
	return e.draft, editing
}

func (e *Editor[T]) indexOf(id string) int {
	for i, it := range e.items {
		if e.idOf(it) == id {
			return i
		}
	}
	return -1
}

// Select seeds the draft from the stored item with the given id.
func (e *Editor[T]) Select(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Viewing {
		return ErrWrongState
	}
	i := e.indexOf(id)
	if i < 0 {
		return ErrUnknownItem
	}
	e.draft = e.items[i]
	e.state = EditingExisting
	return nil
}

// New seeds the draft with an empty item.
func (e *Editor[T]) New() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Viewing {
		return ErrWrongState
	}
	e.draft = e.newItem()
	e.state = CreatingNew
	return nil
}

// Edit applies fn to the draft only. An error from fn leaves the draft
// unchanged.
func (e *Editor[T]) Edit(fn func(*T) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != EditingExisting && e.state != CreatingNew {
		return ErrNotEditing
	}
	d := e.draft
	if err := fn(&d); err != nil {
		return err
	}
	e.draft = d
	return nil
}

// Cancel discards the draft from any state.
func (e *Editor[T]) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	var zero T
	e.draft = zero
	e.deleting = ""
	e.state = Viewing
	e.generation++
}

// Save persists the collection with the draft replacing the item of the
// same id, or appended when new. On failure the editor returns to the
// editing state it came from.
func (e *Editor[T]) Save(ctx context.Context) error {
	e.mu.Lock()
	if e.state == Saving || e.state == Deleting {
		e.mu.Unlock()
		return ErrBusy
	}
	if e.state != EditingExisting && e.state != CreatingNew {
		e.mu.Unlock()
		return ErrNotEditing
	}
	if !e.gate.acquire() {
		e.mu.Unlock()
		return ErrBusy
	}
	from := e.state
	next := append([]T(nil), e.items...)
	if i := e.indexOf(e.idOf(e.draft)); from == EditingExisting && i >= 0 {
		next[i] = e.draft
	} else {
		next = append(next, e.draft)
	}
	e.state = Saving
	gen := e.generation
	e.mu.Unlock()

	saved, err := e.persist(ctx, next)
	e.gate.release()

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		if gen == e.generation {
			e.state = from
		}
		return err
	}
	e.items = saved
	if gen == e.generation {
		var zero T
		e.draft = zero
		e.state = Viewing
	}
	return nil
}

// Delete persists the collection without id. The local list only changes
// once the store confirms; either way the editor ends up viewing.
func (e *Editor[T]) Delete(ctx context.Context, id string) error {
	e.mu.Lock()
	if e.state == Saving || e.state == Deleting {
		e.mu.Unlock()
		return ErrBusy
	}
	if e.state == CreatingNew {
		e.mu.Unlock()
		return ErrWrongState
	}
	i := e.indexOf(id)
	if i < 0 {
		e.mu.Unlock()
		return ErrUnknownItem
	}
	if !e.gate.acquire() {
		e.mu.Unlock()
		return ErrBusy
	}
	next := make([]T, 0, len(e.items)-1)
	next = append(next, e.items[:i]...)
	next = append(next, e.items[i+1:]...)
	e.state = Deleting
	e.deleting = id
	gen := e.generation
	e.mu.Unlock()

	saved, err := e.persist(ctx, next)
	e.gate.release()

	e.mu.Lock()
	defer e.mu.Unlock()
	if err == nil {
		e.items = saved
	}
	if gen == e.generation {
		var zero T
		e.draft = zero
		e.deleting = ""
		e.state = Viewing
	}
	return err
}
