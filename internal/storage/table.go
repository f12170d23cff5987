package storage

import (
	"encoding/json"
	"errors"
	"io"
	"sort"
	"time"
)

// collection is the type-erased view FileStorage uses to load and persist
// each table. Callers hold FileStorage.mu.
type collection interface {
	file() string
	load(r io.Reader) error
	takeDirty() (any, bool)
	markDirty()
}

type keyFunc[T any] func(*T) (id, userID string, at time.Time)

// table indexes rows by id and by owner, newest first.
type table[T any] struct {
	name   string
	key    keyFunc[T]
	rows   map[string]*T   // id -> row
	byUser map[string][]*T // userID -> rows sorted descending
	dirty  bool
}

func newTable[T any](name string, key keyFunc[T]) *table[T] {
	return &table[T]{
		name:   name,
		key:    key,
		rows:   make(map[string]*T),
		byUser: make(map[string][]*T),
	}
}

func (t *table[T]) file() string { return t.name }

func (t *table[T]) load(r io.Reader) error {
	var rows []*T
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	for _, row := range rows {
		id, userID, _ := t.key(row)
		t.rows[id] = row
		t.byUser[userID] = append(t.byUser[userID], row)
	}
	for userID := range t.byUser {
		rows := t.byUser[userID]
		sort.SliceStable(rows, func(i, j int) bool {
			_, _, a := t.key(rows[i])
			_, _, b := t.key(rows[j])
			return a.After(b)
		})
	}
	return nil
}

func (t *table[T]) put(row *T) {
	id, userID, at := t.key(row)
	if old, ok := t.rows[id]; ok {
		_, owner, _ := t.key(old)
		t.remove(owner, id)
	}
	t.rows[id] = row
	rows := t.byUser[userID]
	inserted := false
	for i, existing := range rows {
		_, _, existingAt := t.key(existing)
		if existingAt.Before(at) {
			rows = append(rows[:i], append([]*T{row}, rows[i:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		rows = append(rows, row)
	}
	t.byUser[userID] = rows
	t.dirty = true
}

// remove deletes id only if it belongs to userID.
func (t *table[T]) remove(userID, id string) bool {
	row, ok := t.rows[id]
	if !ok {
		return false
	}
	if _, owner, _ := t.key(row); owner != userID {
		return false
	}
	delete(t.rows, id)
	rows := t.byUser[userID]
	for i, r := range rows {
		if r == row {
			t.byUser[userID] = append(rows[:i:i], rows[i+1:]...)
			break
		}
	}
	t.dirty = true
	return true
}

func (t *table[T]) list(userID string) []T {
	rows := t.byUser[userID]
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = *r
	}
	return out
}

func (t *table[T]) takeDirty() (any, bool) {
	if !t.dirty {
		return nil, false
	}
	t.dirty = false
	out := make([]T, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, *r)
	}
	return out, true
}

func (t *table[T]) markDirty() { t.dirty = true }
