// Package repository resolves case identifiers to ledger cases.
package repository

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/tracecase/trace/internal/ledger"
)

// ErrCaseNotFound is returned when no case has the requested id.
var ErrCaseNotFound = errors.New("case not found")

// Repository looks up cases by id.
type Repository interface {
	Lookup(ctx context.Context, id string) (*ledger.Case, error)
	List(ctx context.Context) ([]*ledger.Case, error)
}

type snapshot struct {
	byID  map[string]*ledger.Case
	order []*ledger.Case // sorted by id
}

// Memory serves an immutable snapshot of cases. Replace swaps the snapshot
// atomically, so readers never block and never see a partial catalog.
type Memory struct {
	snap atomic.Pointer[snapshot]
}

// NewMemory returns a Memory holding cases. Later duplicates win.
func NewMemory(cases []*ledger.Case) *Memory {
	m := &Memory{}
	m.Replace(cases)
	return m
}

// Replace installs a new set of cases.
func (m *Memory) Replace(cases []*ledger.Case) {
	s := &snapshot{byID: make(map[string]*ledger.Case, len(cases))}
	for _, c := range cases {
		s.byID[c.ID()] = c
	}
	for _, c := range s.byID {
		s.order = append(s.order, c)
	}
	slices.SortFunc(s.order, func(a, b *ledger.Case) int {
		return strings.Compare(a.ID(), b.ID())
	})
	m.snap.Store(s)
}

// Lookup returns the case with the given id or ErrCaseNotFound.
func (m *Memory) Lookup(ctx context.Context, id string) (*ledger.Case, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, ok := m.snap.Load().byID[id]
	if !ok {
		return nil, ErrCaseNotFound
	}
	return c, nil
}

// List returns every case ordered by id.
func (m *Memory) List(ctx context.Context) ([]*ledger.Case, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(m.snap.Load().order), nil
}

// Len returns the number of cases currently served.
func (m *Memory) Len() int {
	return len(m.snap.Load().byID)
}
