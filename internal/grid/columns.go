package grid

import (
	"errors"
	"fmt"

	"github.com/kode4food/gridiron/grid"
	"github.com/kode4food/gridiron/internal/sync/mutex"
)

// columnSet is the grid's column registry. It is mutable only while
// the grid is being constructed; freeze makes it permanently read-only
// and lock-free thereafter
type columnSet[Msg any] struct {
	byName map[grid.ColumnName]grid.Column[Msg]
	list   []grid.Column[Msg]
	mu     mutex.InitialMutex
}

func makeColumnSet[Msg any](
	cols []grid.Column[Msg],
) (*columnSet[Msg], error) {
	res := &columnSet[Msg]{
		byName: map[grid.ColumnName]grid.Column[Msg]{},
	}
	for _, c := range cols {
		if err := res.add(c); err != nil {
			return nil, err
		}
	}
	if len(res.list) == 0 {
		return nil, errors.New(grid.ErrNoColumns)
	}
	res.freeze()
	return res, nil
}

func (s *columnSet[Msg]) add(c grid.Column[Msg]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[c.Name()]; ok {
		return fmt.Errorf(grid.ErrDuplicateColumnName, c.Name())
	}
	s.byName[c.Name()] = c
	s.list = append(s.list, c)
	return nil
}

func (s *columnSet[_]) freeze() {
	s.mu.DisableLock()
}

func (s *columnSet[Msg]) all() []grid.Column[Msg] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list
}

func (s *columnSet[Msg]) lookup(
	n grid.ColumnName,
) (grid.Column[Msg], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byName[n]
	return c, ok
}
