package dixlang

import (
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Store holds every variable of a run. Blocks do not open scopes.
type Store struct {
	vars map[string]Value
}

func NewStore() *Store {
	return &Store{
		vars: make(map[string]Value),
	}
}

func (s *Store) Get(name string) (Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

func (s *Store) Has(name string) bool {
	_, ok := s.vars[name]
	return ok
}

func (s *Store) Set(name string, value Value) {
	s.vars[name] = value
}

func (s *Store) Len() int {
	return len(s.vars)
}

func (s *Store) Names() []string {
	return slices.Sorted(maps.Keys(s.vars))
}

// All iterates variables in name order.
func (s *Store) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, name := range s.Names() {
			if !yield(name, s.vars[name]) {
				return
			}
		}
	}
}

func (s *Store) String() string {
	var sb strings.Builder
	for name, value := range s.All() {
		sb.WriteString(name)
		sb.WriteString(" = ")
		if value.Kind() == KindText {
			sb.WriteString(strconv.Quote(value.String()))
		} else {
			sb.WriteString(value.String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
