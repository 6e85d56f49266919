package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

// DefaultCategories seed every category set.
var DefaultCategories = []string{
	"Comida", "Transporte", "Salario", "Servicios", "Entretenimiento",
	"Salud", "Educación", "Hogar", "Suscripciones", "Fuel", "Otros",
}

// CategorySet is the add-only list of known transaction categories.
// Names are compared case-insensitively and keep their first spelling.
type CategorySet struct {
	mu    sync.RWMutex
	names []string
	seen  map[string]struct{}
}

func NewCategorySet(seed ...string) *CategorySet {
	s := &CategorySet{seen: make(map[string]struct{})}
	for _, name := range seed {
		s.Add(name)
	}
	return s
}

// Add inserts name unless it is blank or already present. It reports whether
// the set grew.
func (s *CategorySet) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	key := strings.ToLower(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	s.names = append(s.names, name)
	return true
}

func (s *CategorySet) Contains(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.seen[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// List returns the categories in insertion order.
func (s *CategorySet) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Suggest returns up to limit known categories closest to name by edit
// distance, nearest first.
func (s *CategorySet) Suggest(name string, limit int) []string {
	query := strings.ToLower(strings.TrimSpace(name))
	type scored struct {
		name string
		dist int
	}
	s.mu.RLock()
	candidates := make([]scored, 0, len(s.names))
	for _, n := range s.names {
		candidates = append(candidates, scored{n, levenshtein.ComputeDistance(query, strings.ToLower(n))})
	}
	s.mu.RUnlock()

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	if limit <= 0 || limit > len(candidates) {
		limit = len(candidates)
	}
	out := make([]string, 0, limit)
	for _, c := range candidates[:limit] {
		out = append(out, c.name)
	}
	return out
}
