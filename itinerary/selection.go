package itinerary

import (
	"encoding/json"
	"sort"
)

// SelectionSet is an unordered set of attraction ids. The zero value is
// an empty set ready to use.
type SelectionSet struct {
	ids map[string]struct{}
}

func NewSelectionSet(ids ...string) SelectionSet {
	s := SelectionSet{}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

func (s *SelectionSet) add(id string) {
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	s.ids[id] = struct{}{}
}

// Toggle adds id if absent and removes it otherwise. It reports whether
// id is selected afterwards.
func (s *SelectionSet) Toggle(id string) bool {
	if s.Contains(id) {
		delete(s.ids, id)
		return false
	}
	s.add(id)
	return true
}

func (s SelectionSet) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s SelectionSet) Len() int { return len(s.ids) }

func (s *SelectionSet) Clear() { s.ids = nil }

// Values returns the ids sorted.
func (s SelectionSet) Values() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s SelectionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

func (s *SelectionSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewSelectionSet(ids...)
	return nil
}
