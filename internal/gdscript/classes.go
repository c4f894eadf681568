// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package gdscript

import (
	"sort"

	"grimm.is/gdscript-docs/internal/errors"
)

// Classes is an ordered set of classes keyed by name.
type Classes struct {
	order  []*Class
	byName map[string]*Class
}

// NewClasses builds a set from classes, keeping their order. Duplicate names
// are a schema error.
func NewClasses(classes ...*Class) (*Classes, error) {
	set := &Classes{
		order:  make([]*Class, 0, len(classes)),
		byName: make(map[string]*Class, len(classes)),
	}
	for _, c := range classes {
		if err := set.add(c); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func (s *Classes) add(c *Class) error {
	if _, dup := s.byName[c.Name]; dup {
		return errors.Attr(
			errors.Errorf(errors.KindSchema, "duplicate class name %q", c.Name),
			"class", c.Name)
	}
	s.order = append(s.order, c)
	s.byName[c.Name] = c
	return nil
}

// Get looks up a class by exact name.
func (s *Classes) Get(name string) (*Class, bool) {
	if s == nil {
		return nil, false
	}
	c, ok := s.byName[name]
	return c, ok
}

// Len returns the number of classes.
func (s *Classes) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// All returns the classes in load order. The slice is a copy.
func (s *Classes) All() []*Class {
	if s == nil {
		return nil
	}
	out := make([]*Class, len(s.order))
	copy(out, s.order)
	return out
}

// Names returns every class name sorted by byte-wise comparison.
func (s *Classes) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.order))
	for _, c := range s.order {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}
