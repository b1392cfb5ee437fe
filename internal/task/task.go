// Package task implements named developer chores with ordered, run-once
// dependencies.
package task

import (
	"context"
	"fmt"
	"slices"
)

// BodyFunc is the work a task performs once its dependencies have run
type BodyFunc func(ctx context.Context) error

// Task is a named, invokable unit of work. Deps run before Body, in
// declared order. A Task without a Body only aggregates its dependencies.
type Task struct {
	Name    string
	Summary string
	Deps    []string
	Body    BodyFunc
}

// Set is an immutable, ordered collection of tasks whose dependencies
// have been resolved up front
type Set struct {
	order []string
	tasks map[string]*Task
}

// NewSet builds a set from the given tasks. It rejects empty or duplicate
// names, dependencies on unknown tasks, and dependency cycles.
func NewSet(tasks ...*Task) (*Set, error) {
	set := &Set{
		order: make([]string, 0, len(tasks)),
		tasks: make(map[string]*Task, len(tasks)),
	}

	for _, t := range tasks {
		if t.Name == "" {
			return nil, fmt.Errorf("task with empty name")
		}
		if _, exists := set.tasks[t.Name]; exists {
			return nil, fmt.Errorf("duplicate task '%s'", t.Name)
		}
		set.order = append(set.order, t.Name)
		set.tasks[t.Name] = t
	}

	if err := set.validate(); err != nil {
		return nil, err
	}

	return set, nil
}

// Get returns the named task
func (s *Set) Get(name string) (*Task, bool) {
	t, ok := s.tasks[name]
	return t, ok
}

// Names returns the task names in registration order
func (s *Set) Names() []string {
	return slices.Clone(s.order)
}

// validate checks that every dependency resolves to a registered task and
// that no dependency chain loops back on itself
func (s *Set) validate() error {
	const (
		unvisited = iota
		visiting
		visited
	)
	state := make(map[string]int, len(s.tasks))

	var visit func(name, from string) error
	visit = func(name, from string) error {
		t, ok := s.tasks[name]
		if !ok {
			return fmt.Errorf("task '%s' depends on unknown task '%s'", from, name)
		}

		switch state[name] {
		case visiting:
			return fmt.Errorf("dependency cycle through task '%s'", name)
		case visited:
			return nil
		}

		state[name] = visiting
		for _, dep := range t.Deps {
			if err := visit(dep, name); err != nil {
				return err
			}
		}
		state[name] = visited

		return nil
	}

	for _, name := range s.order {
		if err := visit(name, name); err != nil {
			return err
		}
	}

	return nil
}
