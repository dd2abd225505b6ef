package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Collection is the in-memory workout history: an ordered list keyed by ID.
// Order is insertion order; Replace keeps a workout at its position.
type Collection struct {
	items []Workout
	index map[string]int
}

// NewCollection builds a collection from workouts, assigning IDs where missing.
func NewCollection(workouts ...Workout) (*Collection, error) {
	c := &Collection{index: make(map[string]int, len(workouts))}
	for _, w := range workouts {
		if _, err := c.Add(w); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Len returns the number of workouts.
func (c *Collection) Len() int {
	return len(c.items)
}

// Add appends w. A new UUID is generated when w.ID is empty.
func (c *Collection) Add(w Workout) (Workout, error) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if _, exists := c.index[w.ID]; exists {
		return Workout{}, fmt.Errorf("%w: %s", ErrDuplicateID, w.ID)
	}
	c.index[w.ID] = len(c.items)
	c.items = append(c.items, w)
	return w, nil
}

// Get returns the workout with the given ID.
func (c *Collection) Get(id string) (Workout, error) {
	i, ok := c.index[id]
	if !ok {
		return Workout{}, fmt.Errorf("%w: %s", ErrWorkoutNotFound, id)
	}
	return c.items[i], nil
}

// Replace overwrites the workout with w.ID in place.
func (c *Collection) Replace(w Workout) error {
	i, ok := c.index[w.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrWorkoutNotFound, w.ID)
	}
	c.items[i] = w
	return nil
}

// Remove deletes the workout with the given ID and returns it.
func (c *Collection) Remove(id string) (Workout, error) {
	i, ok := c.index[id]
	if !ok {
		return Workout{}, fmt.Errorf("%w: %s", ErrWorkoutNotFound, id)
	}
	removed := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].ID] = j
	}
	return removed, nil
}

// Clear removes every workout.
func (c *Collection) Clear() {
	c.items = nil
	c.index = make(map[string]int)
}

// Resolve finds the workout whose ID equals ref or, failing that, is the only
// ID starting with ref.
func (c *Collection) Resolve(ref string) (Workout, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Workout{}, fmt.Errorf("%w: empty id", ErrWorkoutNotFound)
	}
	if w, err := c.Get(ref); err == nil {
		return w, nil
	}
	match := -1
	for i, w := range c.items {
		if !strings.HasPrefix(w.ID, ref) {
			continue
		}
		if match >= 0 {
			return Workout{}, fmt.Errorf("%w: %s", ErrAmbiguousID, ref)
		}
		match = i
	}
	if match < 0 {
		return Workout{}, fmt.Errorf("%w: %s", ErrWorkoutNotFound, ref)
	}
	return c.items[match], nil
}

// All returns a copy of the workouts in collection order.
func (c *Collection) All() []Workout {
	out := make([]Workout, len(c.items))
	copy(out, c.items)
	return out
}

// IDs returns every ID in collection order.
func (c *Collection) IDs() []string {
	ids := make([]string, len(c.items))
	for i, w := range c.items {
		ids[i] = w.ID
	}
	return ids
}
