package query

import (
	"fmt"
	"slices"
)

// Collection is an immutable, ordered set of records queried through a
// fixed filter registry.
type Collection[T any] struct {
	name    string
	records []T
	index   map[string]int
	filters []Filter[T]
}

// NewCollection copies records into a new collection. idOf returns the
// record id used by Get. It panics if two filters share a name.
func NewCollection[T any](name string, records []T, idOf func(T) string, filters ...Filter[T]) *Collection[T] {
	c := &Collection[T]{
		name:    name,
		records: slices.Clone(records),
		index:   make(map[string]int, len(records)),
		filters: slices.Clone(filters),
	}
	for i, rec := range c.records {
		id := idOf(rec)
		if _, dup := c.index[id]; !dup {
			c.index[id] = i
		}
	}
	seen := make(map[string]bool, len(filters))
	for _, f := range filters {
		if seen[f.name] {
			panic(fmt.Sprintf("query: duplicate filter %q on collection %q", f.name, name))
		}
		seen[f.name] = true
	}
	return c
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// Len returns the number of records.
func (c *Collection[T]) Len() int { return len(c.records) }

// FilterNames returns the recognized filter names in registration order.
func (c *Collection[T]) FilterNames() []string {
	names := make([]string, len(c.filters))
	for i, f := range c.filters {
		names[i] = f.name
	}
	return names
}

// All returns a copy of every record in insertion order.
func (c *Collection[T]) All() []T {
	return slices.Clone(c.records)
}

// Get returns the record with the given id or a *NotFoundError.
func (c *Collection[T]) Get(id string) (T, error) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, &NotFoundError{Collection: c.name, ID: id}
	}
	return c.records[i], nil
}

// List filters the collection and returns the requested page.
func (c *Collection[T]) List(p Params) Page[T] {
	p = p.normalized()
	matches := c.filter(p.Filters)
	return Page[T]{
		Data:     paginate(matches, p.Page, p.ItemsPerPage),
		Metadata: NewMetadata(p.Page, p.ItemsPerPage, len(matches)),
	}
}

type activeFilter[T any] struct {
	match func(T, string) bool
	value string
}

func (c *Collection[T]) filter(params map[string]string) []T {
	active := make([]activeFilter[T], 0, len(c.filters))
	for _, f := range c.filters {
		if v, ok := f.value(params); ok {
			active = append(active, activeFilter[T]{match: f.match, value: v})
		}
	}

	result := make([]T, 0, len(c.records))
	for _, rec := range c.records {
		matched := true
		for _, f := range active {
			if !f.match(rec, f.value) {
				matched = false
				break
			}
		}
		if matched {
			result = append(result, rec)
		}
	}
	return result
}

// paginate returns the 1-based page of items. Pages past the end are empty.
func paginate[T any](items []T, page, size int) []T {
	total := len(items)
	if page-1 > total/size {
		return []T{}
	}
	start := (page - 1) * size
	if start >= total {
		return []T{}
	}
	end := total
	if size < total-start {
		end = start + size
	}
	return slices.Clone(items[start:end])
}
