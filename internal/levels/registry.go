package levels

import (
	"fmt"
	"strings"

	"github.com/san-kum/orbitlander/internal/dynamo"
)

// Registry resolves levels by name. Lookups ignore case and treat spaces,
// dashes and underscores alike, so "binary-stars" finds "Binary Stars".
type Registry struct {
	levels map[string]dynamo.Level
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{levels: make(map[string]dynamo.Level)}
}

// Builtin returns a registry preloaded with All(width, height).
func Builtin(width, height float64) *Registry {
	r := NewRegistry()
	for _, l := range All(width, height) {
		r.levels[key(l.Name)] = l
		r.order = append(r.order, l.Name)
	}
	return r
}

// Register validates and adds a level. A level with the same name replaces
// the existing one in place.
func (r *Registry) Register(l dynamo.Level) error {
	if l.Name == "" {
		return &dynamo.LevelError{Field: "name must not be empty", Wrapped: dynamo.ErrInvalidLevel}
	}
	if err := l.Validate(); err != nil {
		return err
	}
	k := key(l.Name)
	if _, ok := r.levels[k]; !ok {
		r.order = append(r.order, l.Name)
	} else {
		for i, n := range r.order {
			if key(n) == k {
				r.order[i] = l.Name
			}
		}
	}
	r.levels[k] = l
	return nil
}

func (r *Registry) Get(name string) (dynamo.Level, error) {
	l, ok := r.levels[key(name)]
	if !ok {
		return dynamo.Level{}, fmt.Errorf("%w: %s", dynamo.ErrUnknownLevel, name)
	}
	return l, nil
}

// Names lists level names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

func (r *Registry) All() []dynamo.Level {
	out := make([]dynamo.Level, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.levels[key(n)])
	}
	return out
}

func (r *Registry) Len() int { return len(r.order) }

func key(name string) string {
	k := strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(k)
}
