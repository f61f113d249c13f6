package handlers

import (
	"fmt"
	"sort"

	"github.com/adv-linalg/advec/script"
	"github.com/adv-linalg/advec/storage"
	"github.com/adv-linalg/advec/vectors"
)

// Version of the advec library and tool.
const Version = "1.0.0"

// Session holds the vectors the user is working on, keyed by name, together
// with the persistent records and scripts storage and the transform cache.
type Session struct {
	workspace map[string]vectors.Reader[float64]
	Records   *storage.Records
	Scripts   *storage.Scripts
	Cache     *script.Cache
}

func NewSession(records *storage.Records, scripts *storage.Scripts) *Session {
	return &Session{
		workspace: make(map[string]vectors.Reader[float64]),
		Records:   records,
		Scripts:   scripts,
		Cache:     script.NewCache(),
	}
}

// Get returns the vector bound to name.
func (s *Session) Get(name string) (vectors.Reader[float64], error) {
	if v, found := s.workspace[name]; found {
		return v, nil
	}
	return nil, fmt.Errorf("no vector named %s", name)
}

// GetMut returns the vector bound to name if it accepts writes.
func (s *Session) GetMut(name string) (vectors.Writer[float64], error) {
	v, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	if w, ok := v.(vectors.Writer[float64]); ok {
		return w, nil
	}
	return nil, fmt.Errorf("vector %s is not mutable", name)
}

// Put binds name to v, replacing any previous binding.
func (s *Session) Put(name string, v vectors.Reader[float64]) {
	s.workspace[name] = v
}

// Drop forgets the binding for name.
func (s *Session) Drop(name string) {
	delete(s.workspace, name)
}

// NameOf returns the name v is bound to, or an empty string.
func (s *Session) NameOf(v vectors.Reader[float64]) string {
	for name, bound := range s.workspace {
		if bound == v {
			return name
		}
	}
	return ""
}

// Names returns the bound names sorted alphabetically.
func (s *Session) Names() []string {
	names := make([]string, 0, len(s.workspace))
	for name := range s.workspace {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of bound vectors.
func (s *Session) Size() int {
	return len(s.workspace)
}

// transform returns the compiled transform for the script with this name,
// compiling and caching it on first use.
func (s *Session) transform(name string) (*script.Transform, error) {
	stored := s.Scripts.FindByName(name)
	if stored == nil {
		return nil, fmt.Errorf("no script named %s", name)
	}

	if compiled := s.Cache.Find(stored.ID); compiled != nil {
		return compiled, nil
	}

	compiled, err := script.Compile(stored.Code)
	if err != nil {
		return nil, err
	}

	s.Cache.Add(stored.ID, compiled)
	return compiled, nil
}
