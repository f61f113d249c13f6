package storage

// Scripts is the specialized version of a storage.Index
// used to map, store and persist Script objects.
type Scripts struct {
	*Index[*Script]
}

// LoadScripts loads and indexes the scripts from
// the data files found in a given path.
func LoadScripts(dataPath string) (*Scripts, error) {
	s := &Scripts{
		Index: WithDriver[*Script](dataPath, ScriptDriver{}),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Find returns a *Script object given its identifier,
// or nil if not found.
func (s *Scripts) Find(id uint64) *Script {
	if script, found := s.Index.Find(id); found {
		return script
	}
	return nil
}

// FindByName returns the first *Script object with the given
// function name, or nil if not found.
func (s *Scripts) FindByName(name string) *Script {
	var match *Script
	s.ForEach(func(script *Script) error {
		if match == nil && script.Name == name {
			match = script
		}
		return nil
	})
	return match
}

// Delete removes a script from the index given its
// identifier, it returns the deleted raw *Script
// object, or nil if not found.
func (s *Scripts) Delete(id uint64) *Script {
	if script, found := s.Index.Delete(id); found {
		return script
	}
	return nil
}
