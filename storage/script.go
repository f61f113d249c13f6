package storage

// Script is a stored user defined transform: a named piece of JS code
// to be compiled and applied to vector elements.
type Script struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// ScriptDriver is the specialized implementation of a
// storage.Driver interface, used to access the internal
// fields of Script objects in the index.
type ScriptDriver struct {
}

// Make returns a new Script object.
func (d ScriptDriver) Make() *Script {
	return new(Script)
}

// GetID returns the unique identifier of the Script object.
func (d ScriptDriver) GetID(m *Script) uint64 {
	return m.ID
}

// SetID sets the unique identifier of the Script object.
func (d ScriptDriver) SetID(m *Script, id uint64) {
	m.ID = id
}

// Copy copies the Name and Code fields from the source
// object to the destination one.
func (d ScriptDriver) Copy(dst *Script, src *Script) error {
	dst.Name = src.Name
	dst.Code = src.Code
	return nil
}
