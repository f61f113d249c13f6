package script

import (
	"fmt"
	"sync"

	"github.com/robertkrimen/otto"
)

// Transform is a compiled user function, ready to be applied to vector
// elements. The vm is not reentrant, therefore every call round trips
// through the transform's own lock.
type Transform struct {
	sync.Mutex
	vm    *otto.Otto
	name  string
	arity int
	fn    otto.Value
}

// Name returns the name of the transform function.
func (t *Transform) Name() string {
	return t.name
}

// Arity returns the number of arguments of the transform function,
// one for element transforms, two for pairwise ones.
func (t *Transform) Arity() int {
	return t.arity
}

func (t *Transform) call(args ...interface{}) (float64, error) {
	t.Lock()
	defer t.Unlock()

	ret, err := t.fn.Call(otto.NullValue(), args...)
	if err != nil {
		return 0, err
	}

	val, err := ret.ToFloat()
	if err != nil {
		return 0, fmt.Errorf("%s did not return a number: %s", t.name, err)
	}
	return val, nil
}

// Unary adapts the transform to an element callback. A failing call
// flags ctx and yields 0; the caller is expected to check the context
// once the whole pass is done.
func (t *Transform) Unary(ctx *Context) func(float64) float64 {
	return func(x float64) float64 {
		val, err := t.call(x)
		if err != nil {
			ctx.Error(err.Error())
			return 0
		}
		return val
	}
}

// Binary adapts the transform to a pairwise callback, with the same
// error protocol as Unary.
func (t *Transform) Binary(ctx *Context) func(float64, float64) float64 {
	return func(x, y float64) float64 {
		val, err := t.call(x, y)
		if err != nil {
			ctx.Error(err.Error())
			return 0
		}
		return val
	}
}
