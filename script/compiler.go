package script

import (
	"errors"
	"fmt"

	"github.com/robertkrimen/otto"
	"github.com/robertkrimen/otto/ast"
	"github.com/robertkrimen/otto/parser"
)

// Parse the given JS code and extract the transform function.
func parseSource(source string) (*ast.FunctionLiteral, error) {
	program, err := parser.ParseFile(nil, "", source, 0)
	if err != nil {
		return nil, err
	}

	for _, d := range program.DeclarationList {
		if fd, ok := d.(*ast.FunctionDeclaration); ok {
			return fd.Function, nil
		}
	}

	return nil, errors.New("no function provided")
}

// Compile validates and compiles a JS source defining a transform
// function. The first function declaration in the source is the
// transform; it must take either one argument (an element transform
// usable with the map operations) or two (a pairwise transform usable
// with the combine operations).
func Compile(source string) (*Transform, error) {
	function, err := parseSource(source)
	if err != nil {
		return nil, err
	}

	name := function.Name.Name
	arity := len(function.ParameterList.List)
	if arity != 1 && arity != 2 {
		return nil, fmt.Errorf("transform functions take one or two arguments, %s takes %d", name, arity)
	}

	// create the vm and define the transform function
	vm := otto.New()
	if _, err := vm.Run(source); err != nil {
		return nil, err
	}

	fn, err := vm.Get(name)
	if err != nil {
		return nil, err
	} else if !fn.IsFunction() {
		return nil, fmt.Errorf("%s is not a function", name)
	}

	return &Transform{
		name:  name,
		arity: arity,
		vm:    vm,
		fn:    fn,
	}, nil
}
