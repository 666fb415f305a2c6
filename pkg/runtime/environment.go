package runtime

import (
	"errors"
	"fmt"
)

// ItName is the implicit result slot. It is never declared.
const ItName = "IT"

var (
	ErrAlreadyDefined = errors.New("already declared")
	ErrUndefined      = errors.New("undefined variable")
)

// Environment holds the variables of a single program run. Scoping is flat.
type Environment struct {
	values map[string]Value
	order  []string
	it     Value
}

// NewEnvironment creates an empty environment with IT unset.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Define binds a new name. Declaring an existing name fails.
func (e *Environment) Define(name string, value Value) error {
	if _, ok := e.values[name]; ok {
		return fmt.Errorf("Variable '%s' %w", name, ErrAlreadyDefined)
	}
	e.bind(name, value)
	return nil
}

// Bind sets name whether or not it was declared.
func (e *Environment) Bind(name string, value Value) {
	e.bind(name, value)
}

func (e *Environment) bind(name string, value Value) {
	if value == nil {
		value = NilValue{}
	}
	if _, ok := e.values[name]; !ok {
		e.order = append(e.order, name)
	}
	e.values[name] = value
}

// Assign updates an existing binding.
func (e *Environment) Assign(name string, value Value) error {
	if _, ok := e.values[name]; !ok {
		return fmt.Errorf("Undefined variable '%s': %w", name, ErrUndefined)
	}
	if value == nil {
		value = NilValue{}
	}
	e.values[name] = value
	return nil
}

// Get retrieves a binding.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("Undefined variable '%s': %w", name, ErrUndefined)
}

func (e *Environment) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// IT returns the implicit slot and whether it has been set.
func (e *Environment) IT() (Value, bool) {
	return e.it, e.it != nil
}

// SetIT stores a statement result. NOOB results leave IT untouched.
func (e *Environment) SetIT(value Value) {
	if IsNil(value) {
		return
	}
	e.it = value
}

// Binding is one entry of an ordered environment dump.
type Binding struct {
	Name  string
	Value Value
}

// Bindings lists variables in declaration order, followed by IT when set.
func (e *Environment) Bindings() []Binding {
	out := make([]Binding, 0, len(e.order)+1)
	for _, name := range e.order {
		out = append(out, Binding{Name: name, Value: e.values[name]})
	}
	if it, ok := e.IT(); ok {
		out = append(out, Binding{Name: ItName, Value: it})
	}
	return out
}

// Snapshot returns a copy of the current bindings, IT included when set.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values)+1)
	for k, v := range e.values {
		out[k] = v
	}
	if it, ok := e.IT(); ok {
		out[ItName] = it
	}
	return out
}
