package swing

import "sort"

// Env maps variable names to values. Lookups fall through to the parent
// when a name is not bound locally.
type Env struct {
	parent *Env
	values map[string]Value
}

func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, values: make(map[string]Value)}
}

func (e *Env) Parent() *Env { return e.parent }

func (e *Env) Get(name string) (Value, bool) {
	if val, ok := e.values[name]; ok {
		return val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, false
}

// Define binds name in this environment, shadowing any outer binding.
func (e *Env) Define(name string, val Value) {
	e.values[name] = val
}

// Assign updates the nearest existing binding of name, or defines it
// locally when no environment in the chain binds it.
func (e *Env) Assign(name string, val Value) {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = val
			return
		}
	}
	e.values[name] = val
}

// Remove deletes a local binding. Outer bindings are left untouched.
func (e *Env) Remove(name string) {
	delete(e.values, name)
}

// Names returns every visible name in sorted order.
func (e *Env) Names() []string {
	seen := make(map[string]struct{})
	var names []string
	for env := e; env != nil; env = env.parent {
		for name := range env.values {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
