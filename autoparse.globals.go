package autoparse

import (
	"sort"
	"strings"
	"sync"
)

// Func represents a free function callable from a tag with no object context
type Func struct {
	Name    string
	MinArgs int
	MaxArgs int // -1 for variadic
	Fn      func(args []Value) (Value, error)
}

// Globals is the named-global namespace: arbitrary identifiers mapped to
// values (for bare <name/> tags) plus a table of free functions for call
// accessors with no object context. It is safe for concurrent use.
type Globals struct {
	mu     sync.RWMutex
	values map[string]Value
	funcs  map[string]*Func
}

// NewGlobals creates a namespace pre-populated with the built-in free
// functions.
func NewGlobals() *Globals {
	g := &Globals{
		values: make(map[string]Value),
		funcs:  make(map[string]*Func),
	}
	registerBuiltinFuncs(g)
	return g
}

// SetValue binds a named global value.
func (g *Globals) SetValue(name string, v Value) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.values[name] = v
}

// Value looks up a named global value.
func (g *Globals) Value(name string) (Value, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.values[name]
	return v, ok
}

// Values returns a copy of all named global values.
func (g *Globals) Values() map[string]Value {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]Value, len(g.values))
	for k, v := range g.values {
		out[k] = v
	}
	return out
}

// Unset removes a named global value. Returns true if it existed.
func (g *Globals) Unset(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.values[name]
	delete(g.values, name)
	return ok
}

// RegisterFunc adds a free function to the namespace.
// Returns an error if a function with the same name is already registered.
func (g *Globals) RegisterFunc(f *Func) error {
	if f == nil {
		return NewFuncRegistrationError(ErrMsgFuncNil, "")
	}
	if f.Name == "" {
		return NewFuncRegistrationError(ErrMsgFuncEmptyName, "")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.funcs[f.Name]; exists {
		return NewFuncRegistrationError(ErrMsgFuncExists, f.Name)
	}

	g.funcs[f.Name] = f
	return nil
}

// MustRegisterFunc adds a free function and panics on error.
func (g *Globals) MustRegisterFunc(f *Func) {
	if err := g.RegisterFunc(f); err != nil {
		panic(err)
	}
}

// HasFunc checks if a free function is registered.
func (g *Globals) HasFunc(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.funcs[name]
	return ok
}

// CallFunc invokes a free function by name with argument count validation.
func (g *Globals) CallFunc(name string, args []Value) (Value, error) {
	g.mu.RLock()
	f, ok := g.funcs[name]
	g.mu.RUnlock()

	if !ok {
		return Null(), NewFuncNotFoundError(name)
	}

	argCount := len(args)
	if argCount < f.MinArgs {
		return Null(), NewFuncArgCountError(ErrMsgFuncTooFewArgs, name, f.MinArgs, f.MaxArgs, argCount)
	}
	if f.MaxArgs >= 0 && argCount > f.MaxArgs {
		return Null(), NewFuncArgCountError(ErrMsgFuncTooManyArgs, name, f.MinArgs, f.MaxArgs, argCount)
	}

	return f.Fn(args)
}

// FuncNames returns all registered function names in sorted order.
func (g *Globals) FuncNames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.funcs))
	for name := range g.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// registerBuiltinFuncs registers the built-in free functions
func registerBuiltinFuncs(g *Globals) {
	// concat(args ...any) string - concatenates rendered arguments
	g.MustRegisterFunc(&Func{
		Name:    FuncNameConcat,
		MinArgs: 1,
		MaxArgs: -1,
		Fn: func(args []Value) (Value, error) {
			var sb strings.Builder
			for _, arg := range args {
				sb.WriteString(arg.String())
			}
			return String(sb.String()), nil
		},
	})

	// upper(s string) string
	g.MustRegisterFunc(&Func{
		Name:    FuncNameUpper,
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(args []Value) (Value, error) {
			return String(strings.ToUpper(args[0].String())), nil
		},
	})

	// lower(s string) string
	g.MustRegisterFunc(&Func{
		Name:    FuncNameLower,
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(args []Value) (Value, error) {
			return String(strings.ToLower(args[0].String())), nil
		},
	})

	// trim(s string) string
	g.MustRegisterFunc(&Func{
		Name:    FuncNameTrim,
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(args []Value) (Value, error) {
			return String(strings.TrimSpace(args[0].String())), nil
		},
	})

	// replace(s, old, new string) string
	g.MustRegisterFunc(&Func{
		Name:    FuncNameReplace,
		MinArgs: 3,
		MaxArgs: 3,
		Fn: func(args []Value) (Value, error) {
			return String(strings.ReplaceAll(args[0].String(), args[1].String(), args[2].String())), nil
		},
	})

	// length(x any) number - string byte length or element count
	g.MustRegisterFunc(&Func{
		Name:    FuncNameLength,
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(args []Value) (Value, error) {
			if n, ok := args[0].Len(); ok {
				return Number(float64(n)), nil
			}
			return Number(float64(len(args[0].AsString()))), nil
		},
	})

	// default(x, fallback any) any - fallback when x is null or empty text
	g.MustRegisterFunc(&Func{
		Name:    FuncNameDefault,
		MinArgs: 2,
		MaxArgs: 2,
		Fn: func(args []Value) (Value, error) {
			if args[0].IsNull() || (args[0].Kind() == KindString && args[0].AsString() == "") {
				return args[1], nil
			}
			return args[0], nil
		},
	})

	// coalesce(args ...any) any - first non-null, non-empty-text value
	g.MustRegisterFunc(&Func{
		Name:    FuncNameCoalesce,
		MinArgs: 1,
		MaxArgs: -1,
		Fn: func(args []Value) (Value, error) {
			for _, arg := range args {
				if arg.IsNull() {
					continue
				}
				if arg.Kind() == KindString && arg.AsString() == "" {
					continue
				}
				return arg, nil
			}
			return Null(), nil
		},
	})
}
