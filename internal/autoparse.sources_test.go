package internal

// fakeSources is an in-memory collaborator bundle for resolver tests.
type fakeSources struct {
	query    map[string]Value
	form     map[string]Value
	cookies  map[string]Value
	server   map[string]Value
	session  map[string]Value
	registry map[string]Value
	globals  map[string]Value
	funcs    map[string]func(args []Value) (Value, error)
	removed  []string
}

func newFakeSources() *fakeSources {
	return &fakeSources{
		query:    make(map[string]Value),
		form:     make(map[string]Value),
		cookies:  make(map[string]Value),
		server:   make(map[string]Value),
		session:  make(map[string]Value),
		registry: make(map[string]Value),
		globals:  make(map[string]Value),
		funcs:    make(map[string]func(args []Value) (Value, error)),
	}
}

func (f *fakeSources) QueryParams() map[string]Value { return f.query }
func (f *fakeSources) FormParams() map[string]Value  { return f.form }
func (f *fakeSources) Cookies() map[string]Value     { return f.cookies }
func (f *fakeSources) ServerVars() map[string]Value  { return f.server }

func (f *fakeSources) SessionValues() map[string]Value { return f.session }

func (f *fakeSources) RemoveSessionKey(key string) bool {
	if _, ok := f.session[key]; !ok {
		return false
	}
	delete(f.session, key)
	f.removed = append(f.removed, key)
	return true
}

func (f *fakeSources) RegistryValues() map[string]Value { return f.registry }

func (f *fakeSources) Global(name string) (Value, bool) {
	v, ok := f.globals[name]
	return v, ok
}

func (f *fakeSources) HasFunc(name string) bool {
	_, ok := f.funcs[name]
	return ok
}

func (f *fakeSources) CallFunc(name string, args []Value) (Value, error) {
	return f.funcs[name](args)
}
