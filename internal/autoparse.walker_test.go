package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// userHandle is a small object handle for walker tests.
type userHandle struct {
	props map[string]Value
}

func (h *userHandle) GetProperty(name string) (Value, bool) {
	v, ok := h.props[name]
	return v, ok
}

func (h *userHandle) CallMethod(name string, args []Value) (Value, error) {
	switch name {
	case "greet":
		prefix := "hello "
		if len(args) > 0 {
			return StringValue(prefix + args[0].AsString()), nil
		}
		return StringValue(prefix), nil
	case "self":
		return ObjectValue(h), nil
	}
	return NullValue(), errors.New("no such method")
}

func newWalkerResolver(src *fakeSources) *Resolver {
	return NewResolver(src, DefaultResolverConfig(), zap.NewNop())
}

func TestResolver_Walk_KeyLookup(t *testing.T) {
	src := newFakeSources()
	r := newWalkerResolver(src)

	profile := MappingValue(map[string]Value{
		"name": StringValue("ada"),
		"tags": SequenceValue([]Value{StringValue("admin"), StringValue("ops")}),
	})

	tests := []struct {
		name      string
		start     Value
		accessors []string
		expected  Value
	}{
		{
			name:      "no accessors returns current value",
			start:     StringValue("plain"),
			accessors: nil,
			expected:  StringValue("plain"),
		},
		{
			name:      "mapping key",
			start:     profile,
			accessors: []string{"name"},
			expected:  StringValue("ada"),
		},
		{
			name:      "nested mapping then sequence index",
			start:     profile,
			accessors: []string{"tags", "1"},
			expected:  StringValue("ops"),
		},
		{
			name:      "accessor whitespace is trimmed",
			start:     profile,
			accessors: []string{" name "},
			expected:  StringValue("ada"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.walk(tt.start, tt.accessors, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolver_Walk_LookupFailures(t *testing.T) {
	src := newFakeSources()
	r := newWalkerResolver(src)

	seq := SequenceValue([]Value{StringValue("a")})

	tests := []struct {
		name      string
		start     Value
		accessors []string
	}{
		{
			name:      "missing mapping key",
			start:     MappingValue(map[string]Value{"x": StringValue("1")}),
			accessors: []string{"y"},
		},
		{
			name:      "sequence index out of range",
			start:     seq,
			accessors: []string{"3"},
		},
		{
			name:      "sequence index not numeric",
			start:     seq,
			accessors: []string{"first"},
		},
		{
			name:      "key lookup on scalar",
			start:     StringValue("scalar"),
			accessors: []string{"anything"},
		},
		{
			name:      "call on non-object non-null",
			start:     StringValue("scalar"),
			accessors: []string{"do()"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.walk(tt.start, tt.accessors, 0)
			require.Error(t, err)
			var lookupErr *LookupError
			assert.ErrorAs(t, err, &lookupErr)
			assert.True(t, got.IsNull())
		})
	}
}

func TestResolver_Walk_ObjectHandles(t *testing.T) {
	src := newFakeSources()
	r := newWalkerResolver(src)

	handle := &userHandle{props: map[string]Value{
		"name": StringValue("ada"),
	}}
	obj := ObjectValue(handle)

	t.Run("property lookup", func(t *testing.T) {
		got, err := r.walk(obj, []string{"name"}, 0)
		require.NoError(t, err)
		assert.Equal(t, StringValue("ada"), got)
	})

	t.Run("method call with argument", func(t *testing.T) {
		got, err := r.walk(obj, []string{"greet('world')"}, 0)
		require.NoError(t, err)
		assert.Equal(t, StringValue("hello world"), got)
	})

	t.Run("chained method then property", func(t *testing.T) {
		got, err := r.walk(obj, []string{"self()", "name"}, 0)
		require.NoError(t, err)
		assert.Equal(t, StringValue("ada"), got)
	})

	t.Run("rejected method is a lookup failure", func(t *testing.T) {
		_, err := r.walk(obj, []string{"vanish()"}, 0)
		require.Error(t, err)
		var lookupErr *LookupError
		assert.ErrorAs(t, err, &lookupErr)
	})

	t.Run("missing property", func(t *testing.T) {
		_, err := r.walk(obj, []string{"age"}, 0)
		require.Error(t, err)
	})
}

func TestResolver_Walk_FreeFunctions(t *testing.T) {
	src := newFakeSources()
	src.funcs["concat"] = func(args []Value) (Value, error) {
		out := ""
		for _, a := range args {
			out += a.AsString()
		}
		return StringValue(out), nil
	}
	src.funcs["fail"] = func(args []Value) (Value, error) {
		return NullValue(), errors.New("rejected")
	}
	r := newWalkerResolver(src)

	t.Run("free function runs in null context", func(t *testing.T) {
		got, err := r.walk(NullValue(), []string{"concat('a', 'b')"}, 0)
		require.NoError(t, err)
		assert.Equal(t, StringValue("ab"), got)
	})

	t.Run("unknown function in null context fails", func(t *testing.T) {
		_, err := r.walk(NullValue(), []string{"missing()"}, 0)
		require.Error(t, err)
	})

	t.Run("function error is a lookup failure", func(t *testing.T) {
		_, err := r.walk(NullValue(), []string{"fail()"}, 0)
		require.Error(t, err)
		var lookupErr *LookupError
		assert.ErrorAs(t, err, &lookupErr)
	})
}

func TestParseAccessor(t *testing.T) {
	tests := []struct {
		name     string
		segment  string
		wantName string
		wantArgs string
		wantCall bool
	}{
		{
			name:     "plain key",
			segment:  "name",
			wantName: "name",
			wantCall: false,
		},
		{
			name:     "empty call",
			segment:  "refresh()",
			wantName: "refresh",
			wantArgs: "",
			wantCall: true,
		},
		{
			name:     "call with arguments",
			segment:  "greet('world', 2)",
			wantName: "greet",
			wantArgs: "'world', 2",
			wantCall: true,
		},
		{
			name:     "nested parentheses stay in arguments",
			segment:  "wrap((1))",
			wantName: "wrap",
			wantArgs: "(1)",
			wantCall: true,
		},
		{
			name:     "early close is not a call",
			segment:  "a()b()",
			wantName: "a()b()",
			wantCall: false,
		},
		{
			name:     "missing trailing paren is not a call",
			segment:  "greet(x",
			wantName: "greet(x",
			wantCall: false,
		},
		{
			name:     "non-identifier head is not a call",
			segment:  "1bad()",
			wantName: "1bad()",
			wantCall: false,
		},
		{
			name:     "leading paren is not a call",
			segment:  "(x)",
			wantName: "(x)",
			wantCall: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args, isCall := parseAccessor(tt.segment)
			assert.Equal(t, tt.wantCall, isCall)
			assert.Equal(t, tt.wantName, name)
			if tt.wantCall {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, isIdentifier("greet"))
	assert.True(t, isIdentifier("_x9"))
	assert.True(t, isIdentifier("json-p"))
	assert.False(t, isIdentifier(""))
	assert.False(t, isIdentifier("9lives"))
	assert.False(t, isIdentifier("-lead"))
	assert.False(t, isIdentifier("has space"))
}
