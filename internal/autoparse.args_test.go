package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newArgsResolver(src *fakeSources) *Resolver {
	return NewResolver(src, DefaultResolverConfig(), zap.NewNop())
}

func TestSplitArgList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: nil,
		},
		{
			name:     "single token",
			input:    "42",
			expected: []string{"42"},
		},
		{
			name:     "plain comma split",
			input:    "a, b, c",
			expected: []string{"a", " b", " c"},
		},
		{
			name:     "comma inside single quotes",
			input:    "'a,b', 2, true",
			expected: []string{"'a,b'", " 2", " true"},
		},
		{
			name:     "comma inside double quotes",
			input:    `"x,y", z`,
			expected: []string{`"x,y"`, " z"},
		},
		{
			name:     "single quote inside double quotes does not open",
			input:    `"it's", next`,
			expected: []string{`"it's"`, " next"},
		},
		{
			name:     "escaped quote does not close string",
			input:    `'a\'b', c`,
			expected: []string{`'a\'b'`, " c"},
		},
		{
			name:     "empty token between commas",
			input:    "a,,b",
			expected: []string{"a", "", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitArgList(tt.input))
		})
	}
}

func TestResolver_ClassifyArg(t *testing.T) {
	src := newFakeSources()
	src.session["user"] = StringValue("ada")
	r := newArgsResolver(src)

	tests := []struct {
		name     string
		token    string
		expected Value
	}{
		{
			name:     "single quoted string",
			token:    "'hello'",
			expected: StringValue("hello"),
		},
		{
			name:     "double quoted string",
			token:    `"hello"`,
			expected: StringValue("hello"),
		},
		{
			name:     "escaped newline and tab",
			token:    `'a\nb\tc'`,
			expected: StringValue("a\nb\tc"),
		},
		{
			name:     "escaped quote and backslash",
			token:    `'it\'s \\ fine'`,
			expected: StringValue(`it's \ fine`),
		},
		{
			name:     "integer literal",
			token:    "42",
			expected: NumberValue(42),
		},
		{
			name:     "float literal",
			token:    "-3.5",
			expected: NumberValue(-3.5),
		},
		{
			name:     "true literal",
			token:    "true",
			expected: BoolValue(true),
		},
		{
			name:     "false literal case insensitive",
			token:    "FALSE",
			expected: BoolValue(false),
		},
		{
			name:     "null literal",
			token:    "null",
			expected: NullValue(),
		},
		{
			name:     "variable reference",
			token:    "session:user",
			expected: StringValue("ada"),
		},
		{
			name:     "failed variable reference yields null",
			token:    "session:missing",
			expected: NullValue(),
		},
		{
			name:     "unrecognized bareword yields null",
			token:    "bareword",
			expected: NullValue(),
		},
		{
			name:     "empty token yields null",
			token:    "  ",
			expected: NullValue(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.classifyArg(tt.token, 0))
		})
	}
}

func TestResolver_TokenizeArgs(t *testing.T) {
	src := newFakeSources()
	src.query["id"] = NumberValue(7)
	r := newArgsResolver(src)

	t.Run("empty list yields nil", func(t *testing.T) {
		assert.Nil(t, r.tokenizeArgs("", 0))
	})

	t.Run("mixed argument list", func(t *testing.T) {
		args := r.tokenizeArgs("'a,b', 2, true, get:id", 0)
		assert.Equal(t, []Value{
			StringValue("a,b"),
			NumberValue(2),
			BoolValue(true),
			NumberValue(7),
		}, args)
	})
}

func TestResolver_ResolveVarRef_DepthCap(t *testing.T) {
	src := newFakeSources()
	src.session["user"] = StringValue("ada")
	r := NewResolver(src, ResolverConfig{MaxTagLength: DefaultMaxTagLength, MaxRefDepth: 2}, zap.NewNop())

	assert.Equal(t, StringValue("ada"), r.resolveVarRef("session:user", 0))
	assert.Equal(t, StringValue("ada"), r.resolveVarRef("session:user", 1))
	assert.Equal(t, NullValue(), r.resolveVarRef("session:user", 2))
}

func TestIsVarRef(t *testing.T) {
	assert.True(t, isVarRef("session:user"))
	assert.True(t, isVarRef("get:page:size"))
	assert.False(t, isVarRef("nocolon"))
	assert.False(t, isVarRef(":leading"))
	assert.False(t, isVarRef("trailing:"))
	assert.False(t, isVarRef("Upper:case"))
	assert.False(t, isVarRef("mixed9:x"))
}
