package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newScanResolver(src *fakeSources) *Resolver {
	return NewResolver(src, DefaultResolverConfig(), zap.NewNop())
}

func TestResolver_ScanTag(t *testing.T) {
	r := newScanResolver(newFakeSources())

	tests := []struct {
		name     string
		input    string
		expected ParsedTag
		wantEnd  int
		wantOK   bool
	}{
		{
			name:     "simple path",
			input:    "<session:user/>",
			expected: ParsedTag{Path: "session:user"},
			wantEnd:  15,
			wantOK:   true,
		},
		{
			name:     "raw marker",
			input:    "<session:html~/>",
			expected: ParsedTag{Path: "session:html", Raw: true},
			wantEnd:  16,
			wantOK:   true,
		},
		{
			name:     "post-processor suffix",
			input:    "<session:user::upper/>",
			expected: ParsedTag{Path: "session:user", Post: "upper"},
			wantEnd:  22,
			wantOK:   true,
		},
		{
			name:     "post-processor with raw marker",
			input:    "<data::json~/>",
			expected: ParsedTag{Path: "data", Post: "json", Raw: true},
			wantEnd:  14,
			wantOK:   true,
		},
		{
			name:     "call with quoted commas",
			input:    "<user:greet('a,b', 2)/>",
			expected: ParsedTag{Path: "user:greet('a,b', 2)"},
			wantEnd:  23,
			wantOK:   true,
		},
		{
			name:     "path whitespace is trimmed",
			input:    "< session:user />",
			expected: ParsedTag{Path: "session:user"},
			wantEnd:  17,
			wantOK:   true,
		},
		{
			name:   "missing close is not a tag",
			input:  "<session:user",
			wantOK: false,
		},
		{
			name:   "empty path is not a tag",
			input:  "</>",
			wantOK: false,
		},
		{
			name:   "whitespace-only path is not a tag",
			input:  "< />",
			wantOK: false,
		},
		{
			name:   "unbalanced open paren is not a tag",
			input:  "<f(x/>",
			wantOK: false,
		},
		{
			name:   "close paren at depth zero is not a tag",
			input:  "<f)x/>",
			wantOK: false,
		},
		{
			name:   "disallowed body byte is not a tag",
			input:  "<a=b/>",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, end, ok := r.scanTag(tt.input, 0)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.expected, tag)
				assert.Equal(t, tt.wantEnd, end)
			}
		})
	}
}

func TestResolver_ScanTag_MaxTagLength(t *testing.T) {
	src := newFakeSources()
	r := NewResolver(src, ResolverConfig{MaxTagLength: 8, MaxRefDepth: DefaultMaxRefDepth}, zap.NewNop())

	tag, _, ok := r.scanTag("<ab:cd/>", 0)
	require.True(t, ok)
	assert.Equal(t, "ab:cd", tag.Path)

	// Body longer than the cap never reaches the close delimiter.
	_, _, ok = r.scanTag("<"+strings.Repeat("a", 9)+"/>", 0)
	assert.False(t, ok)
}

func TestSplitPostProcessor(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantPath string
		wantPost string
	}{
		{
			name:     "no separator",
			body:     "session:user",
			wantPath: "session:user",
		},
		{
			name:     "trailing identifier suffix",
			body:     "session:user::upper",
			wantPath: "session:user",
			wantPost: "upper",
		},
		{
			name:     "last separator wins",
			body:     "a::b::json",
			wantPath: "a::b",
			wantPost: "json",
		},
		{
			name:     "separator inside parentheses is opaque",
			body:     "f(a::b)",
			wantPath: "f(a::b)",
		},
		{
			name:     "non-identifier suffix stays in path",
			body:     "a::b c",
			wantPath: "a::b c",
		},
		{
			name:     "hyphenated processor name",
			body:     "data::pretty-json",
			wantPath: "data",
			wantPost: "pretty-json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, post := splitPostProcessor(tt.body)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantPost, post)
		})
	}
}

func TestResolver_ResolveBuffer(t *testing.T) {
	src := newFakeSources()
	src.session["user"] = StringValue("ada")
	src.session["html"] = StringValue("<b>hi</b>")
	src.query["page"] = NumberValue(3)
	src.globals["site"] = MappingValue(map[string]Value{
		"title": StringValue("Home"),
	})
	src.funcs["concat"] = func(args []Value) (Value, error) {
		out := ""
		for _, a := range args {
			out += a.AsString()
		}
		return StringValue(out), nil
	}
	r := newScanResolver(src)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no tags passes through",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "tag in surrounding text",
			input:    "Hello <session:user/>!",
			expected: "Hello ada!",
		},
		{
			name:     "multiple tags",
			input:    "<session:user/> page <get:page/>",
			expected: "ada page 3",
		},
		{
			name:     "named global with path",
			input:    "<site:title/>",
			expected: "Home",
		},
		{
			name:     "absent global substitutes empty",
			input:    "[<nosuch:thing/>]",
			expected: "[]",
		},
		{
			name:     "sanitized by default",
			input:    "<session:html/>",
			expected: "&lt;b&gt;hi&lt;/b&gt;",
		},
		{
			name:     "raw marker skips sanitization",
			input:    "<session:html~/>",
			expected: "<b>hi</b>",
		},
		{
			name:     "post-processor applies",
			input:    "<session:user::upper/>",
			expected: "ADA",
		},
		{
			name:     "free function call",
			input:    "<func:concat('a', session:user)/>",
			expected: "aada",
		},
		{
			name:     "malformed candidate passes through verbatim",
			input:    "1 < 2 and x <y",
			expected: "1 < 2 and x <y",
		},
		{
			name:     "html markup passes through",
			input:    `<div class="x">text</div>`,
			expected: `<div class="x">text</div>`,
		},
		{
			name:     "adjacent open chars",
			input:    "<<session:user/>",
			expected: "<ada",
		},
		{
			name:     "lookup failure skips post-processing",
			input:    "[<session:missing::count/>]",
			expected: "[]",
		},
		{
			name:     "empty buffer",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.ResolveBuffer(tt.input))
		})
	}
}

func TestResolver_ResolveBuffer_UnsetOrdering(t *testing.T) {
	src := newFakeSources()
	src.session["token"] = StringValue("secret")
	r := newScanResolver(src)

	// The first tag renders the value, the second removes it, the third
	// sees the removal.
	got := r.ResolveBuffer("<session:token/>|<session:token::unset/>|<session:token/>")
	assert.Equal(t, "secret||", got)
	assert.Empty(t, src.session)
}
