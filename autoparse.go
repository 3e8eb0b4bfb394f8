// Package autoparse is a text-substitution engine. It scans a rendered text
// buffer for self-closing bracketed tags, resolves each tag against
// request-scoped value sources, and substitutes the rendered result,
// HTML-sanitized by default.
//
// # Tag Syntax
//
// A tag is a path of colon-separated segments with an optional terminal
// post-processor and an optional raw marker:
//
//	<session:user/>
//	<get:q::upper/>
//	<greeting~/>
//
// The first segment selects the value source (session, get, post, cookie,
// server, registry, or any named global); the remaining segments are
// property lookups or method calls:
//
//	<session:user:name/>
//	<session:cart:total('EUR')/>
//	<fn:concat('Hello, ', session:user)/>
//
// # Basic Usage
//
// Create an engine, populate a request scope, and resolve a buffer:
//
//	engine := autoparse.MustNew()
//	scope := autoparse.NewScope()
//	scope.Globals().SetValue("site", autoparse.String("Example"))
//	out := engine.ResolveBuffer(scope, "Welcome to <site/>!")
//	// out: "Welcome to Example!"
//
// # Failure Behavior
//
// Resolution is fail-soft by contract: malformed tag candidates pass through
// verbatim, failed lookups substitute the empty string, and no error ever
// escapes ResolveBuffer. The worst observable outcome of a bad tag is an
// empty substitution.
//
// # Post-Processors
//
// A ::name suffix applies one terminal transform: json and its pretty
// variants, length, count, upper, lower, and unset (which removes a
// session key). Unrecognized names yield the empty string.
//
// # Sanitization
//
// Substitutions are HTML-escaped unless the tag carries the ~ raw marker
// before the closing delimiter.
//
// # Objects and Functions
//
// Host values are exposed through explicit registration tables rather than
// reflection. ObjectDef builds an object handle from named property getters
// and method handlers; Globals carries free functions callable from tags
// with no object context:
//
//	user := autoparse.NewObjectDef().
//	    Property("name", func() autoparse.Value { return autoparse.String("alice") }).
//	    Method("greet", func(args []autoparse.Value) (autoparse.Value, error) {
//	        return autoparse.String("hi " + args[0].String()), nil
//	    })
//	scope.Globals().SetValue("user", user.Value())
package autoparse
