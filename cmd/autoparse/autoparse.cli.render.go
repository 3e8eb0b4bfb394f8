package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	autoparse "github.com/Hellinduction/AutoParse"
	"gopkg.in/yaml.v3"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	inputPath  string
	scopePath  string
	outputPath string
}

// scopeFile is the YAML structure of a scope file: one section per
// collaborator store, each a flat map of names to YAML values.
type scopeFile struct {
	Globals map[string]any `yaml:"globals"`
	Session map[string]any `yaml:"session"`
	Get     map[string]any `yaml:"get"`
	Post    map[string]any `yaml:"post"`
	Cookie  map[string]any `yaml:"cookie"`
	Server  map[string]any `yaml:"server"`
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	// Read input buffer
	buffer, err := readInput(cfg.inputPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	// Build scope
	scope, err := loadScope(cfg.scopePath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidScopeFile, err)
		return ExitCodeInputError
	}

	// Resolve - fail-soft by contract, no error path
	engine := autoparse.MustNew()
	result := engine.ResolveBuffer(scope, string(buffer))

	// Write output
	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.inputPath, FlagInput, FlagDefaultInput, "")
	fs.StringVar(&cfg.inputPath, FlagInputShort, FlagDefaultInput, "")
	fs.StringVar(&cfg.scopePath, FlagScope, "", "")
	fs.StringVar(&cfg.scopePath, FlagScopeShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadScope builds a request scope from an optional YAML scope file.
func loadScope(path string) (*autoparse.Scope, error) {
	scope := autoparse.NewScope()
	if path == "" {
		return scope, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file scopeFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	for name, v := range file.Globals {
		scope.Globals().SetValue(name, autoparse.FromAny(v))
	}
	for name, v := range file.Session {
		scope.Session().Set(name, autoparse.FromAny(v))
	}
	for name, v := range file.Get {
		scope.SetQueryParam(name, autoparse.FromAny(v))
	}
	for name, v := range file.Post {
		scope.SetFormParam(name, autoparse.FromAny(v))
	}
	for name, v := range file.Cookie {
		scope.SetCookie(name, autoparse.FromAny(v))
	}
	for name, v := range file.Server {
		scope.SetServerVar(name, autoparse.FromAny(v))
	}

	return scope, nil
}
