package swing

import "maps"

const (
	defaultSourceName  = "<stdin>"
	defaultContextName = "<program>"
)

// Config controls how an Engine scans source and seeds its globals.
type Config struct {
	// SourceName labels positions in tracebacks. Defaults to "<stdin>".
	SourceName string
	// ContextName names the root evaluation frame. Defaults to "<program>".
	ContextName string
	// SkipTabs treats tab characters as whitespace.
	SkipTabs bool
	// Constants are installed into the root environment after the built-in
	// null, sach and jhut bindings and may override them.
	Constants map[string]Value
}

// Engine evaluates lines against one root environment that lives for the
// whole session. An Engine is not safe for concurrent use.
type Engine struct {
	config Config
	env    *Env
}

// NewEngine constructs an Engine with defaults applied and globals seeded.
func NewEngine(cfg Config) *Engine {
	if cfg.SourceName == "" {
		cfg.SourceName = defaultSourceName
	}
	if cfg.ContextName == "" {
		cfg.ContextName = defaultContextName
	}
	cfg.Constants = maps.Clone(cfg.Constants)

	engine := &Engine{config: cfg}
	engine.Reset()
	return engine
}

// Builtins returns the constants every root environment starts with.
func Builtins() map[string]Value {
	return map[string]Value{
		"null": NewInt(0),
		"sach": NewInt(1),
		"jhut": NewInt(0),
	}
}

func (e *Engine) Config() Config { return e.config }

// Env returns the root environment.
func (e *Engine) Env() *Env { return e.env }

// Reset discards every binding and reinstalls the seeded constants.
func (e *Engine) Reset() {
	env := NewEnv(nil)
	for name, val := range Builtins() {
		env.Define(name, val)
	}
	for name, val := range e.config.Constants {
		env.Define(name, val)
	}
	e.env = env
}

// Compile scans and parses a line without evaluating it.
func (e *Engine) Compile(line string) (Node, error) {
	tokens, err := ScanWithOptions(line, e.config.SourceName, ScanOptions{SkipTabs: e.config.SkipTabs})
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Eval compiles and evaluates one line in a fresh root context.
func (e *Engine) Eval(line string) (Value, error) {
	node, err := e.Compile(line)
	if err != nil {
		return Value{}, err
	}
	return Evaluate(node, e.env, NewContext(e.config.ContextName))
}
