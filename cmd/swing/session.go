package main

import (
	"errors"
	"sort"
	"strings"

	"github.com/swinglang/swingscript/swing"
)

var replCommands = []string{":help", ":vars", ":clear", ":reset", ":quit"}

// runLine evaluates one line and logs the outcome at debug level.
func runLine(engine *swing.Engine, input string) (swing.Value, error) {
	val, err := engine.Eval(input)
	if err != nil {
		logger().Debugf("eval %q failed: %s", input, err)
		return swing.Value{}, err
	}
	logger().Debugf("eval %q = %s", input, val)
	return val, nil
}

// evaluateLine runs one line and returns the text to show and whether it
// is an error.
func evaluateLine(engine *swing.Engine, input string) (string, bool) {
	val, err := runLine(engine, input)
	if err != nil {
		return renderError(err), true
	}
	return val.String(), false
}

// renderError adds a caret pointer under lexical and syntax errors. Runtime
// errors already carry one after their traceback.
func renderError(err error) string {
	var swingErr *swing.Error
	if errors.As(err, &swingErr) && swingErr.Kind != swing.RuntimeError {
		return swingErr.Error() + "\n" + swingErr.CodeFrame()
	}
	return err.Error()
}

type renderedError struct {
	err error
}

func (e renderedError) Error() string { return renderError(e.err) }

func (e renderedError) Unwrap() error { return e.err }

// completions returns keywords, REPL commands and bound names starting with
// the last word of input.
func completions(engine *swing.Engine, input string) []string {
	words := strings.Fields(input)
	if len(words) == 0 || strings.HasSuffix(input, " ") {
		return nil
	}
	lastWord := words[len(words)-1]

	var candidates []string
	if len(words) == 1 && strings.HasPrefix(lastWord, ":") {
		candidates = replCommands
	} else {
		candidates = append(swing.Keywords(), engine.Env().Names()...)
	}

	seen := make(map[string]struct{})
	var out []string
	for _, c := range candidates {
		if _, ok := seen[c]; ok || !strings.HasPrefix(c, lastWord) {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// completeLine replaces the last word of input with each completion.
func completeLine(engine *swing.Engine, input string) []string {
	matches := completions(engine, input)
	if len(matches) == 0 {
		return nil
	}
	words := strings.Fields(input)
	prefix := strings.TrimSuffix(input, words[len(words)-1])
	lines := make([]string, len(matches))
	for i, m := range matches {
		lines[i] = prefix + m
	}
	return lines
}
