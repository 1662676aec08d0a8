package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/swinglang/swingscript/swing"
)

const (
	configFileName     = ".swing.toml"
	defaultPrompt      = "swing> "
	defaultHistoryFile = "~/.swing_history"
)

// fileConfig mirrors the optional ~/.swing.toml file.
type fileConfig struct {
	REPL      replConfig     `toml:"repl"`
	Lexer     lexerConfig    `toml:"lexer"`
	Constants map[string]any `toml:"constants"`

	// Path is the file the config was read from, empty when defaults are used.
	Path string `toml:"-"`
}

type replConfig struct {
	Prompt      string `toml:"prompt"`
	Plain       bool   `toml:"plain"`
	HistoryFile string `toml:"history_file"`
}

type lexerConfig struct {
	SkipTabs bool `toml:"skip_tabs"`
}

// loadConfig reads path, or ~/.swing.toml when path is empty. A missing
// default file is not an error.
func loadConfig(path string) (fileConfig, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return withDefaults(fileConfig{}), nil
		}
		path = filepath.Join(home, configFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return withDefaults(fileConfig{}), nil
		}
		return fileConfig{}, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse error in %s: %w", path, err)
	}
	cfg.Path = path
	return withDefaults(cfg), nil
}

func withDefaults(cfg fileConfig) fileConfig {
	if cfg.REPL.Prompt == "" {
		cfg.REPL.Prompt = defaultPrompt
	}
	if cfg.REPL.HistoryFile == "" {
		cfg.REPL.HistoryFile = defaultHistoryFile
	}
	cfg.REPL.HistoryFile = expandHome(cfg.REPL.HistoryFile)
	return cfg
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// engineConfig converts the file settings into a swing.Config. Constant
// names must be plain identifiers and values numbers or booleans.
func (c fileConfig) engineConfig() (swing.Config, error) {
	cfg := swing.Config{SkipTabs: c.Lexer.SkipTabs}
	if len(c.Constants) == 0 {
		return cfg, nil
	}

	names := make([]string, 0, len(c.Constants))
	for name := range c.Constants {
		names = append(names, name)
	}
	sort.Strings(names)

	cfg.Constants = make(map[string]swing.Value, len(names))
	for _, name := range names {
		if !isIdentifier(name) {
			return swing.Config{}, fmt.Errorf("constant %q: not a valid identifier", name)
		}
		switch v := c.Constants[name].(type) {
		case int64:
			cfg.Constants[name] = swing.NewInt(v)
		case float64:
			cfg.Constants[name] = swing.NewFloat(v)
		case bool:
			cfg.Constants[name] = swing.NewBool(v)
		default:
			return swing.Config{}, fmt.Errorf("constant %q: unsupported value %v (%T)", name, v, v)
		}
	}
	return cfg, nil
}

// isIdentifier reports whether name scans as exactly one identifier token.
func isIdentifier(name string) bool {
	tokens, err := swing.Scan(name, "<config>")
	if err != nil || len(tokens) != 2 {
		return false
	}
	return tokens[0].Kind == swing.TokenIdentifier && tokens[0].Value == name
}
