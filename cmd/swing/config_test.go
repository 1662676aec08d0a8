package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/swinglang/swingscript/swing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swing.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingDefaultUsesDefaults(t *testing.T) {
	home := isolateHome(t)
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Path != "" {
		t.Fatalf("expected no config path, got %q", cfg.Path)
	}
	if cfg.REPL.Prompt != defaultPrompt {
		t.Fatalf("unexpected prompt %q", cfg.REPL.Prompt)
	}
	if want := filepath.Join(home, ".swing_history"); cfg.REPL.HistoryFile != want {
		t.Fatalf("history file %q, want %q", cfg.REPL.HistoryFile, want)
	}
}

func TestLoadConfigReadsDefaultFile(t *testing.T) {
	home := isolateHome(t)
	path := filepath.Join(home, configFileName)
	if err := os.WriteFile(path, []byte("[repl]\nprompt = \">> \"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Path != path || cfg.REPL.Prompt != ">> " {
		t.Fatalf("unexpected config %#v", cfg)
	}
}

func TestLoadConfigExplicitMissingFileFails(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil || !strings.Contains(err.Error(), "cannot read") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestLoadConfigParseError(t *testing.T) {
	path := writeConfig(t, "[repl\nprompt = 1\n")
	_, err := loadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "parse error in "+path) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadConfigSections(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, `
[repl]
prompt = "> "
plain = true
history_file = "/tmp/swing-history"

[lexer]
skip_tabs = true

[constants]
pi = 3.5
answer = 42
on = true
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := replConfig{Prompt: "> ", Plain: true, HistoryFile: "/tmp/swing-history"}
	if diff := cmp.Diff(want, cfg.REPL); diff != "" {
		t.Fatalf("repl config mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Lexer.SkipTabs {
		t.Fatalf("expected skip_tabs")
	}

	engineCfg, err := cfg.engineConfig()
	if err != nil {
		t.Fatalf("engine config: %v", err)
	}
	if !engineCfg.SkipTabs {
		t.Fatalf("SkipTabs not carried into engine config")
	}
	got := map[string]string{}
	for name, v := range engineCfg.Constants {
		got[name] = v.Kind().String() + ":" + v.String()
	}
	wantConsts := map[string]string{"pi": "float:3.5", "answer": "int:42", "on": "int:1"}
	if diff := cmp.Diff(wantConsts, got); diff != "" {
		t.Fatalf("constants mismatch (-want +got):\n%s", diff)
	}

	engine := swing.NewEngine(engineCfg)
	val, err := engine.Eval("answer\t+ 1")
	if err != nil {
		t.Fatalf("eval with tabs: %v", err)
	}
	if val.Int() != 43 {
		t.Fatalf("unexpected result %v", val)
	}
}

func TestEngineConfigRejectsUnsupportedConstant(t *testing.T) {
	cases := map[string]string{
		"name": "[constants]\nyehai = 1\n",
		"type": "[constants]\ngreeting = \"hi\"\n",
	}
	for label, body := range cases {
		cfg, err := loadConfig(writeConfig(t, body))
		if err != nil {
			t.Fatalf("%s: load: %v", label, err)
		}
		if _, err := cfg.engineConfig(); err == nil {
			t.Fatalf("%s: expected engine config error", label)
		}
	}
}
