package swing

import "testing"

func TestNewEngineSeedsConstants(t *testing.T) {
	engine := NewEngine(Config{})
	for name, want := range map[string]int64{"null": 0, "sach": 1, "jhut": 0} {
		v, ok := engine.Env().Get(name)
		if !ok || v.Kind() != KindInt || v.Int() != want {
			t.Fatalf("constant %s: got %v %v", name, v, ok)
		}
	}
	cfg := engine.Config()
	if cfg.SourceName != "<stdin>" || cfg.ContextName != "<program>" {
		t.Fatalf("defaults not applied: %#v", cfg)
	}
}

func TestEngineConfigConstants(t *testing.T) {
	engine := NewEngine(Config{Constants: map[string]Value{
		"pi":   NewFloat(3.5),
		"null": NewInt(-1),
	}})
	v, err := engine.Eval("pi * 2")
	if err != nil || v.String() != "7.0" {
		t.Fatalf("unexpected result %v (%v)", v, err)
	}
	if v, _ := engine.Env().Get("null"); v.Int() != -1 {
		t.Fatalf("configured constant should override builtin, got %v", v)
	}
}

func TestEngineResetDropsBindings(t *testing.T) {
	engine := NewEngine(Config{})
	if _, err := engine.Eval("yehai score = 3"); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if _, err := engine.Eval("yehai sach = 0"); err != nil {
		t.Fatalf("rebind failed: %v", err)
	}
	engine.Reset()
	if _, ok := engine.Env().Get("score"); ok {
		t.Fatalf("reset kept user binding")
	}
	if v, _ := engine.Env().Get("sach"); v.Int() != 1 {
		t.Fatalf("reset did not restore sach, got %v", v)
	}
}

func TestEngineReadIsIdempotent(t *testing.T) {
	engine := NewEngine(Config{})
	if _, err := engine.Eval("yehai x = 5"); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		v, err := engine.Eval("x")
		if err != nil || v.Int() != 5 {
			t.Fatalf("read %d: got %v (%v)", i, v, err)
		}
	}
}

func TestEngineSkipTabs(t *testing.T) {
	if _, err := NewEngine(Config{}).Eval("1\t+ 1"); err == nil {
		t.Fatalf("expected tab to be rejected by default")
	}
	v, err := NewEngine(Config{SkipTabs: true}).Eval("1\t+ 1")
	if err != nil || v.Int() != 2 {
		t.Fatalf("unexpected result %v (%v)", v, err)
	}
}

func TestEngineSourceNameLabelsTraceback(t *testing.T) {
	engine := NewEngine(Config{SourceName: "repl", ContextName: "<session>"})
	_, err := engine.Eval("nope")
	if err == nil {
		t.Fatalf("expected error")
	}
	swingErr := err.(*Error)
	if got := swingErr.Traceback(); got != "Traceback (most recent call last):\n  File repl, line 1, in <session>\n" {
		t.Fatalf("unexpected traceback %q", got)
	}
}

func TestEngineCompileDoesNotEvaluate(t *testing.T) {
	engine := NewEngine(Config{})
	node, err := engine.Compile("yehai later = 1")
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if _, ok := engine.Env().Get("later"); ok {
		t.Fatalf("compile evaluated the assignment")
	}
	if _, err := Evaluate(node, engine.Env(), NewContext("<test>")); err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if _, ok := engine.Env().Get("later"); !ok {
		t.Fatalf("expected binding after evaluation")
	}
}
