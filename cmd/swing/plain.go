package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/peterh/liner"
	"github.com/swinglang/swingscript/swing"
)

// plainSession handles line-mode REPL input. It is driven by liner for
// interactive use and writes everything to out.
type plainSession struct {
	engine *swing.Engine
	out    io.Writer
	errOut io.Writer
}

// handleLine processes one input line and reports whether the session
// should end.
func (s *plainSession) handleLine(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	if strings.HasPrefix(input, ":") {
		return s.handleCommand(input)
	}

	output, isErr := evaluateLine(s.engine, input)
	if isErr {
		fmt.Fprintln(s.errOut, output)
		return false
	}
	fmt.Fprintln(s.out, output)
	return false
}

func (s *plainSession) handleCommand(input string) bool {
	cmd := strings.Fields(input)[0]
	switch cmd {
	case ":help", ":h":
		fmt.Fprintln(s.out, "Commands: :help, :vars, :clear, :reset, :quit")
		fmt.Fprintln(s.out, "Keywords: yehai (let), aur (and), ya (or), na (not)")
	case ":vars", ":v":
		s.printVars()
	case ":clear", ":c":
		fmt.Fprint(s.out, "\033[H\033[2J")
	case ":reset", ":r":
		s.engine.Reset()
		fmt.Fprintln(s.out, "Environment reset")
	case ":quit", ":q":
		return true
	default:
		fmt.Fprintf(s.errOut, "Unknown command: %s\n", cmd)
	}
	return false
}

func (s *plainSession) printVars() {
	env := s.engine.Env()
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Name", "Value", "Kind"})
	table.SetAutoFormatHeaders(false)
	for _, name := range env.Names() {
		val, _ := env.Get(name)
		table.Append([]string{name, val.String(), val.Kind().String()})
	}
	table.Render()
}

func runPlainREPL(engine *swing.Engine, cfg fileConfig) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		return completeLine(engine, line)
	})

	histPath := cfg.REPL.HistoryFile
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		f, err := os.Create(histPath)
		if err != nil {
			logger().Warningf("cannot save history to %s: %s", histPath, err)
			return
		}
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}()

	session := &plainSession{engine: engine, out: os.Stdout, errOut: os.Stderr}
	fmt.Printf("SwingScript %s, type :help for commands\n", version)
	for {
		line, err := ln.Prompt(cfg.REPL.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if session.handleLine(line) {
			return nil
		}
	}
}
