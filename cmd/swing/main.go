package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/swinglang/swingscript/swing"
)

const version = "v0.1.0"

func main() {
	if err := runCLI(os.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string, out io.Writer) error {
	if len(args) < 2 {
		return replCommand(nil)
	}
	switch args[1] {
	case "repl":
		return replCommand(args[2:])
	case "eval":
		return evalCommand(args[2:], out)
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		if strings.HasPrefix(args[1], "-") {
			return replCommand(args[1:])
		}
		return usageError()
	}
}

// commonFlags are accepted by every subcommand.
type commonFlags struct {
	configPath string
	verbosity  int
	logFile    string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "path to a TOML config file (default ~/.swing.toml)")
	fs.IntVar(&c.verbosity, "verbose", 0, "log verbosity (1 info, 2 debug)")
	fs.Var(countFlag{n: &c.verbosity}, "v", "raise log verbosity by one; repeatable")
	fs.StringVar(&c.logFile, "log-file", "", "write logs to this file instead of stderr")
}

// setup configures logging and builds the engine from the config file.
func (c *commonFlags) setup() (*swing.Engine, fileConfig, error) {
	configureLogging(c.verbosity, c.logFile)
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return nil, fileConfig{}, err
	}
	if cfg.Path != "" {
		logger().Infof("loaded config from %s", cfg.Path)
	}
	engineCfg, err := cfg.engineConfig()
	if err != nil {
		return nil, fileConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return swing.NewEngine(engineCfg), cfg, nil
}

func replCommand(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	var common commonFlags
	common.register(fs)
	plain := fs.Bool("plain", false, "use the line-mode REPL even on a terminal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tui := !*plain && isTerminal(os.Stdin) && isTerminal(os.Stdout)
	if tui && common.verbosity > 0 && common.logFile == "" {
		// Log lines on stderr would tear the full-screen view.
		common.logFile = filepath.Join(os.TempDir(), "swing.log")
	}

	engine, cfg, err := common.setup()
	if err != nil {
		return err
	}
	if tui && !cfg.REPL.Plain {
		logger().Info("starting full-screen repl")
		return runTUI(engine, cfg.REPL.Prompt)
	}
	logger().Info("starting line repl")
	return runPlainREPL(engine, cfg)
}

func evalCommand(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	var common commonFlags
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("swing eval: expression required")
	}

	engine, _, err := common.setup()
	if err != nil {
		return err
	}
	val, err := engine.Eval(strings.Join(fs.Args(), " "))
	if err != nil {
		return renderedError{err: err}
	}
	fmt.Fprintln(out, val.String())
	return nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s [repl] [flags]\n", prog)
	fmt.Fprintf(os.Stderr, "       %s eval [flags] <expression>\n", prog)
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -config string")
	fmt.Fprintln(os.Stderr, "    path to a TOML config file (default ~/.swing.toml)")
	fmt.Fprintln(os.Stderr, "  -verbose int")
	fmt.Fprintln(os.Stderr, "    log verbosity (1 info, 2 debug)")
	fmt.Fprintln(os.Stderr, "  -v")
	fmt.Fprintln(os.Stderr, "    raise log verbosity by one; repeatable")
	fmt.Fprintln(os.Stderr, "  -log-file string")
	fmt.Fprintln(os.Stderr, "    write logs to this file instead of stderr")
	fmt.Fprintln(os.Stderr, "  -plain")
	fmt.Fprintln(os.Stderr, "    repl only: use the line-mode REPL even on a terminal")
}

// countFlag is a boolean-style flag that adds one to n each time it is
// given. An explicit -v=N sets n to N.
type countFlag struct {
	n *int
}

func (c countFlag) String() string {
	if c.n == nil {
		return "0"
	}
	return strconv.Itoa(*c.n)
}

func (c countFlag) Set(value string) error {
	switch value {
	case "true":
		*c.n++
		return nil
	case "false":
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid count %q", value)
	}
	*c.n = n
	return nil
}

func (c countFlag) IsBoolFlag() bool { return true }

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
