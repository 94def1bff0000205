// Command mst computes minimum spanning trees of graph documents.
//
//	mst solve graph.yaml --algorithm prim --root 3 --format json
//	mst generate random-connected --n 50 --extra 100 --seed 7 | mst solve --verify
//	mst sample labelled8 | mst solve
//
// Exit status is 0 on success, 2 when the graph is disconnected and 1 for any
// other failure.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/spantree/prim_kruskal"
)

const (
	exitOK           = 0
	exitFailure      = 1
	exitDisconnected = 2
)

// globals are the flags shared by every command, bound into Run methods.
type globals struct {
	LogLevel string `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Minimum level logged to stderr (${enum})."`

	stdin  io.Reader
	stdout io.Writer
	logger *slog.Logger
}

type cli struct {
	globals

	Solve    solveCmd    `cmd:"" help:"Compute the minimum spanning tree of a graph document."`
	Generate generateCmd `cmd:"" help:"Print a generated graph document."`
	Sample   sampleCmd   `cmd:"" help:"Print a built-in sample graph document."`
}

// AfterApply configures the logger once flags are known.
func (g *globals) AfterApply(stderr io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.LogLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	g.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return nil
}

// exitCode maps a command error onto the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, prim_kruskal.ErrDisconnected):
		return exitDisconnected
	default:
		return exitFailure
	}
}

// kongExit carries an exit status requested by kong (help, parse errors)
// out of the parser without terminating the process.
type kongExit int

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	var c cli
	c.stdin, c.stdout = stdin, stdout

	defer func() {
		if r := recover(); r != nil {
			exit, ok := r.(kongExit)
			if !ok {
				panic(r)
			}
			code = int(exit)
		}
	}()

	parser, err := kong.New(&c,
		kong.Name("mst"),
		kong.Description("Minimum spanning trees with Kruskal and Prim."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(status int) { panic(kongExit(status)) }),
		kong.BindTo(stderr, (*io.Writer)(nil)),
	)
	if err != nil {
		fmt.Fprintln(stderr, "mst:", err)
		return exitFailure
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return exitFailure
	}

	if err := ctx.Run(&c.globals); err != nil {
		if c.logger != nil {
			c.logger.Error("Command failed", slog.String("command", ctx.Command()), slog.Any("error", err))
		}
		fmt.Fprintln(stderr, "mst:", err)
		return exitCode(err)
	}

	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
