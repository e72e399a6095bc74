// SPDX-License-Identifier: Apache-2.0

package latex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/simreport/simreport/pkg/logger"
)

const (
	DefaultEngine = "pdflatex"
	DefaultPasses = 2
	bibtexTool    = "bibtex"
)

// Runner runs an external tool in dir.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs tools as subprocesses. Their output goes to Output when
// set and is discarded otherwise.
type ExecRunner struct {
	Output io.Writer
}

func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Output
	cmd.Stderr = r.Output

	err := cmd.Run()
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%s: %w", name, ErrToolNotFound)
	}
	return err
}

type Compiler struct {
	runner Runner
	engine string
	passes int
	bibtex bool
	logger logger.Logger
	onStep func(step string)
}

type CompilerOptionFn func(*Compiler)

// WithRunner replaces the subprocess runner.
func WithRunner(r Runner) CompilerOptionFn {
	return func(c *Compiler) {
		c.runner = r
	}
}

// WithEngine sets the typesetting engine, pdflatex by default.
func WithEngine(engine string) CompilerOptionFn {
	return func(c *Compiler) {
		c.engine = engine
	}
}

// WithPasses sets how many times the engine runs.
func WithPasses(n int) CompilerOptionFn {
	return func(c *Compiler) {
		c.passes = n
	}
}

// WithBibtex runs bibtex after the first pass.
func WithBibtex(enabled bool) CompilerOptionFn {
	return func(c *Compiler) {
		c.bibtex = enabled
	}
}

func WithCompilerLogger(l logger.Logger) CompilerOptionFn {
	return func(c *Compiler) {
		c.logger = l
	}
}

// WithProgress registers a callback invoked before every step.
func WithProgress(fn func(step string)) CompilerOptionFn {
	return func(c *Compiler) {
		c.onStep = fn
	}
}

func NewCompiler(opts ...CompilerOptionFn) *Compiler {
	c := &Compiler{
		runner: ExecRunner{},
		engine: DefaultEngine,
		passes: DefaultPasses,
		logger: logger.NewNoopLogger(),
		onStep: func(string) {},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.passes < 1 {
		c.passes = 1
	}
	return c
}

// Compile typesets <root>/<format>_collection.tex. Each step runs once and
// the first failure is returned: ErrToolNotFound when a tool is missing, a
// *CompileError otherwise.
func (c *Compiler) Compile(ctx context.Context, root string, format Format) error {
	texFile := format.BaseName() + ".tex"
	args := []string{"-interaction=nonstopmode"}
	if format == FormatSVG {
		args = append(args, "-shell-escape")
	}
	args = append(args, texFile)

	for pass := 1; pass <= c.passes; pass++ {
		c.onStep(fmt.Sprintf("%s pass %d/%d", c.engine, pass, c.passes))
		if err := c.run(ctx, root, c.engine, pass, args...); err != nil {
			return err
		}

		if pass == 1 && c.bibtex {
			c.onStep(bibtexTool)
			if err := c.run(ctx, root, bibtexTool, pass, format.BaseName()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Compiler) run(ctx context.Context, dir, tool string, pass int, args ...string) error {
	c.logger.LogCommandStart(tool, args...)
	err := c.runner.Run(ctx, dir, tool, args...)
	if err == nil {
		c.logger.LogCommandComplete(tool)
		return nil
	}
	if errors.Is(err, ErrToolNotFound) || ctx.Err() != nil {
		return err
	}

	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &CompileError{
		Tool:     tool,
		Pass:     pass,
		ExitCode: code,
		Err:      err,
	}
}
