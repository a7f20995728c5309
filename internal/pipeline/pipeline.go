// File: pipeline.go
// Title: Pipeline Executor
// Description: Compiles pipeline steps against a Registry and applies them
//              to single strings or to line streams.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-06
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-06 v0.1.0: Initial executor
// - 2026-10-16 v0.2.0: Context checks, panic recovery, line streaming

package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/msto63/strext/core/config"
	strexterror "github.com/msto63/strext/core/error"
	strexterrors "github.com/msto63/strext/core/errors"
	"github.com/msto63/strext/core/log"
)

// MaxLineSize is the longest input line ApplyLines accepts
const MaxLineSize = 1024 * 1024

// CompileOptions configures Compile
type CompileOptions struct {
	Registry *Registry
	Logger   *log.Logger
}

type compiledStep struct {
	def  *Definition
	args Args
	raw  config.Step
}

// Pipeline is an ordered, validated list of operations. It holds no
// mutable state and may be shared between goroutines.
type Pipeline struct {
	name   string
	steps  []compiledStep
	logger *log.Logger
}

// Compile resolves every step of pf and converts its arguments
func Compile(pf *config.PipelineFile, opts CompileOptions) (*Pipeline, error) {
	if pf == nil {
		return nil, strexterrors.InvalidInput(strexterrors.ModulePipeline, "Compile", nil, "pipeline file")
	}
	return CompileSteps(pf.Name, pf.Steps, opts)
}

// CompileSteps builds a pipeline from steps. All steps are checked before
// the first error is returned.
func CompileSteps(name string, steps []config.Step, opts CompileOptions) (*Pipeline, error) {
	if opts.Registry == nil {
		opts.Registry = DefaultRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if name == "" {
		name = "inline"
	}

	if len(steps) == 0 {
		return nil, strexterrors.InvalidInput(strexterrors.ModulePipeline, "Compile", name, "at least one step")
	}

	p := &Pipeline{
		name:   name,
		steps:  make([]compiledStep, 0, len(steps)),
		logger: opts.Logger.WithField("pipeline", name),
	}

	for i, step := range steps {
		def, err := opts.Registry.Lookup(step.Op)
		if err != nil {
			return nil, compileError(i, step, err)
		}

		args, err := def.Bind(step.Args)
		if err != nil {
			return nil, compileError(i, step, err)
		}

		p.steps = append(p.steps, compiledStep{def: def, args: args, raw: step})
	}

	p.logger.Debug("pipeline compiled", log.Fields{"steps": len(p.steps)})
	return p, nil
}

func compileError(index int, step config.Step, cause error) error {
	return strexterror.Wrap(cause, fmt.Sprintf("step %d (%s)", index+1, step.Op)).
		WithDetail("step", index+1).
		WithDetail("op", step.Op)
}

// Name returns the pipeline name
func (p *Pipeline) Name() string {
	return p.name
}

// Len returns the number of steps
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// Steps returns the steps in command line form, using canonical names
func (p *Pipeline) Steps() []string {
	out := make([]string, len(p.steps))
	for i, s := range p.steps {
		out[i] = config.Step{Op: s.def.Name, Args: s.raw.Args}.String()
	}
	return out
}

// Apply runs every step over input in order
func (p *Pipeline) Apply(ctx context.Context, input string) (string, error) {
	timer := p.logger.StartTimer("pipeline.apply").WithField("steps", len(p.steps))

	out, err := p.apply(ctx, input)
	if err != nil {
		timer.StopWithError(err)
		return "", err
	}

	timer.Stop()
	return out, nil
}

// ApplyLines applies the pipeline to each line read from r and writes the
// results to w, one per line. It returns the number of lines written.
func (p *Pipeline) ApplyLines(ctx context.Context, r io.Reader, w io.Writer) (int, error) {
	timer := p.logger.StartTimer("pipeline.apply-lines").WithField("steps", len(p.steps))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	out := bufio.NewWriter(w)

	lines := 0
	fail := func(err error) (int, error) {
		_ = out.Flush()
		timer.WithField("lines", lines).StopWithError(err)
		return lines, err
	}

	for scanner.Scan() {
		result, err := p.apply(ctx, scanner.Text())
		if err != nil {
			if e, ok := strexterror.As(err); ok {
				e.WithDetail("line", lines+1)
			}
			return fail(err)
		}

		if _, err := out.WriteString(result); err != nil {
			return fail(writeError(err))
		}
		if err := out.WriteByte('\n'); err != nil {
			return fail(writeError(err))
		}
		lines++
	}

	if err := scanner.Err(); err != nil {
		return fail(strexterror.Wrap(err, "failed to read input").
			WithCode(strexterror.CodeInvalidInput).
			WithOperation("pipeline.ApplyLines"))
	}

	if err := out.Flush(); err != nil {
		return fail(writeError(err))
	}

	timer.WithField("lines", lines).Stop()
	return lines, nil
}

func writeError(err error) error {
	return strexterror.Wrap(err, "failed to write output").
		WithCode(strexterror.CodeInternal).
		WithOperation("pipeline.ApplyLines")
}

func (p *Pipeline) apply(ctx context.Context, input string) (string, error) {
	current := input
	for i, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return "", strexterror.Wrap(err, "pipeline canceled").
				WithCode(strexterror.CodeCanceled).
				WithOperation("pipeline.Apply").
				WithDetail("step", i+1)
		}

		next, err := runStep(step, current)
		if err != nil {
			return "", strexterrors.StepFailed(i+1, step.def.Name, err)
		}

		if p.logger.IsLevelEnabled(log.LevelTrace) {
			p.logger.Trace("step applied", log.Fields{
				"step":   i + 1,
				"op":     step.def.Name,
				"input":  current,
				"output": next,
			})
		} else {
			p.logger.Debug("step applied", log.Fields{
				"step":       i + 1,
				"op":         step.def.Name,
				"input_len":  len(current),
				"output_len": len(next),
			})
		}
		current = next
	}
	return current, nil
}

// runStep converts a panic raised by the operation into an error
func runStep(step compiledStep, input string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	return step.def.Func(input, step.args), nil
}
