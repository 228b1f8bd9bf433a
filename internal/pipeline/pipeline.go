package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/ransomcheck/internal/model"
)

// Step is one stage of a check.
type Step interface {
	// Do executes the step against run.
	// A returned error stops the pipeline.
	Do(ctx context.Context, run *model.Run) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// ProgressReporter is implemented by steps that print a progress line
// after they complete, such as "Loaded 2 keywords.".
type ProgressReporter interface {
	Progress(run *model.Run) string
}

// Pipeline executes steps in the order they were added.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// progress receives the progress lines of steps that report one.
	progress io.Writer
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithProgress sets where progress lines are written.
// Without this option they are discarded.
func WithProgress(w io.Writer) Option {
	return func(p *Pipeline) {
		p.progress = w
	}
}

// New creates a new Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps:    make([]Step, 0),
		progress: io.Discard,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs every step in order against run.
// Cancellation is checked before each step. The first step error is
// returned unchanged and no later step runs.
func (p *Pipeline) Execute(ctx context.Context, run *model.Run) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled", "step", step.Name(), "reason", ctx.Err())
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step", "step", step.Name())

		if err := step.Do(ctx, run); err != nil {
			p.logger.Debug("step failed", "step", step.Name(), "error", err)
			return err
		}

		if reporter, ok := step.(ProgressReporter); ok {
			if line := reporter.Progress(run); line != "" {
				fmt.Fprintln(p.progress, line)
			}
		}

		p.logger.Debug("step completed", "step", step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
