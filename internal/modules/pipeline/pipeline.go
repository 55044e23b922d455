package pipeline

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const channelBuffer = 50

// Stage defines the interface for a pipeline stage.
// Each stage processes input from an input channel and sends results to an output channel.
type Stage interface {
	Execute(ctx context.Context, input <-chan interface{}, output chan<- interface{}, logger *zap.Logger) error
}

// Pipeline manages a sequence of stages that process data in a chain.
type Pipeline struct {
	stages []Stage     // List of stages in the pipeline
	logger *zap.Logger // Logger for pipeline-wide logging
}

// New creates a new Pipeline instance with the given logger.
func New(logger *zap.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
	}
}

// AddStage appends a stage. Stages run in the order they were added.
func (p *Pipeline) AddStage(stage Stage) *Pipeline {
	p.stages = append(p.stages, stage)
	return p
}

// Run executes the pipeline with the given input channel.
//
// The pipeline chains stages such that each stage's output becomes the next stage's input.
// The first stage uses the provided input channel, and subsequent stages use channels created internally.
// A stage's output channel is closed as soon as that stage returns, which is how
// the next stage learns its input is exhausted.
//
// Parameters:
//   - ctx: Context for cancellation.
//   - input: Initial input channel for the first stage.
//
// Returns:
//   - ctx.Err() if the context ends first.
//   - The combined stage errors, or nil if every stage succeeded.
func (p *Pipeline) Run(ctx context.Context, input <-chan interface{}) error {
	if len(p.stages) == 0 {
		p.logger.Warn("no stages in pipeline")
		return nil
	}

	channels := make([]chan interface{}, len(p.stages))
	for i := range channels {
		channels[i] = make(chan interface{}, channelBuffer)
	}

	var (
		wg     sync.WaitGroup
		errMu  sync.Mutex
		runErr error
	)
	wg.Add(len(p.stages))

	for i, stage := range p.stages {
		inChan := input
		if i > 0 {
			inChan = channels[i-1]
		}
		outChan := channels[i]

		go func(stage Stage, in <-chan interface{}, out chan<- interface{}, idx int) {
			defer wg.Done()
			defer close(out)
			if err := stage.Execute(ctx, in, out, p.logger); err != nil {
				p.logger.Error("stage execution failed",
					zap.Int("stage", idx),
					zap.Error(err))
				errMu.Lock()
				runErr = multierr.Append(runErr, fmt.Errorf("stage %d: %w", idx, err))
				errMu.Unlock()
			}
			// Keep upstream stages from blocking on a full channel once this one stops reading.
			if idx > 0 {
				for range in {
				}
			}
		}(stage, inChan, outChan, i)
	}

	last := channels[len(channels)-1]
	go func() {
		for range last {
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		errMu.Lock()
		defer errMu.Unlock()
		if runErr != nil {
			return runErr
		}
		p.logger.Debug("pipeline completed successfully")
		return nil
	case <-ctx.Done():
		p.logger.Info("pipeline canceled", zap.Error(ctx.Err()))
		return ctx.Err()
	}
}
