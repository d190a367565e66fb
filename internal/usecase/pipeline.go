package usecase

import (
	"context"
	"errors"

	"agroflow-backend/pkg/email"
)

// step is one fallible stage of an ordered pipeline.
type step struct {
	name string
	run  func(ctx context.Context) error
}

// StepResult is the tagged outcome of a single step.
type StepResult struct {
	Step string
	Err  error
}

// OK reports whether the step succeeded.
func (r StepResult) OK() bool {
	return r.Err == nil
}

// Kind classifies the step error using the transport taxonomy.
func (r StepResult) Kind() email.ErrorKind {
	var checkErr *TransportCheckError
	if errors.As(r.Err, &checkErr) {
		return checkErr.Result.Kind
	}
	return email.Classify(r.Err)
}

// runPipeline runs steps in order and stops at the first failure. The
// returned slice holds one result per step that ran, so a step after a
// failure never appears in it.
func runPipeline(ctx context.Context, steps []step) []StepResult {
	results := make([]StepResult, 0, len(steps))
	for _, s := range steps {
		err := s.run(ctx)
		results = append(results, StepResult{Step: s.name, Err: err})
		if err != nil {
			break
		}
	}
	return results
}

func lastFailure(results []StepResult) (StepResult, bool) {
	if len(results) == 0 {
		return StepResult{}, false
	}
	last := results[len(results)-1]
	return last, !last.OK()
}
