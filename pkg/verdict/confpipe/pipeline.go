package confpipe

import (
	"context"
	"fmt"

	"github.com/verdict-io/verdict/pkg/verdict"
	"github.com/verdict-io/verdict/pkg/verdict/chain"
	"github.com/verdict-io/verdict/pkg/verdict/fault"
	"github.com/verdict-io/verdict/pkg/verdict/stage"
)

// Pipeline composes load, validate and process into one stage function.
// Success requires all three stages in order; the first failing stage's
// fault is the one observed, and later stages never run.
func (s *Stages) Pipeline() stage.Func[string, Report, fault.Union] {
	return stage.Then(stage.Then(s.Load, s.Validate), s.Process)
}

// Run executes the pipeline for one identifier through the fluent chain.
func (s *Stages) Run(ctx context.Context, name string) verdict.Result[Report, fault.Union] {
	return chain.Then(
		chain.Then(
			chain.Then(chain.FromValue[fault.Union](ctx, name), s.Load),
			s.Validate),
		s.Process).Result()
}

// NewReporter builds the exhaustive failure reporter over the full
// pipeline schema. Adding a variant to a stage schema without extending
// the handler map here fails at construction.
func NewReporter() *fault.Dispatcher[string] {
	return fault.MustDispatcher(PipelineSchema(), fault.HandlerMap[string]{
		TagConfigRead: fault.On(func(f *ReadFault) string {
			return fmt.Sprintf("cannot read configuration %q", f.Path)
		}),
		TagConfigParse: fault.On(func(f *ParseFault) string {
			return fmt.Sprintf("configuration %q is malformed at line %d", f.Path, f.Line)
		}),
		TagValidation: fault.On(func(f *ValidationFault) string {
			return fmt.Sprintf("field %q %s", f.Field, f.Reason)
		}),
		TagProcessing: fault.On(func(f *ProcessFault) string {
			return fmt.Sprintf("task %q failed: %s", f.Task, f.Reason)
		}),
	})
}
