package confpipe

import (
	"context"
	"slices"

	"github.com/verdict-io/verdict/pkg/verdict"
	"github.com/verdict-io/verdict/pkg/verdict/fault"
	"github.com/verdict-io/verdict/pkg/verdict/pipe"
)

// EncodeTask is the processing stage's task name, carried by every
// ProcessFault it raises.
const EncodeTask = "encode"

// DefaultModes are the modes the validation stage accepts when Stages does
// not override them.
var DefaultModes = []string{"standard", "strict"}

// Report is the pipeline's terminal success value. Code is derived from the
// validated payload: its length.
type Report struct {
	Mode string
	Code int
}

// Stages bundles the pipeline's collaborators and tuning. Each stage is a
// pure function of its input aside from the declared collaborators.
type Stages struct {
	Source Source
	Parser Parser
	// Modes overrides DefaultModes when non-empty.
	Modes []string
	// MinPayload is the shortest payload the processing stage accepts.
	MinPayload int
}

func (s *Stages) allowedModes() []string {
	if len(s.Modes) > 0 {
		return s.Modes
	}
	return DefaultModes
}

// Load reads and parses the configuration named by name. Faults: ReadFault
// when the source cannot deliver content, ParseFault when the content is
// malformed.
func (s *Stages) Load(ctx context.Context, name string) verdict.Result[Config, fault.Union] {
	raw := pipe.Try(verdict.Success[string, fault.Union](name),
		func(n string) ([]byte, error) {
			return s.Source.Read(ctx, n)
		},
		func(err error) fault.Union {
			return fault.Wrap(&ReadFault{Path: name, Cause: err})
		})

	return pipe.Try(raw,
		func(b []byte) (Config, error) {
			return s.Parser.Parse(b)
		},
		func(err error) fault.Union {
			return fault.Wrap(&ParseFault{Path: name, Line: errorLine(err), Detail: err.Error()})
		})
}

// Validate rejects configurations whose mode is not allowed. Faults:
// ValidationFault naming the offending field.
func (s *Stages) Validate(ctx context.Context, cfg Config) verdict.Result[Config, fault.Union] {
	return pipe.Validate(verdict.Success[Config, fault.Union](cfg),
		func(c Config) bool {
			return slices.Contains(s.allowedModes(), c.Mode)
		},
		func(c Config) fault.Union {
			return fault.Wrap(&ValidationFault{Field: "mode", Value: c.Mode, Reason: "is not an allowed mode"})
		})
}

// Process derives the report from a validated configuration. Faults:
// ProcessFault with the fixed task name when the payload is too short.
func (s *Stages) Process(ctx context.Context, cfg Config) verdict.Result[Report, fault.Union] {
	if len(cfg.Payload) < s.MinPayload {
		return verdict.Fail[Report](fault.Wrap(&ProcessFault{Task: EncodeTask, Reason: "payload too short"}))
	}
	return verdict.Success[Report, fault.Union](Report{Mode: cfg.Mode, Code: len(cfg.Payload)})
}
