package confpipe

import (
	"fmt"

	"github.com/verdict-io/verdict/pkg/verdict/fault"
)

const (
	TagConfigRead  fault.Tag = "config_read"
	TagConfigParse fault.Tag = "config_parse"
	TagValidation  fault.Tag = "validation"
	TagProcessing  fault.Tag = "processing"
)

// ReadFault reports an unreadable configuration source.
type ReadFault struct {
	Path  string
	Cause error
}

var _ fault.Fault = (*ReadFault)(nil)

func (f *ReadFault) Tag() fault.Tag { return TagConfigRead }

func (f *ReadFault) Error() string {
	return fmt.Sprintf("read %q: %v", f.Path, f.Cause)
}

func (f *ReadFault) Unwrap() error { return f.Cause }

// ParseFault reports malformed configuration content, with the line the
// parser choked on when it is known (0 otherwise).
type ParseFault struct {
	Path   string
	Line   int
	Detail string
}

var _ fault.Fault = (*ParseFault)(nil)

func (f *ParseFault) Tag() fault.Tag { return TagConfigParse }

func (f *ParseFault) Error() string {
	return fmt.Sprintf("parse %s:%d: %s", f.Path, f.Line, f.Detail)
}

// ValidationFault reports a parsed configuration rejected by a rule, naming
// the offending field.
type ValidationFault struct {
	Field  string
	Value  string
	Reason string
}

var _ fault.Fault = (*ValidationFault)(nil)

func (f *ValidationFault) Tag() fault.Tag { return TagValidation }

func (f *ValidationFault) Error() string {
	return fmt.Sprintf("validation: field %q %s (got %q)", f.Field, f.Reason, f.Value)
}

// ProcessFault reports a failed processing task.
type ProcessFault struct {
	Task   string
	Reason string
}

var _ fault.Fault = (*ProcessFault)(nil)

func (f *ProcessFault) Tag() fault.Tag { return TagProcessing }

func (f *ProcessFault) Error() string {
	return fmt.Sprintf("processing %q: %s", f.Task, f.Reason)
}

// LoadSchema is the closed fault set of the load stage.
func LoadSchema() fault.Schema {
	return fault.MustSchema(TagConfigRead, TagConfigParse)
}

// ValidateSchema is the closed fault set of the validation stage.
func ValidateSchema() fault.Schema {
	return fault.MustSchema(TagValidation)
}

// ProcessSchema is the closed fault set of the processing stage.
func ProcessSchema() fault.Schema {
	return fault.MustSchema(TagProcessing)
}

// PipelineSchema is the union of every stage's fault set; a caller chaining
// all three stages can observe exactly these variants.
func PipelineSchema() fault.Schema {
	return fault.Compose(LoadSchema(), ValidateSchema(), ProcessSchema())
}
