package verdict

import "fmt"

// ViolationKind classifies a broken usage contract.
type ViolationKind string

const (
	// InvalidStateAccess marks access to the inactive slot of a Result,
	// or state propagation from a Result in the wrong state.
	InvalidStateAccess ViolationKind = "invalid_state_access"
	// CorruptedUnionState marks dispatch over a fault union with no
	// active variant, or with a variant outside its closed schema.
	CorruptedUnionState ViolationKind = "corrupted_union_state"
)

// ContractViolation is the panic payload raised for programmer-contract
// misuse. Domain failures never use it; they travel as ordinary failure
// values inside a Result.
type ContractViolation struct {
	// Kind is the contract that was broken.
	Kind ViolationKind
	// Op names the operation that detected the violation.
	Op string
	// Detail describes the concrete misuse.
	Detail string
}

var _ error = (*ContractViolation)(nil)

func (v *ContractViolation) Error() string {
	if v.Detail == "" {
		return fmt.Sprintf("%s: contract violation: %s", v.Op, v.Kind)
	}
	return fmt.Sprintf("%s: contract violation: %s: %s", v.Op, v.Kind, v.Detail)
}

// Violate panics with a *ContractViolation. It is the single fatal channel
// for misuse of this module's APIs.
func Violate(kind ViolationKind, op, detail string) {
	panic(&ContractViolation{Kind: kind, Op: op, Detail: detail})
}

// AsContractViolation extracts a *ContractViolation from a recovered panic
// value. The second return is false for any other panic payload.
func AsContractViolation(r any) (*ContractViolation, bool) {
	cv, ok := r.(*ContractViolation)
	return cv, ok
}
