package gac

import "fmt"

// ErrContradiction is the sentinel returned (wrapped with context) whenever
// a propagation step proves the current set of domains infeasible: the
// matching cannot be extended to cover every variable, or a narrowing
// operation on a Variable empties its domain. Callers test for it with
// errors.Is(err, gac.ErrContradiction).
var ErrContradiction = fmt.Errorf("gac: contradiction")

// contradictionf wraps ErrContradiction with operation-specific context.
func contradictionf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrContradiction)...)
}

// PreconditionKind identifies which precondition a caller violated.
type PreconditionKind int

const (
	// PreconditionMatchedEndpoint: setMatch called with an already-matched u or v.
	PreconditionMatchedEndpoint PreconditionKind = iota
	// PreconditionUnmatchedPair: unMatch called on a pair that isn't matched.
	PreconditionUnmatchedPair
	// PreconditionNotInList: remove called on an element absent from the in-list.
	PreconditionNotInList
	// PreconditionSourceOrSink: remove called on the source or sink node.
	PreconditionSourceOrSink
	// PreconditionUniverseNotSettled: removeFromUniverse called while the
	// in-list does not equal the universe (stackRemoved is non-empty).
	PreconditionUniverseNotSettled
	// PreconditionOutOfRange: an element outside the declared universe was named.
	PreconditionOutOfRange
)

func (k PreconditionKind) String() string {
	switch k {
	case PreconditionMatchedEndpoint:
		return "matched endpoint"
	case PreconditionUnmatchedPair:
		return "unmatched pair"
	case PreconditionNotInList:
		return "element not in list"
	case PreconditionSourceOrSink:
		return "source or sink"
	case PreconditionUniverseNotSettled:
		return "universe not settled"
	case PreconditionOutOfRange:
		return "element out of range"
	default:
		return "unknown precondition"
	}
}

// PreconditionError reports misuse of BipartiteMatching or TrackingList:
// a programming error per spec category 2, never a data-dependent failure.
// Operations that detect one of these always panic with a *PreconditionError
// rather than returning an error value, since a search engine has no
// sensible way to backtrack out of a bug in its own propagator.
type PreconditionError struct {
	Kind PreconditionKind
	Op   string
	A, B int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("gac: precondition violated in %s: %s (a=%d b=%d)", e.Op, e.Kind, e.A, e.B)
}

func precondition(op string, kind PreconditionKind, a, b int) {
	panic(&PreconditionError{Kind: kind, Op: op, A: a, B: b})
}
