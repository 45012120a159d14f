package gac

// Variable is the external integer-domain variable collaborator consumed by
// the propagator. Implementations own their domain representation; the
// propagator never reaches inside a Variable beyond this interface.
//
// Narrowing operations (RemoveValue, UpdateBounds, InstantiateTo) return
// whether the domain actually changed, and must signal contradiction (by
// returning an error satisfying errors.Is(err, ErrContradiction)) if the
// domain becomes empty or the requested narrowing is otherwise
// inconsistent. A Variable implementation is responsible for its own
// backtrack registration for these narrowings; the propagator only
// registers undo closures for the tracking-list universes it owns
// (spec §3, §4.3.5).
type Variable interface {
	// Index returns this variable's position in [0,R) within the
	// propagator's variable array.
	Index() int

	// LB and UB return the current lower and upper bound of the domain.
	// Both must themselves be domain members (the smallest/largest values
	// currently present) — the propagator's ascending domain walks start
	// at LB() and rely on it being a value, not merely a floor.
	LB() int
	UB() int

	// DomainSize returns |D(i)|.
	DomainSize() int

	// Contains reports whether v is currently in the domain.
	Contains(v int) bool

	// NextValue returns the smallest value in the domain strictly greater
	// than v, or false if none exists. Used for ascending-order domain
	// walks in classic-mode iteration.
	NextValue(v int) (int, bool)

	// IsInstantiated reports whether the domain is a singleton.
	IsInstantiated() bool

	// Value returns the unique domain value. Only valid when IsInstantiated.
	Value() int

	// RemoveValue removes v from the domain. Returns whether the domain
	// changed, and a contradiction error if the domain becomes empty.
	RemoveValue(v int) (bool, error)

	// UpdateBounds narrows the domain to [lo,hi]. Returns whether the
	// domain changed, and a contradiction error if the result is empty.
	UpdateBounds(lo, hi int) (bool, error)

	// InstantiateTo narrows the domain to the singleton {v}. Returns
	// whether the domain changed, and a contradiction error if v is not
	// currently in the domain.
	InstantiateTo(v int) (bool, error)
}
