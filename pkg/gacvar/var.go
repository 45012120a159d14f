package gacvar

import (
	"fmt"

	"github.com/gitrdm/gacdiff/pkg/gac"
)

// Var is a concrete gac.Variable backed by a Domain bitset, with narrowing
// operations registering their own undo closures on the owning Store's
// trail — mirroring the teacher's FDStore.updateVar (fd.go), which clones
// the old BitSet into a trail entry before installing the new one, just
// with a closure in place of a tagged FDChange record.
type Var struct {
	index  int
	domain Domain
	store  *Store
}

// Index implements gac.Variable.
func (v *Var) Index() int { return v.index }

// LB implements gac.Variable.
func (v *Var) LB() int { return v.domain.Min() }

// UB implements gac.Variable.
func (v *Var) UB() int { return v.domain.Max() }

// DomainSize implements gac.Variable.
func (v *Var) DomainSize() int { return v.domain.Count() }

// Contains implements gac.Variable.
func (v *Var) Contains(val int) bool { return v.domain.Has(val) }

// NextValue implements gac.Variable.
func (v *Var) NextValue(val int) (int, bool) { return v.domain.Next(val) }

// IsInstantiated implements gac.Variable.
func (v *Var) IsInstantiated() bool { return v.domain.Count() == 1 }

// Value implements gac.Variable. Panics if not instantiated, matching the
// teacher's FDVar.Value (fd.go) precondition.
func (v *Var) Value() int {
	if v.domain.Count() != 1 {
		panic(fmt.Sprintf("gacvar: Value called on variable %d with domain size %d", v.index, v.domain.Count()))
	}
	return v.domain.Min()
}

// Domain returns a snapshot of the current domain, for inspection and tests.
func (v *Var) Domain() Domain { return v.domain.Clone() }

// pushUndo registers restoration of old as v's domain.
func (v *Var) pushUndo(old Domain) {
	v.store.env.Save(func() { v.domain = old })
}

// RemoveValue implements gac.Variable.
func (v *Var) RemoveValue(val int) (bool, error) {
	if !v.domain.Has(val) {
		return false, nil
	}
	old := v.domain
	v.pushUndo(old)
	nd := old.Clone()
	nd.removeBit(val)
	v.domain = nd
	if v.domain.Count() == 0 {
		return true, fmt.Errorf("gacvar: variable %d domain emptied removing %d: %w", v.index, val, gac.ErrContradiction)
	}
	return true, nil
}

// UpdateBounds implements gac.Variable.
func (v *Var) UpdateBounds(lo, hi int) (bool, error) {
	nd := v.domain.Clone()
	if !nd.restrictRange(lo, hi) {
		return false, nil
	}
	old := v.domain
	v.pushUndo(old)
	v.domain = nd
	if v.domain.Count() == 0 {
		return true, fmt.Errorf("gacvar: variable %d domain emptied restricting to [%d,%d]: %w", v.index, lo, hi, gac.ErrContradiction)
	}
	return true, nil
}

// InstantiateTo implements gac.Variable.
func (v *Var) InstantiateTo(val int) (bool, error) {
	if !v.domain.Has(val) {
		return false, fmt.Errorf("gacvar: variable %d cannot instantiate to %d, not in domain: %w", v.index, val, gac.ErrContradiction)
	}
	if v.domain.Count() == 1 {
		return false, nil
	}
	old := v.domain
	v.pushUndo(old)
	nd := old.Clone()
	nd.setSingleton(val)
	v.domain = nd
	return true, nil
}
