package gacvar

import "github.com/gitrdm/gacdiff/pkg/gac"

// Store owns a TrailEnvironment and the Vars allocated against it, mirroring
// the teacher's FDStore (fd.go) role as the single place that knows how to
// snapshot and undo domain changes — narrowed here to exactly what
// gac.Propagator needs from its Environment collaborator.
type Store struct {
	env  *gac.TrailEnvironment
	vars []*Var
}

// NewStore returns an empty store with a fresh trail.
func NewStore() *Store {
	return &Store{env: gac.NewTrailEnvironment()}
}

// Env returns the store's backtrack environment, for passing to gac.New.
func (s *Store) Env() gac.Environment { return s.env }

// Mark returns the current trail level, for later UndoTo.
func (s *Store) Mark() int { return s.env.Mark() }

// UndoTo restores every domain changed since level was marked.
func (s *Store) UndoTo(level int) { s.env.UndoTo(level) }

// NewVar allocates a variable with initial domain [lo,hi].
func (s *Store) NewVar(lo, hi int) *Var {
	v := &Var{index: len(s.vars), domain: NewDomain(lo, hi), store: s}
	s.vars = append(s.vars, v)
	return v
}

// NewVars allocates n variables, each with initial domain [lo,hi].
func (s *Store) NewVars(n, lo, hi int) []*Var {
	out := make([]*Var, n)
	for i := range out {
		out[i] = s.NewVar(lo, hi)
	}
	return out
}

// Vars returns every variable allocated by this store so far.
func (s *Store) Vars() []*Var { return s.vars }

// ToVariables adapts a []*Var to the []gac.Variable slice gac.New expects.
func ToVariables(vars []*Var) []gac.Variable {
	out := make([]gac.Variable, len(vars))
	for i, v := range vars {
		out[i] = v
	}
	return out
}
