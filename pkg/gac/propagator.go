// Package gac implements generalized arc consistency (GAC) filtering for
// the AllDifferent constraint via a bimodal propagator: a bipartite
// matching repaired by BFS augmentation, and strongly connected
// components of the residual graph computed by a Tarjan-style DFS to
// identify prunable edges. Both traversals adaptively choose, per
// variable, between classic iteration (over the variable's domain) and
// complemented iteration (over the set of unvisited values).
//
// The propagator consumes two external collaborators it does not itself
// implement: Variable (the integer-domain variable interface) and
// Environment (the backtrack environment). A ready-to-use concrete
// Variable is provided in the sibling package pkg/gacvar for standalone
// use and testing.
package gac

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Stats reports lightweight operational counters accumulated over every
// Propagate call made on a Propagator so far (they are never reset), adapted from the teacher's SolverMonitor (fd_monitor.go) — operational
// visibility, not an explanation or proof of why a value was removed.
type Stats struct {
	BFSAugmentations int
	SCCCount         int
	PrunedValues     int
	Elapsed          time.Duration
}

// Options configures a Propagator at construction (spec §6: "Constructor
// takes the variable array, a cause token, and a mode string").
type Options struct {
	Mode   Mode
	Cause  any
	Logger *logrus.Logger
}

// discardLogger is used when Options.Logger is nil, so call sites never
// need a nil check.
var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(logrusDiscard{})
	return l
}()

type logrusDiscard struct{}

func (logrusDiscard) Write(p []byte) (int, error) { return len(p), nil }

// Propagator is the bimodal AllDifferent GAC filter (spec §3 "Propagator
// state", §4.3). It is constructed once per constraint instance and
// reused across repeated Propagate calls; all scratch buffers are sized
// once from the initial variable bounds.
type Propagator struct {
	vars  []Variable
	cause any
	mode  Mode
	env   Environment
	log   *logrus.Logger

	minValue, maxValue, d int
	tNode                 int

	variablesDynamic *TrackingList
	valuesDynamic    *TrackingList
	complementSCC    *TrackingList
	matching         *BipartiteMatching

	parentBFS []int
	bfsQueue  []int

	pre, low    []int
	inStack     []bool
	tarjanStack []int
	numVisit    int

	firstSCC  bool
	anyPruned bool

	stats Stats
}

// New constructs a Propagator over vars. minValue/maxValue are derived
// once from the union of the variables' initial bounds (spec §3); since
// domains only ever narrow thereafter, these bounds remain valid for the
// propagator's lifetime.
func New(vars []Variable, env Environment, opts Options) *Propagator {
	r := len(vars)
	if r == 0 {
		precondition("New", PreconditionOutOfRange, 0, 0)
	}
	minValue, maxValue := vars[0].LB(), vars[0].UB()
	for _, v := range vars[1:] {
		if v.LB() < minValue {
			minValue = v.LB()
		}
		if v.UB() > maxValue {
			maxValue = v.UB()
		}
	}
	d := maxValue - minValue + 1

	log := opts.Logger
	if log == nil {
		log = discardLogger
	}

	p := &Propagator{
		vars:  append([]Variable(nil), vars...),
		cause: opts.Cause,
		mode:  opts.Mode,
		env:   env,
		log:   log,

		minValue: minValue, maxValue: maxValue, d: d,
		tNode: minValue - 1,

		variablesDynamic: NewTrackingList(0, r-1),
		valuesDynamic:    NewTrackingList(minValue, maxValue),
		complementSCC:    NewTrackingList(minValue, maxValue),
		matching:         NewBipartiteMatching(0, r-1, minValue, maxValue),

		parentBFS: make([]int, d),
		pre:       make([]int, d),
		low:       make([]int, d),
		inStack:   make([]bool, d),
	}
	for i := range p.parentBFS {
		p.parentBFS[i] = UNMATCHED
	}
	return p
}

// Stats returns the counters accumulated across all Propagate calls so far.
func (p *Propagator) Stats() Stats { return p.stats }

// vidx converts a universe value to its 0-based scratch-array index.
func (p *Propagator) vidx(val int) int { return val - p.minValue }

// elemFromIdx is the inverse of vidx.
func (p *Propagator) elemFromIdx(idx int) int { return idx + p.minValue }

// iterateDomainAscending walks v's domain in ascending order starting
// from its lower bound, calling f for each member. f returns (stop, err);
// iteration halts early on either. Variable.LB()/UB() are assumed to
// return actual domain members (the smallest/largest values currently
// present), matching every concrete Variable in this repository.
func iterateDomainAscending(v Variable, f func(val int) (bool, error)) error {
	if v.DomainSize() == 0 {
		return nil
	}
	cur := v.LB()
	for {
		stop, err := f(cur)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		nxt, ok := v.NextValue(cur)
		if !ok {
			return nil
		}
		cur = nxt
	}
}

// Propagate is the propagator's single entry point (spec §6). It returns
// whether any domain changed, and a contradiction error if the current
// domains admit no complete matching.
func (p *Propagator) Propagate() (bool, error) {
	start := time.Now()
	defer func() { p.stats.Elapsed += time.Since(start) }()

	// Skipping pruning for only the *first* discovered SCC (as opposed to
	// skipping whenever there is a single SCC overall — the Hybrid
	// variant's behavior, not this one) is a fresh decision per call: see
	// the doc comment on prune.
	p.firstSCC = true

	p.opening()

	if err := p.repairMatching(); err != nil {
		return false, err
	}

	pruned, err := p.pruneViaSCC()
	if err != nil {
		return pruned, err
	}

	p.closing()

	p.log.WithFields(logrus.Fields{
		"mode":              p.mode,
		"cause":             p.cause,
		"pruned":            pruned,
		"bfs_augmentations": p.stats.BFSAugmentations,
		"scc_count":         p.stats.SCCCount,
	}).Debug("gac: propagate complete")

	return pruned, nil
}

// opening synchronizes the matching with variables that became
// instantiated, or whose match fell out of domain, since the last call
// (spec §4.3.1).
func (p *Propagator) opening() {
	for vi := p.variablesDynamic.GetNext(p.variablesDynamic.GetSource()); vi != p.variablesDynamic.GetSink(); vi = p.variablesDynamic.GetNext(vi) {
		v := p.vars[vi]
		if v.IsInstantiated() {
			val := v.Value()
			if p.matching.IsMatchedU(vi) {
				if cur := p.matching.MatchU(vi); cur != val {
					p.matching.UnMatch(vi, cur)
				}
			}
			if p.matching.IsMatchedV(val) {
				if curVar := p.matching.MatchV(val); curVar != vi {
					p.matching.UnMatch(curVar, val)
				}
			}
			if !p.matching.IsMatchedU(vi) {
				p.matching.SetMatch(vi, val)
			}
		} else if p.matching.IsMatchedU(vi) {
			val := p.matching.MatchU(vi)
			if !v.Contains(val) {
				p.matching.UnMatch(vi, val)
			}
		}
	}
}
