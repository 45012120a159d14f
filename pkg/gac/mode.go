package gac

import "fmt"

// Mode selects the adaptive iteration strategy the propagator uses when
// walking a variable's domain versus the complement of unvisited values
// (spec §4.3.3). It mirrors the teacher's enum-of-constants style for
// VariableOrderingHeuristic/ValueOrderingHeuristic in fd.go, generalized
// to the four modes spec §6 names for the `-ad` CLI flag.
type Mode int

const (
	// AC_CLASSIC always iterates a variable's own domain.
	AC_CLASSIC Mode = iota
	// AC_COMPLEMENT always iterates the unvisited-values tracking list.
	AC_COMPLEMENT
	// AC_PARTIAL picks classic iff the domain is smaller than the
	// unvisited-values list (or its pruning-phase analogue), per call site.
	AC_PARTIAL
	// AC_TUNED refines PARTIAL for DFS: classic iff the domain is smaller
	// than the square root of the unvisited-values list, reflecting that a
	// DFS step amortizes differently than a BFS or prune step (spec
	// §4.3.3 "Adaptive choice").
	AC_TUNED
)

// String renders the mode using the CLI/constructor spelling from spec §6.
func (m Mode) String() string {
	switch m {
	case AC_CLASSIC:
		return "AC_CLASSIC"
	case AC_COMPLEMENT:
		return "AC_COMPLEMENT"
	case AC_PARTIAL:
		return "AC_PARTIAL"
	case AC_TUNED:
		return "AC_TUNED"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses one of the four mode spellings accepted by the `-ad`
// CLI flag (spec §6). It is the propagator's only configuration surface
// beyond the variable array and cause token, per SPEC_FULL.md's
// Configuration section.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "AC_CLASSIC":
		return AC_CLASSIC, nil
	case "AC_COMPLEMENT":
		return AC_COMPLEMENT, nil
	case "AC_PARTIAL":
		return AC_PARTIAL, nil
	case "AC_TUNED":
		return AC_TUNED, nil
	default:
		return 0, fmt.Errorf("gac: unknown mode %q (want one of AC_CLASSIC, AC_COMPLEMENT, AC_PARTIAL, AC_TUNED)", s)
	}
}

// isqrt is an integer square root used by AC_TUNED's DFS threshold
// (spec §4.3.3: classic iff |D(u)| < sqrt(|valuesDynamic|)).
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// classicForBFS decides the per-variable iteration mode for the BFS
// augmenting-path search (spec §4.3.2).
func classicForBFS(mode Mode, domSize, unvisitedSize int) bool {
	switch mode {
	case AC_CLASSIC:
		return true
	case AC_COMPLEMENT:
		return false
	case AC_PARTIAL, AC_TUNED:
		return domSize < unvisitedSize
	default:
		return true
	}
}

// classicForDFS decides the per-variable iteration mode inside the Tarjan
// SCC DFS (spec §4.3.3).
func classicForDFS(mode Mode, domSize, unvisitedSize int) bool {
	switch mode {
	case AC_CLASSIC:
		return true
	case AC_COMPLEMENT:
		return false
	case AC_PARTIAL:
		return domSize < unvisitedSize
	case AC_TUNED:
		return domSize < isqrt(unvisitedSize)
	default:
		return true
	}
}

// classicForPrune decides the per-variable iteration mode for removing
// out-of-SCC values from a variable's domain during pruning (spec
// §4.3.4's choicePrune).
func classicForPrune(mode Mode, domSize, complementSize int) bool {
	switch mode {
	case AC_CLASSIC:
		return true
	case AC_COMPLEMENT:
		return false
	case AC_PARTIAL, AC_TUNED:
		return domSize < complementSize
	default:
		return true
	}
}
