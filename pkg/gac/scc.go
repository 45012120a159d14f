package gac

// pruneViaSCC computes strongly connected components of the residual
// graph via a Tarjan-style DFS rooted at each value matched to a variable
// still in variablesDynamic, and removes every variable→value edge whose
// endpoints fall in different SCCs (spec §4.3.3).
func (p *Propagator) pruneViaSCC() (bool, error) {
	p.valuesDynamic.Refill()
	p.anyPruned = false
	p.numVisit = 0
	for i := range p.pre {
		p.pre[i] = 0
		p.low[i] = 0
		p.inStack[i] = false
	}
	p.tarjanStack = p.tarjanStack[:0]

	for vi := p.variablesDynamic.GetNext(p.variablesDynamic.GetSource()); vi != p.variablesDynamic.GetSink(); vi = p.variablesDynamic.GetNext(vi) {
		w := p.matching.MatchU(vi)
		if w == UNMATCHED {
			continue
		}
		if !p.valuesDynamic.IsPresent(w) {
			continue // already visited via another variable's traversal
		}
		p.enterValue(w)
		if err := p.dfsVisit(vi); err != nil {
			p.valuesDynamic.Refill()
			p.complementSCC.Refill()
			return p.anyPruned, err
		}
	}
	return p.anyPruned, nil
}

// enterValue marks v as visited: assigns pre/low, removes it from the
// unvisited-values list, and pushes it onto the Tarjan stack.
func (p *Propagator) enterValue(v int) {
	idx := p.vidx(v)
	p.pre[idx] = p.numVisit
	p.low[idx] = p.numVisit
	p.numVisit++
	p.valuesDynamic.Remove(v)
	p.tarjanStack = append(p.tarjanStack, idx)
	p.inStack[idx] = true
}

// dfsVisit explores the domain edges of the variable u matched to the
// value just entered, in classic or complemented mode per the propagator's
// adaptive choice, then checks whether matchU(u) is an SCC root.
func (p *Propagator) dfsVisit(u int) error {
	uv := p.vars[u]
	matchedVal := p.matching.MatchU(u)
	mu := p.vidx(matchedVal)

	classic := classicForDFS(p.mode, uv.DomainSize(), p.valuesDynamic.GetSize())

	if classic {
		err := iterateDomainAscending(uv, func(w int) (bool, error) {
			if w == matchedVal {
				return false, nil
			}
			if p.valuesDynamic.IsPresent(w) {
				if err := p.process(u, w); err != nil {
					return false, err
				}
				return false, nil
			}
			widx := p.vidx(w)
			if p.inStack[widx] && p.pre[widx] < p.low[mu] {
				p.low[mu] = p.pre[widx]
			}
			return false, nil
		})
		if err != nil {
			return err
		}
	} else {
		cur := p.valuesDynamic.TrackLeft(uv.LB() - 1)
		for {
			cur = p.valuesDynamic.GetNext(cur)
			if cur == p.valuesDynamic.GetSink() || cur > uv.UB() {
				break
			}
			if cur == matchedVal || !uv.Contains(cur) {
				continue
			}
			if err := p.process(u, cur); err != nil {
				return err
			}
			// process may recurse arbitrarily deep, and a nested
			// dfsVisit can visit (and prune can close out) the very value
			// cur's frozen successor pointer still names, removing it from
			// valuesDynamic after cur was. Raw GetNext(cur) would replay
			// that stale, already-visited value
			// and trip Remove's precondition on re-entry. Re-anchoring with
			// TrackLeft walks back through any such closed run to the
			// nearest still-present predecessor, so the next GetNext
			// resumes at the true next live value.
			cur = p.valuesDynamic.TrackLeft(cur)
		}
		// Back-edges to already-visited-but-skipped domain values are
		// recovered from the Tarjan stack rather than by re-walking the
		// domain: scan from the bottom (oldest) for the first entry
		// either in u's domain or already known to reach as far back as
		// our current low-link, and fold it in.
		for i := 0; i < len(p.tarjanStack); i++ {
			sIdx := p.tarjanStack[i]
			if uv.Contains(p.elemFromIdx(sIdx)) || p.pre[sIdx] >= p.low[mu] {
				if p.pre[sIdx] < p.low[mu] {
					p.low[mu] = p.pre[sIdx]
				}
				break
			}
		}
	}

	if p.pre[mu] == p.low[mu] {
		return p.prune(mu)
	}
	return nil
}

// process handles the domain edge u->w where w is still unvisited
// (spec §4.3.3 "process(u,w)").
func (p *Propagator) process(u, w int) error {
	if p.matching.IsMatchedV(w) {
		p.enterValue(w)
		u2 := p.matching.MatchV(w)
		if err := p.dfsVisit(u2); err != nil {
			return err
		}
		mu := p.vidx(p.matching.MatchU(u))
		widx := p.vidx(w)
		if p.low[widx] < p.low[mu] {
			p.low[mu] = p.low[widx]
		}
		return nil
	}

	// w is unmatched: it is adjacent only to the sentinel t_node sink, so
	// its low-link is trivially 0.
	widx := p.vidx(w)
	p.pre[widx] = p.numVisit
	p.numVisit++
	p.low[widx] = 0
	p.inStack[widx] = true
	p.tarjanStack = append(p.tarjanStack, widx)
	p.valuesDynamic.Remove(w)
	mu := p.vidx(p.matching.MatchU(u))
	p.low[mu] = 0
	return nil
}

// prune pops the just-discovered SCC off the Tarjan stack down to root
// (inclusive) and removes every prunable edge it implies (spec §4.3.4).
//
// complementSCC is refilled to the full value universe at the very top of
// every call, not just once per Propagate call: by the time the *next*
// SCC is discovered, a previous call to prune has left complementSCC with
// that earlier SCC's values removed, so without this refill the complement
// computed here would be wrong (spec §9 design note 4).
//
// A singleton SCC always instantiates its variable. The multi-value
// pruning pass is skipped only for the *first* SCC discovered during this
// Propagate call, of any size, so a leading singleton SCC uses up the skip
// (the Bimodal variant's behavior), not whenever there
// turns out to be a single SCC overall (the Hybrid variant's behavior,
// which this propagator does not implement) — spec §9 Open Question 1
// flags these as materially different and leaves the choice to the
// implementer; this is the Bimodal choice.
func (p *Propagator) prune(root int) error {
	p.complementSCC.Refill()

	var s []int
	for {
		n := len(p.tarjanStack)
		top := p.tarjanStack[n-1]
		p.tarjanStack = p.tarjanStack[:n-1]
		p.inStack[top] = false
		s = append(s, top)
		p.complementSCC.Remove(p.elemFromIdx(top))
		if top == root {
			break
		}
	}
	p.stats.SCCCount++

	if len(s) == 1 {
		w := p.elemFromIdx(s[0])
		// A singleton SCC's value must be matched: an unmatched value
		// shares t_node's SCC (low=0 chains it to every free value), so
		// it can never be alone here.
		vi := p.matching.MatchV(w)
		p.firstSCC = false
		changed, err := p.vars[vi].InstantiateTo(w)
		if err != nil {
			return err
		}
		if changed {
			p.anyPruned = true
		}
		return nil
	}

	if p.firstSCC {
		p.firstSCC = false
		return nil
	}

	minS, maxS := p.elemFromIdx(s[0]), p.elemFromIdx(s[0])
	for _, idx := range s[1:] {
		v := p.elemFromIdx(idx)
		if v < minS {
			minS = v
		}
		if v > maxS {
			maxS = v
		}
	}

	for _, idx := range s {
		val := p.elemFromIdx(idx)
		if !p.matching.IsMatchedV(val) {
			continue
		}
		vi := p.matching.MatchV(val)
		v := p.vars[vi]

		if changed, err := v.UpdateBounds(minS, maxS); err != nil {
			return err
		} else if changed {
			p.anyPruned = true
		}

		if v.DomainSize() > 1 {
			changed, err := p.removeOutOfSCC(v)
			if err != nil {
				return err
			}
			if changed {
				p.anyPruned = true
			}
		}
	}
	return nil
}

// removeOutOfSCC removes every value from v's domain that is not in the
// just-found SCC, choosing classic or complemented iteration per
// classicForPrune (spec §4.3.4 "choicePrune"). Candidates are collected
// before mutating the domain: both iteration styles read from structures
// (v's own domain, or complementSCC) that a RemoveValue call in the same
// pass would otherwise invalidate mid-walk.
func (p *Propagator) removeOutOfSCC(v Variable) (bool, error) {
	classic := classicForPrune(p.mode, v.DomainSize(), p.complementSCC.GetSize())

	var toRemove []int
	if classic {
		err := iterateDomainAscending(v, func(w int) (bool, error) {
			if p.complementSCC.IsPresent(w) {
				toRemove = append(toRemove, w)
			}
			return false, nil
		})
		if err != nil {
			return false, err
		}
	} else {
		for w := p.complementSCC.GetNext(p.complementSCC.GetSource()); w != p.complementSCC.GetSink(); w = p.complementSCC.GetNext(w) {
			if v.Contains(w) {
				toRemove = append(toRemove, w)
			}
		}
	}

	changed := false
	for _, w := range toRemove {
		ch, err := v.RemoveValue(w)
		if err != nil {
			return changed, err
		}
		if ch {
			changed = true
			p.stats.PrunedValues++
		}
	}
	return changed, nil
}
