package gac

// repairMatching extends the current matching to a maximum one, one
// unmatched variable at a time, by BFS augmenting-path search (spec
// §4.3.2). Between variables, valuesDynamic is refilled rather than
// reconstructed; its removed-stack doubles as the BFS-visited marker set.
func (p *Propagator) repairMatching() error {
	for vi := p.variablesDynamic.GetNext(p.variablesDynamic.GetSource()); vi != p.variablesDynamic.GetSink(); vi = p.variablesDynamic.GetNext(vi) {
		if p.matching.IsMatchedU(vi) {
			continue
		}
		p.valuesDynamic.Refill()
		w, found := p.augmentingPath(vi)
		if !found {
			// The working list must be refilled before raising so the
			// persistent TrackingList is never left mid-traversal across
			// a contradiction; the universe itself is backtrack-managed
			// separately and unaffected by this call.
			p.valuesDynamic.Refill()
			return contradictionf("all different: no augmenting path for variable %d", vi)
		}
		p.augmentMatching(w)
		p.stats.BFSAugmentations++
	}
	return nil
}

// augmentingPath runs a BFS rooted at root over the residual graph,
// treating values as frontier nodes and variables as the queue's payload.
// It returns the endpoint value of an augmenting path, if one exists.
func (p *Propagator) augmentingPath(root int) (int, bool) {
	p.bfsQueue = p.bfsQueue[:0]
	p.bfsQueue = append(p.bfsQueue, root)

	for len(p.bfsQueue) > 0 {
		u := p.bfsQueue[0]
		p.bfsQueue = p.bfsQueue[1:]
		uv := p.vars[u]

		classic := classicForBFS(p.mode, uv.DomainSize(), p.valuesDynamic.GetSize())

		var foundW int
		found := false
		stop := func(w int) bool {
			p.parentBFS[p.vidx(w)] = u
			if p.matching.IsMatchedV(w) {
				p.valuesDynamic.Remove(w)
				p.bfsQueue = append(p.bfsQueue, p.matching.MatchV(w))
				return false
			}
			foundW = w
			return true
		}

		if classic {
			_ = iterateDomainAscending(uv, func(w int) (bool, error) {
				if p.valuesDynamic.IsPresent(w) && stop(w) {
					found = true
					return true, nil
				}
				return false, nil
			})
		} else {
			for w := p.valuesDynamic.GetNext(p.valuesDynamic.GetSource()); w != p.valuesDynamic.GetSink(); w = p.valuesDynamic.GetNext(w) {
				if uv.Contains(w) && stop(w) {
					found = true
					break
				}
			}
		}

		if found {
			return foundW, true
		}
	}
	return 0, false
}

// augmentMatching flips the alternating path ending at w, walking
// backwards through parentBFS and the matching predecessors it displaced
// (spec §4.3.2 step 3).
func (p *Propagator) augmentMatching(w int) {
	current := w
	for {
		u := p.parentBFS[p.vidx(current)]
		prevMatch := UNMATCHED
		if p.matching.IsMatchedU(u) {
			prevMatch = p.matching.MatchU(u)
			p.matching.UnMatch(u, prevMatch)
		}
		p.matching.SetMatch(u, current)
		if prevMatch == UNMATCHED {
			return
		}
		current = prevMatch
	}
}
