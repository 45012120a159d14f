package gac

// closing shrinks the tracking-list universes after a successful filter
// (spec §4.3.5): values that survived the whole pruning traversal without
// ever being visited are reachable from no domain and can be dropped for
// good; variables that became instantiated during this call (and the
// value they settled on) likewise leave the working universes. Every
// shrink goes through the backtrack-safe overload so search can undo it.
func (p *Propagator) closing() {
	var dead []int
	for v := p.valuesDynamic.GetNext(p.valuesDynamic.GetSource()); v != p.valuesDynamic.GetSink(); v = p.valuesDynamic.GetNext(v) {
		dead = append(dead, v)
	}
	// Refill before shrinking the universe: RemoveFromUniverse requires
	// the in-list to equal the universe, which it does not after a
	// traversal leaves some values "visited" (removed from the in-list,
	// not yet restored).
	p.valuesDynamic.Refill()
	for _, v := range dead {
		p.valuesDynamic.RemoveFromUniverseEnv(v, p.env)
	}

	p.complementSCC.Refill()
	for _, v := range dead {
		p.complementSCC.RemoveFromUniverseEnv(v, p.env)
	}

	var instantiated []int
	for vi := p.variablesDynamic.GetNext(p.variablesDynamic.GetSource()); vi != p.variablesDynamic.GetSink(); vi = p.variablesDynamic.GetNext(vi) {
		if p.vars[vi].IsInstantiated() {
			instantiated = append(instantiated, vi)
		}
	}
	for _, vi := range instantiated {
		p.variablesDynamic.RemoveFromUniverseEnv(vi, p.env)
		val := p.vars[vi].Value()
		if p.valuesDynamic.IsPresent(val) {
			p.valuesDynamic.RemoveFromUniverseEnv(val, p.env)
		}
		if p.complementSCC.IsPresent(val) {
			p.complementSCC.RemoveFromUniverseEnv(val, p.env)
		}
	}
}
