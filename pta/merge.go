package pta

// Merge is the staged result of a successful TryMerge: the set of
// identifications (a PTA state that ceases to be separately reachable,
// mapped to the state it was folded into) and the new transitions red
// states gain by adopting a blue subtree wholesale. It is a pure staging
// object: computing it never mutates the PTA.
type Merge[S comparable] struct {
	red       StateID
	identify  map[StateID]StateID
	retargets []retarget
	labels    map[StateID]Label
}

type retarget struct {
	state StateID
	sym   int
	tgt   StateID
}

// TryMerge computes a partial fold identifying qb with qr, propagating
// determinization: whenever two states are identified and both define a
// transition on the same symbol, their targets are identified too; a
// symbol only qb's side defines is grafted onto the red side wholesale.
// Returns nil if any pair of identified states carries conflicting
// labels — not an error, just "no valid merge". An identified pair where
// only one side is labeled carries that label onto the red representative
// (via Merge.labels, applied in Apply), so a folded Accept/Reject leaf is
// never silently lost.
func (t *Tree[S]) TryMerge(qr, qb StateID) *Merge[S] {
	identify := map[StateID]StateID{qb: qr}
	var retargets []retarget
	labels := make(map[StateID]Label)

	type pair struct{ r, b StateID }
	queue := []pair{{qr, qb}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		rs, bs := &t.states[p.r], &t.states[p.b]

		if rs.label != Unlabeled && bs.label != Unlabeled && rs.label != bs.label {
			return nil
		}
		resolved := rs.label
		if resolved == Unlabeled {
			resolved = bs.label
		}
		if resolved != Unlabeled {
			if prior, ok := labels[p.r]; ok && prior != resolved {
				return nil
			}
			labels[p.r] = resolved
		}

		n := len(rs.trans)
		for sym := 0; sym < n; sym++ {
			bt := bs.trans[sym]
			if bt == InvalidState {
				continue
			}
			rt := rs.trans[sym]
			if rt == InvalidState {
				retargets = append(retargets, retarget{state: p.r, sym: sym, tgt: bt})
				continue
			}
			if _, already := identify[bt]; already {
				continue
			}
			identify[bt] = rt
			queue = append(queue, pair{rt, bt})
		}
	}

	return &Merge[S]{red: qr, identify: identify, retargets: retargets, labels: labels}
}

// Apply commits a staged Merge: redirects every identified state's parent
// transition to its canonical target, grafts the retargeted subtrees onto
// their new red parents, and re-colors the red root's newly reachable
// non-red successors as blue.
func (t *Tree[S]) Apply(m *Merge[S]) []StateID {
	for s, target := range m.identify {
		parent := t.states[s].parent
		if parent == InvalidState {
			continue // s was the PTA root itself; cannot happen for a blue state
		}
		t.states[parent].trans[t.states[s].parentSym] = target
	}
	for _, r := range m.retargets {
		t.states[r.state].trans[r.sym] = r.tgt
	}
	for rep, label := range m.labels {
		t.states[rep].label = label
	}

	var newBlue []StateID
	seen := make(map[StateID]bool)
	var walk func(StateID)
	walk = func(s StateID) {
		if seen[s] {
			return
		}
		seen[s] = true
		st := &t.states[s]
		if st.color != Red {
			if st.color == None {
				st.color = Blue
				newBlue = append(newBlue, s)
			}
			return
		}
		for _, c := range st.trans {
			if c != InvalidState {
				walk(c)
			}
		}
	}
	walk(m.red)
	return newBlue
}
