package grab

type stubSnapshot struct {
	prev   FingerBitset
	cur    FingerBitset
	scores [FingerCount]float64

	reads FingerBitset
}

func newStubSnapshot(prev, cur FingerBitset) *stubSnapshot {
	return &stubSnapshot{prev: prev, cur: cur}
}

func (s *stubSnapshot) IsGrabbing(f FingerIndex) bool {
	s.reads = s.reads.With(f)

	return s.cur.Has(f)
}

func (s *stubSnapshot) ChangedTo(f FingerIndex, target bool) bool {
	s.reads = s.reads.With(f)

	return s.prev.Has(f) != s.cur.Has(f) && s.cur.Has(f) == target
}

func (s *stubSnapshot) GrabScore(f FingerIndex) float64 {
	s.reads = s.reads.With(f)

	return s.scores[f]
}

func allRules() []GrabbingRule {
	rules := make([]GrabbingRule, 0, 486)

	requirements := []FingerRequirement{RequirementIgnored, RequirementOptional, RequirementRequired}

	for _, mode := range []FingerUnselectMode{UnselectAllReleased, UnselectAnyReleased} {
		for n := 0; n < 243; n++ {
			var rule GrabbingRule

			rule.unselectMode = mode

			v := n
			for _, f := range Fingers {
				rule.requirements[f] = requirements[v%3]
				v /= 3
			}

			rules = append(rules, rule)
		}
	}

	return rules
}

func allMasks() []FingerBitset {
	masks := make([]FingerBitset, 0, int(AllFingersMask)+1)

	for m := EmptyMask; m <= AllFingersMask; m++ {
		masks = append(masks, m)
	}

	return masks
}
