package grab

// The evaluator walks fingers in index order and several branches return early. Which fingers
// get read on a call depends on that order, so the loops must stay sequential.

// IsSustainingGrab reports whether rule's composite grab holds on the current tick.
// Under AnyReleased every Required finger must be grabbing; under AllReleased one grabbing
// Required or Optional finger is enough.
func IsSustainingGrab(rule GrabbingRule, snapshot FingerSnapshot) bool {
	anyHolding := false

	for _, f := range Fingers {
		switch rule.requirements[f] {
		case RequirementRequired:
			grabbing := snapshot.IsGrabbing(f)
			anyHolding = anyHolding || grabbing

			if rule.unselectMode == UnselectAnyReleased && !grabbing {
				return false
			} else if rule.unselectMode == UnselectAllReleased && grabbing {
				return true
			}
		case RequirementOptional:
			anyHolding = anyHolding || snapshot.IsGrabbing(f)
		case RequirementIgnored:
		}
	}

	return anyHolding
}

// SelectTriggered reports whether the grab started on the current tick.
func SelectTriggered(rule GrabbingRule, snapshot FingerSnapshot) bool {
	selectsWithOptionals := rule.SelectsWithOptionals()
	anyRequiredJustStarted := false

	for _, f := range Fingers {
		switch rule.requirements[f] {
		case RequirementRequired:
			if !snapshot.IsGrabbing(f) {
				return false
			}

			if snapshot.ChangedTo(f, true) {
				anyRequiredJustStarted = true
			}
		case RequirementOptional:
			if selectsWithOptionals && snapshot.ChangedTo(f, true) {
				return true
			}
		case RequirementIgnored:
		}
	}

	return anyRequiredJustStarted
}

// UnselectTriggered reports whether a sustained grab ended on the current tick.
func UnselectTriggered(rule GrabbingRule, snapshot FingerSnapshot) bool {
	selectsWithOptionals := rule.SelectsWithOptionals()
	isAnyFingerActive := false
	anyStopped := false

	for _, f := range Fingers {
		switch rule.requirements[f] {
		case RequirementRequired:
			if snapshot.ChangedTo(f, false) {
				anyStopped = true

				if rule.unselectMode == UnselectAnyReleased {
					return true
				}
			}

			isAnyFingerActive = isAnyFingerActive || snapshot.IsGrabbing(f)
		case RequirementOptional:
			if snapshot.ChangedTo(f, false) {
				anyStopped = true

				if rule.unselectMode == UnselectAnyReleased && selectsWithOptionals {
					return true
				}
			}

			isAnyFingerActive = isAnyFingerActive || snapshot.IsGrabbing(f)
		case RequirementIgnored:
		}
	}

	return !isAnyFingerActive && anyStopped
}

// Score is how close rule is to grabbing, in [0,1]. Optional-only rules take the best optional
// finger, otherwise the weakest Required finger decides. With includeCurrentlyGrabbing false,
// fingers already grabbing are left out. A rule with nothing to inspect scores 0.
func Score(rule GrabbingRule, includeCurrentlyGrabbing bool, snapshot FingerSnapshot) float64 {
	requiredMin := 1.0
	optionalMax := 0.0
	anyRequired := false

	for _, f := range Fingers {
		requirement := rule.requirements[f]
		if requirement != RequirementRequired && requirement != RequirementOptional {
			continue
		}

		if !includeCurrentlyGrabbing && snapshot.IsGrabbing(f) {
			continue
		}

		score := snapshot.GrabScore(f)

		switch requirement {
		case RequirementRequired:
			anyRequired = true

			if score < requiredMin {
				requiredMin = score
			}
		case RequirementOptional:
			if score > optionalMax {
				optionalMax = score
			}
		}
	}

	if rule.SelectsWithOptionals() {
		return optionalMax
	}

	if anyRequired {
		return requiredMin
	}

	return 0
}
