package grab

// FingerSnapshot is what the quorum evaluator reads for the current tick.
type FingerSnapshot interface {
	IsGrabbing(f FingerIndex) bool
	// ChangedTo reports whether the finger's grabbing flag flipped to target on the most recent update.
	ChangedTo(f FingerIndex, target bool) bool
	GrabScore(f FingerIndex) float64
}

// FingerSignalSource produces per-finger grab signals for one channel. Update must be called
// exactly once per hand tick, before any evaluator call for that tick.
type FingerSignalSource interface {
	FingerSnapshot

	WristOffsetLocal() Vector3
	Update(pose HandPose)
}

// HandPose is the hand data of one tracking tick. Positions are wrist-local and unscaled.
type HandPose struct {
	// Wrist is the wrist root in world space, nil while the tracker has none.
	Wrist *Pose
	Scale float64

	FingerTips [FingerCount]Vector3
	PalmCenter Vector3

	PinchStrength [FingerCount]float64
	CurlStrength  [FingerCount]float64
}
