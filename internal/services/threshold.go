package services

// ThresholdGate decides whether a match score qualifies for a downstream
// interview offer. The boundary is inclusive: a score equal to the cutoff
// qualifies. Pure and total over all valid scores.
type ThresholdGate struct {
	cutoff float64
}

func NewThresholdGate(cutoff float64) ThresholdGate {
	return ThresholdGate{cutoff: cutoff}
}

func (g ThresholdGate) Qualifies(score float64) bool {
	return score >= g.cutoff
}

func (g ThresholdGate) Cutoff() float64 {
	return g.cutoff
}
