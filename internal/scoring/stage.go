package scoring

// DevelopmentStage computes the stage scalar from the four stage-indicator
// sums. The result lies in [0,3): [0,1) when early work (planned + proposed)
// dominates, [1,2) when in-development work dominates, [2,3) when completed
// work dominates. A zero total scores exactly 0.
//
// The branch order is a cascading threshold decision: ties between the
// early, mid, and late ratios resolve toward the earliest applicable
// stage. Inverting the comparisons changes tie behavior, so the three
// branches are kept explicit.
func DevelopmentStage(planned, proposed, inDev, completed int) float64 {
	total := planned + proposed + inDev + completed
	if total == 0 {
		return 0
	}

	t := float64(total)
	early := float64(planned+proposed) / t
	mid := float64(inDev) / t
	late := float64(completed) / t

	switch {
	case early >= mid && early >= late:
		return (float64(planned)*0.5 + float64(proposed)*0.5) / t
	case mid >= late:
		return 1 + mid
	default:
		return 2 + late
	}
}
