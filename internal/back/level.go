package back

import "math"

// ComputeLevel returns the level reached with the given experience and the
// experience still needed to reach the next one.
// Reaching level L requires 50*L*(L+1) experience.
func ComputeLevel(experience int) (level, untilNextLevel int) {
	root := math.Sqrt(float64(2500 + 200*int64(experience)))
	level = int(math.Floor((root - 50) / 100))

	return level, 50*(level+1)*(level+2) - experience
}
