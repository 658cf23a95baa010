// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Full-scale reciprocals used to normalise signed integer PCM into [-1, 1].
// The positive maximum is used so that the largest positive sample maps to 1.0.
const (
	Int16Max = 1<<15 - 1
	Int24Max = 1<<23 - 1

	int16ToFloat float32 = 1.0 / Int16Max
	int24ToFloat float32 = 1.0 / Int24Max
)

// Int16ToFloat32 scales a signed 16-bit sample by 1/32767.
func Int16ToFloat32(v int32) float32 {
	return float32(v) * int16ToFloat
}

// Int24ToFloat32 scales a signed 24-bit sample by 1/8388607.
func Int24ToFloat32(v int32) float32 {
	return float32(v) * int24ToFloat
}

// Float32ToInt16 clamps x to [-1, 1] and scales it back to 16-bit PCM,
// rounding to the nearest value so Int16ToFloat32 round trips exactly.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(math.Round(float64(x) * Int16Max))
}
