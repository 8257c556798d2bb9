package scale

import (
	"math"
	"strconv"
)

// Slider range
const (
	MinPosition = 0
	MaxPosition = 500
)

// Size bounds in kibibytes (1 KB .. 100 MB)
const (
	MinSizeKB = 1
	MaxSizeKB = 102400
)

// Exponent applied to the normalized position before interpolating in
// log-space. Fine-grained control at small sizes, coarse at large ones.
const curveExponent = 1.5

const kbPerMB = 1024

// ClampPosition clamps a slider position into [MinPosition, MaxPosition].
func ClampPosition(position int) int {
	if position < MinPosition {
		return MinPosition
	}
	if position > MaxPosition {
		return MaxPosition
	}
	return position
}

// SizeForPosition maps a linear slider position to a size limit in kibibytes.
// Positions outside the slider range are clamped first.
func SizeForPosition(position int) int {
	normalized := float64(ClampPosition(position)) / float64(MaxPosition)
	exponent := math.Pow(normalized, curveExponent)
	value := math.Exp(math.Log(MinSizeKB) + (math.Log(MaxSizeKB)-math.Log(MinSizeKB))*exponent)
	return int(math.Round(value))
}

// FormatSize renders a kibibyte count as "<n>kb" below one mebibyte, else
// "<n>mb" rounded to the nearest whole mebibyte.
func FormatSize(sizeKB int) string {
	if sizeKB < kbPerMB {
		return strconv.Itoa(sizeKB) + "kb"
	}
	return strconv.Itoa(int(math.Round(float64(sizeKB)/kbPerMB))) + "mb"
}

// FillPercent returns the visual fill for a slider position as a percentage
// of the full track.
func FillPercent(position int) float64 {
	return float64(ClampPosition(position)) / float64(MaxPosition) * 100
}
