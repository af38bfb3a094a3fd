// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// InverseLerp возвращает t, при котором Lerp(from, to, t) == v
func InverseLerp(from, to, v float64) float64 {
	if to == from {
		return 0
	}
	return (v - from) / (to - from)
}

// Clamp ограничивает v диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt — Clamp для целых
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
