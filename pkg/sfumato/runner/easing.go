package runner

// EasingFunc remaps linear animation progress in [0,1] to eased
// progress in [0,1]. An easing function must be monotonic and fix the
// endpoints: f(0) = 0 and f(1) = 1.
type EasingFunc func(t float64) float64

// Linear leaves progress unchanged.
func Linear(t float64) float64 {
	return t
}

// EaseInQuad starts slow and accelerates.
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad starts fast and decelerates.
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// EaseInOutCubic accelerates through the first half and decelerates
// through the second.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}

// progressForEased finds the progress value p with f(p) = eased. The
// caller's guess is taken when it already lands on the curve, which the
// mirrored progress does for easings point-symmetric about 0.5;
// otherwise the monotonic curve is inverted by bisection.
func progressForEased(f EasingFunc, eased, guess float64) float64 {
	if f(guess) == eased {
		return guess
	}

	lo, hi := 0.0, 1.0
	for i := 0; i < 48; i++ {
		mid := (lo + hi) / 2
		if f(mid) < eased {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
