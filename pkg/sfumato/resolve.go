package sfumato

// Direction identifies which half of a visibility change is animating.
type Direction int

const (
	// Insertion animates an element from hidden to visible.
	Insertion Direction = iota
	// Removal animates an element from visible to hidden.
	Removal
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Insertion:
		return "insertion"
	case Removal:
		return "removal"
	default:
		return ""
	}
}

// VisualParams holds the resolved visual state of an element at one
// instant of a transition. DX and DY are fractions of the element's own
// bounding box; the host renderer multiplies them by the element's
// rendered width and height.
type VisualParams struct {
	Opacity         float64 // 0 fully transparent, 1 fully opaque
	DX              float64 // horizontal displacement, element widths
	DY              float64 // vertical displacement, element heights
	ScaleFactor     float64 // 1 natural size
	RotationDegrees float64 // 0 resting orientation
}

// IdentityParams returns the visual parameters of an element at rest:
// fully opaque, unmoved, unscaled, unrotated.
func IdentityParams() VisualParams {
	return VisualParams{Opacity: 1, ScaleFactor: 1}
}

// Resolve evaluates a transition at one instant of an animation.
//
// Progress runs from 0 to 1 over the animation and is clamped to that
// range. For Insertion, progress 0 is the fully hidden pose and 1 is the
// identity pose; for Removal the endpoints are reversed. An asymmetric
// transition resolves only the side matching dir; a side that is itself
// asymmetric unwraps the same way, so any transition may serve as
// either side of an asymmetric pair.
//
// Composite transitions combine their component effects by multiplying
// opacities and scale factors and summing displacements and rotations.
// Resolve is pure: the same inputs always yield the same parameters.
func Resolve(t Transition, dir Direction, progress float64) VisualParams {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}

	// hidden is the fraction of the way toward the fully hidden pose.
	hidden := 1 - progress
	if dir == Removal {
		hidden = progress
	}

	side := t.side(dir)
	for side.IsAsymmetric() {
		side = side.side(dir)
	}

	params := IdentityParams()
	for _, e := range side.effects {
		pose := lerpParams(IdentityParams(), e.hiddenPose(), hidden)
		params.Opacity *= pose.Opacity
		params.ScaleFactor *= pose.ScaleFactor
		params.DX += pose.DX
		params.DY += pose.DY
		params.RotationDegrees += pose.RotationDegrees
	}
	return params
}

func lerpParams(from, to VisualParams, t float64) VisualParams {
	return VisualParams{
		Opacity:         lerp(from.Opacity, to.Opacity, t),
		DX:              lerp(from.DX, to.DX, t),
		DY:              lerp(from.DY, to.DY, t),
		ScaleFactor:     lerp(from.ScaleFactor, to.ScaleFactor, t),
		RotationDegrees: lerp(from.RotationDegrees, to.RotationDegrees, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
