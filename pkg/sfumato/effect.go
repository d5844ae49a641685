package sfumato

// Edge identifies the side of the visible canvas an element moves
// across when entering or leaving.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeading
	EdgeTrailing
)

// String returns a string representation of the edge.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeading:
		return "leading"
	case EdgeTrailing:
		return "trailing"
	default:
		return ""
	}
}

// EffectKind tags the variant stored in an Effect.
type EffectKind int

const (
	EffectIdentity EffectKind = iota
	EffectMove
	EffectFade
	EffectScale
	EffectRotate
	EffectOffset
)

// String returns a string representation of the effect kind.
func (k EffectKind) String() string {
	switch k {
	case EffectIdentity:
		return "identity"
	case EffectMove:
		return "move"
	case EffectFade:
		return "fade"
	case EffectScale:
		return "scale"
	case EffectRotate:
		return "rotate"
	case EffectOffset:
		return "offset"
	default:
		return ""
	}
}

// Effect is one visual operation in a transition: a move along an edge,
// a fade, a scale, a rotation, or a raw offset. Effects are immutable
// values; only the fields relevant to Kind are meaningful.
//
// All distances (Edge displacement, X, Y) are fractions of the element's
// own bounding box, so an Effect never depends on screen or window size.
// The host renderer multiplies by the element's rendered dimensions.
type Effect struct {
	Kind    EffectKind
	Edge    Edge    // EffectMove: which edge the element travels across
	Factor  float64 // EffectScale: scale at the fully hidden pose, >= 0
	Degrees float64 // EffectRotate: rotation at the fully hidden pose
	X, Y    float64 // EffectOffset: displacement at the fully hidden pose
}

// hiddenPose returns the visual parameters of this effect at the fully
// hidden end of its animation. The fully visible end is always identity.
func (e Effect) hiddenPose() VisualParams {
	p := IdentityParams()

	switch e.Kind {
	case EffectMove:
		switch e.Edge {
		case EdgeTop:
			p.DY = -1
		case EdgeBottom:
			p.DY = 1
		case EdgeLeading:
			p.DX = -1
		case EdgeTrailing:
			p.DX = 1
		}
	case EffectFade:
		p.Opacity = 0
	case EffectScale:
		p.ScaleFactor = e.Factor
	case EffectRotate:
		p.RotationDegrees = e.Degrees
		// Convention of the Rotate constructor: a non-zero resting
		// rotation carries the element one bounding-box height above
		// its resting place so the hidden pose sits off canvas.
		if e.Degrees != 0 {
			p.DY = -1
		}
	case EffectOffset:
		p.DX = e.X
		p.DY = e.Y
	}

	return p
}
