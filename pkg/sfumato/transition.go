package sfumato

// Transition is an immutable description of how an element visually
// enters and exits a presentation. A Transition is either a composite of
// Effects applied simultaneously, or an asymmetric pair of independent
// Transitions for the two directions.
//
// The zero value is the identity transition: the element appears and
// disappears with no visual effect.
type Transition struct {
	effects   []Effect
	insertion *Transition
	removal   *Transition
}

// Move returns a Transition that slides the element in or out across the
// given edge of its resting position.
func Move(edge Edge) Transition {
	return Transition{effects: []Effect{{Kind: EffectMove, Edge: edge}}}
}

// Fade returns an opacity-based Transition.
func Fade() Transition {
	return Transition{effects: []Effect{{Kind: EffectFade}}}
}

// Scale returns a size-based Transition. The element animates between its
// natural size and factor times its natural size; factor 0 shrinks the
// element to nothing. A negative factor is rejected with an
// InvalidArgumentError.
func Scale(factor float64) (Transition, error) {
	if factor < 0 {
		return Transition{}, &InvalidArgumentError{Op: "scale", Reason: "factor must be >= 0"}
	}
	return Transition{effects: []Effect{{Kind: EffectScale, Factor: factor}}}, nil
}

// Rotate returns an angular Transition. Degrees 0 is the element's
// resting orientation; any non-zero value is its displaced orientation.
//
// By convention a non-zero rotation also displaces the element one
// bounding-box height above its resting place, so the hidden pose sits
// off the visible canvas. The offset is a convention of this constructor,
// not of the effect system; use Combine with Offset for other pairings.
func Rotate(degrees float64) Transition {
	return Transition{effects: []Effect{{Kind: EffectRotate, Degrees: degrees}}}
}

// Offset returns a positional Transition. X and Y are fractions of the
// element's own bounding box, resolved against its rendered size by the
// host renderer.
func Offset(x, y float64) Transition {
	return Transition{effects: []Effect{{Kind: EffectOffset, X: x, Y: y}}}
}

// Identity returns the transition that applies no visual effect.
func Identity() Transition {
	return Transition{}
}

// Combine returns a Transition applying all component effects of the
// given transitions simultaneously. If any argument is asymmetric, the
// result is asymmetric, combining the matching sides of every argument.
func Combine(transitions ...Transition) Transition {
	asymmetric := false
	for _, t := range transitions {
		if t.IsAsymmetric() {
			asymmetric = true
			break
		}
	}

	if asymmetric {
		ins := make([]Transition, len(transitions))
		rem := make([]Transition, len(transitions))
		for i, t := range transitions {
			ins[i] = t.Insertion()
			rem[i] = t.Removal()
		}
		return Asymmetric(Combine(ins...), Combine(rem...))
	}

	var effects []Effect
	for _, t := range transitions {
		effects = append(effects, t.effects...)
	}
	return Transition{effects: effects}
}

// Asymmetric returns a Transition that uses insertion when the element
// becomes visible and removal when it becomes hidden. The two sides are
// resolved independently and never observe each other.
func Asymmetric(insertion, removal Transition) Transition {
	ins := insertion
	rem := removal
	return Transition{insertion: &ins, removal: &rem}
}

// IsAsymmetric reports whether the transition has distinct insertion and
// removal sides.
func (t Transition) IsAsymmetric() bool {
	return t.insertion != nil
}

// Insertion returns the Transition applied when the element becomes
// visible. For a symmetric transition this is the transition itself.
func (t Transition) Insertion() Transition {
	if t.insertion != nil {
		return *t.insertion
	}
	return t
}

// Removal returns the Transition applied when the element becomes
// hidden. For a symmetric transition this is the transition itself.
func (t Transition) Removal() Transition {
	if t.removal != nil {
		return *t.removal
	}
	return t
}

// Effects returns the component effects of a symmetric transition. An
// identity transition returns an empty slice; an asymmetric transition
// returns nil, since its sides carry independent effect lists (query
// them via Insertion and Removal).
func (t Transition) Effects() []Effect {
	if t.IsAsymmetric() {
		return nil
	}
	out := make([]Effect, len(t.effects))
	copy(out, t.effects)
	return out
}

// side returns the Transition matching the given direction.
func (t Transition) side(dir Direction) Transition {
	if dir == Removal {
		return t.Removal()
	}
	return t.Insertion()
}
