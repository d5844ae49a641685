package sfumato_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sfumato/pkg/sfumato"
)

func TestCombineRoundTrip(t *testing.T) {
	combined := sfumato.Combine(sfumato.Move(sfumato.EdgeLeading), sfumato.Fade())

	want := []sfumato.Effect{
		{Kind: sfumato.EffectMove, Edge: sfumato.EdgeLeading},
		{Kind: sfumato.EffectFade},
	}
	if diff := cmp.Diff(want, combined.Effects()); diff != "" {
		t.Errorf("component effects mismatch (-want +got):\n%s", diff)
	}

	// Each component remains independently resolvable.
	p := sfumato.Resolve(sfumato.Move(sfumato.EdgeLeading), sfumato.Insertion, 0)
	assert.Equal(t, -1.0, p.DX)
	p = sfumato.Resolve(sfumato.Fade(), sfumato.Insertion, 0)
	assert.Equal(t, 0.0, p.Opacity)
}

// Substituting the removal side of an asymmetric pair must not change
// insertion-direction outputs, and vice versa.
func TestAsymmetricIndependence(t *testing.T) {
	scaleToNothing, err := sfumato.Scale(0)
	require.NoError(t, err)

	insertion := sfumato.Rotate(180)

	a := sfumato.Asymmetric(insertion, scaleToNothing)
	b := sfumato.Asymmetric(insertion, sfumato.Fade())

	for _, progress := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assert.Equal(t,
			sfumato.Resolve(a, sfumato.Insertion, progress),
			sfumato.Resolve(b, sfumato.Insertion, progress),
			"insertion output changed with the removal side at progress %v", progress)
	}

	c := sfumato.Asymmetric(sfumato.Fade(), scaleToNothing)
	d := sfumato.Asymmetric(sfumato.Move(sfumato.EdgeTop), scaleToNothing)

	for _, progress := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assert.Equal(t,
			sfumato.Resolve(c, sfumato.Removal, progress),
			sfumato.Resolve(d, sfumato.Removal, progress),
			"removal output changed with the insertion side at progress %v", progress)
	}
}

func TestAsymmetricSides(t *testing.T) {
	insertion := sfumato.Rotate(180)
	removal := sfumato.Fade()
	tr := sfumato.Asymmetric(insertion, removal)

	require.True(t, tr.IsAsymmetric())
	assert.Nil(t, tr.Effects())
	assert.Equal(t, insertion.Effects(), tr.Insertion().Effects())
	assert.Equal(t, removal.Effects(), tr.Removal().Effects())

	// Symmetric transitions answer with themselves for both sides.
	fade := sfumato.Fade()
	assert.False(t, fade.IsAsymmetric())
	assert.Equal(t, fade.Effects(), fade.Insertion().Effects())
	assert.Equal(t, fade.Effects(), fade.Removal().Effects())
}

// Any transition may serve as either side of an asymmetric pair,
// including one that is itself asymmetric: resolving keeps unwrapping
// the side matching the direction.
func TestAsymmetricNestedSides(t *testing.T) {
	inner := sfumato.Asymmetric(sfumato.Fade(), sfumato.Move(sfumato.EdgeTop))

	tr := sfumato.Asymmetric(inner, sfumato.Fade())
	hidden := sfumato.Resolve(tr, sfumato.Insertion, 0)
	assert.Equal(t, 0.0, hidden.Opacity)
	assert.Equal(t, 0.0, hidden.DY)

	tr = sfumato.Asymmetric(sfumato.Fade(), inner)
	gone := sfumato.Resolve(tr, sfumato.Removal, 1)
	assert.Equal(t, 1.0, gone.Opacity)
	assert.Equal(t, -1.0, gone.DY)
}

func TestCombineWithAsymmetric(t *testing.T) {
	tr := sfumato.Combine(
		sfumato.Asymmetric(sfumato.Fade(), sfumato.Move(sfumato.EdgeTop)),
		sfumato.Rotate(90),
	)

	require.True(t, tr.IsAsymmetric())

	hiddenIn := sfumato.Resolve(tr, sfumato.Insertion, 0)
	assert.Equal(t, 0.0, hiddenIn.Opacity)
	assert.Equal(t, 90.0, hiddenIn.RotationDegrees)

	hiddenOut := sfumato.Resolve(tr, sfumato.Removal, 1)
	assert.Equal(t, 1.0, hiddenOut.Opacity)
	assert.Equal(t, 90.0, hiddenOut.RotationDegrees)
	// Move(top) and rotate's implicit offset both push one height up.
	assert.Equal(t, -2.0, hiddenOut.DY)
}

func TestZeroValueIsIdentity(t *testing.T) {
	var tr sfumato.Transition

	assert.Equal(t, sfumato.IdentityParams(), sfumato.Resolve(tr, sfumato.Insertion, 0.3))
	assert.Empty(t, tr.Effects())
	assert.False(t, tr.IsAsymmetric())
}

func TestScaleRejectsNegativeFactor(t *testing.T) {
	_, err := sfumato.Scale(-1)

	require.Error(t, err)
	assert.True(t, sfumato.IsInvalidArgument(err))
	assert.ErrorIs(t, err, sfumato.ErrInvalidArgument)

	var argErr *sfumato.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "scale", argErr.Op)
}

func TestScaleToNothing(t *testing.T) {
	tr, err := sfumato.Scale(0)
	require.NoError(t, err)

	hidden := sfumato.Resolve(tr, sfumato.Removal, 1)
	assert.Equal(t, 0.0, hidden.ScaleFactor)
	assert.Equal(t, 1.0, hidden.Opacity)
}
