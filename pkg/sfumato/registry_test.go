package sfumato_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sfumato/pkg/sfumato"
)

func TestRegistryRegisterLookup(t *testing.T) {
	reg := sfumato.NewRegistry()
	tr := sfumato.Combine(sfumato.Move(sfumato.EdgeLeading), sfumato.Fade())

	reg.Register("slide", tr)

	got, err := reg.Lookup("slide")
	require.NoError(t, err)
	require.Equal(t, tr, got)
}

func TestRegistryOverwrite(t *testing.T) {
	reg := sfumato.NewRegistry()

	reg.Register("enter", sfumato.Fade())
	reg.Register("enter", sfumato.Move(sfumato.EdgeTop))

	got, err := reg.Lookup("enter")
	require.NoError(t, err)
	assert.Equal(t, sfumato.Move(sfumato.EdgeTop), got)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryZeroValue(t *testing.T) {
	var reg sfumato.Registry

	_, err := reg.Lookup("fade")
	assert.True(t, sfumato.IsNotFound(err))

	reg.Register("fade", sfumato.Fade())

	got, err := reg.Lookup("fade")
	require.NoError(t, err)
	assert.Equal(t, sfumato.Fade(), got)
}

func TestRegistryLookupNotFound(t *testing.T) {
	reg := sfumato.NewRegistry()

	_, err := reg.Lookup("nonexistent")
	require.Error(t, err)
	assert.True(t, sfumato.IsNotFound(err))
	assert.ErrorIs(t, err, sfumato.ErrNotFound)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestRegistryNames(t *testing.T) {
	reg := sfumato.NewRegistry()
	reg.Register("zoom", sfumato.Fade())
	reg.Register("appear", sfumato.Identity())

	assert.Equal(t, []string{"appear", "zoom"}, reg.Names())
}

func TestDefaultRegistry(t *testing.T) {
	tr := sfumato.Asymmetric(sfumato.Rotate(180), sfumato.Fade())

	sfumato.Register("registry-test-spin", tr)

	got, err := sfumato.Lookup("registry-test-spin")
	require.NoError(t, err)
	assert.Equal(t, tr, got)

	_, err = sfumato.DefaultRegistry().Lookup("registry-test-spin")
	assert.NoError(t, err)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := sfumato.NewRegistry()
	reg.Register("fade", sfumato.Fade())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				reg.Register("fade", sfumato.Fade())
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := reg.Lookup("fade")
				if err != nil {
					t.Error(err)
					return
				}
				// Readers must never see a partial entry.
				if len(got.Effects()) != 1 {
					t.Errorf("partial entry observed: %v", got.Effects())
					return
				}
			}
		}()
	}
	wg.Wait()
}
