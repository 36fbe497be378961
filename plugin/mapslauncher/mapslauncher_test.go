package mapslauncher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastetube/push-bootstrap/domain"
	"github.com/tastetube/push-bootstrap/location"
)

type testRegistrar struct {
	loc location.Location
}

func (r testRegistrar) Plugin() string                      { return CName }
func (r testRegistrar) Location() location.Location         { return r.loc }
func (r testRegistrar) LaunchOptions() domain.LaunchOptions { return nil }

func TestMapsLauncher_LaunchURL(t *testing.T) {
	t.Run("attached", func(t *testing.T) {
		loc := location.New()
		require.NoError(t, loc.ProvideCredential("K"))
		m := New()
		require.NoError(t, m.Attach(testRegistrar{loc: loc}))

		u, err := m.LaunchURL(1.5, 2.5)
		require.NoError(t, err)
		assert.Equal(t, "https://www.google.com/maps/search/?api=1&key=K&query=1.5%2C2.5", u)
	})
	t.Run("not attached", func(t *testing.T) {
		_, err := New().LaunchURL(1, 2)
		require.ErrorIs(t, err, ErrNotAttached)
	})
	t.Run("attach without credential", func(t *testing.T) {
		m := New()
		require.ErrorIs(t, m.Attach(testRegistrar{loc: location.New()}), location.ErrNoCredential)
		_, err := m.LaunchURL(1, 2)
		require.ErrorIs(t, err, ErrNotAttached)
	})
}
