package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastetube/push-bootstrap/domain"
)

const testYaml = `
redis:
  url: redis://127.0.0.1:6379/0
queue:
  name: background
worker:
  inboxSize: 10
  bundle:
    apiKey: ${TEST_PUSH_API_KEY}
    appId: a1
    senderId: s1
    projectId: p1
    storageBucket: b1
    authDomain: d1
native:
  mapsApiKey: ${TEST_MAPS_API_KEY}
  appId: a1
plugins:
  enabled:
    - geolocator
    - maps_launcher
`

func TestNewFromFile(t *testing.T) {
	t.Setenv("TEST_PUSH_API_KEY", "k1")
	t.Setenv("TEST_MAPS_API_KEY", "m1")
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testYaml), 0o600))

	c, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Bundle{
		APIKey:        "k1",
		AppId:         "a1",
		SenderId:      "s1",
		ProjectId:     "p1",
		StorageBucket: "b1",
		AuthDomain:    "d1",
	}, c.GetWorker().Bundle)
	assert.Equal(t, 10, c.GetWorker().InboxSize)
	assert.Equal(t, "m1", c.GetNative().MapsAPIKey)
	assert.Equal(t, []string{"geolocator", "maps_launcher"}, c.GetPlugins().Enabled)
	assert.Equal(t, "redis://127.0.0.1:6379/0", c.GetRedis().Url)
	assert.False(t, c.GetMongo().Enabled())
	assert.Equal(t, CName, c.Name())
}

func TestParse(t *testing.T) {
	t.Run("unset variable", func(t *testing.T) {
		c, err := Parse([]byte("native:\n  mapsApiKey: ${TEST_UNSET_MAPS_KEY}\n"))
		require.NoError(t, err)
		assert.Empty(t, c.GetNative().MapsAPIKey)
	})
	t.Run("literal dollar", func(t *testing.T) {
		t.Setenv("TEST_MAPS_API_KEY", "m1")
		t.Setenv("HOME", "/home/push")
		c, err := Parse([]byte("redis:\n  url: redis://:pa$$w0rd@127.0.0.1:6379/0\nnative:\n  mapsApiKey: ${TEST_MAPS_API_KEY}\n  appId: $HOME-$1\n"))
		require.NoError(t, err)
		assert.Equal(t, "redis://:pa$$w0rd@127.0.0.1:6379/0", c.GetRedis().Url)
		assert.Equal(t, "m1", c.GetNative().MapsAPIKey)
		assert.Equal(t, "$HOME-$1", c.GetNative().AppId)
	})
	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("worker: [\n"))
		require.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := NewFromFile(filepath.Join(t.TempDir(), "nope.yml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
