package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tastetube/push-bootstrap/domain"
)

func TestLifecycle_Startup(t *testing.T) {
	t.Run("nil context and options", func(t *testing.T) {
		assert.True(t, New().Startup(nil, nil))
	})
	t.Run("once", func(t *testing.T) {
		l := New()
		assert.True(t, l.Startup(&domain.LaunchContext{Pid: 1}, domain.LaunchOptions{"url": "x"}))
		assert.False(t, l.Startup(nil, nil))
	})
}
