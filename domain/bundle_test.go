package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBundle_Missing(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		b := Bundle{APIKey: "k1", AppId: "a1", SenderId: "s1", ProjectId: "p1", StorageBucket: "b1", AuthDomain: "d1"}
		assert.Empty(t, b.Missing())
	})
	t.Run("no project", func(t *testing.T) {
		b := Bundle{APIKey: "k1", AppId: "a1", SenderId: "s1", StorageBucket: "b1", AuthDomain: "d1"}
		assert.Equal(t, []string{"projectId"}, b.Missing())
	})
	t.Run("empty", func(t *testing.T) {
		assert.Len(t, Bundle{}.Missing(), 6)
	})
}
