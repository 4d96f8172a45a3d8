package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting search events", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()
		c.AddCutoff()
		c.AddTableHit()

		got := c.Complete(7)

		require.Equal(t, 3, got.Depth)
		require.Equal(t, 2, got.Nodes)
		require.Equal(t, 1, got.Leaves)
		require.Equal(t, 1, got.Cutoffs)
		require.Equal(t, 1, got.TableHits)
		require.Equal(t, 7, got.Score)
		require.GreaterOrEqual(t, got.Duration.Nanoseconds(), int64(0))
	})

	t.Run("resetting on start", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddNode()

		c.Start(2)
		got := c.Complete(0)

		require.Equal(t, 0, got.Nodes, "Start should reset previous counts")
		require.Equal(t, 2, got.Depth)
	})

	t.Run("collecting nothing but the score", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3)
		c.AddNode()

		require.Equal(t, SearchMetric{Score: 5}, c.Complete(5))
	})
}
