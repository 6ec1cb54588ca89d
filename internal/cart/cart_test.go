package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundline/storefront/internal/transport"
)

func TestCartAddAndCount(t *testing.T) {
	t.Parallel()

	c := New()
	c = c.Add(1, 2)
	c = c.Add(2, 1)
	c = c.Add(1, 3)

	assert.Equal(t, 6, c.Count())
	assert.Equal(t, 5, c.Items[1])
	assert.Equal(t, 1, c.Items[2])
}

func TestCartOpsDoNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base := New().Add(1, 2)

	_ = base.Add(1, 5)
	_ = base.SetQuantity(1, 9)
	_ = base.Remove(1)

	assert.Equal(t, 2, base.Items[1], "ops must return copies, not mutate")
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	t.Parallel()

	c := New().Add(1, 2).Add(2, 1)
	c = c.SetQuantity(1, 0)

	_, ok := c.Items[1]
	assert.False(t, ok)
	assert.Equal(t, 1, c.Count())

	c = c.Remove(2)
	assert.True(t, c.IsEmpty())
}

func TestCartAddIgnoresNonPositive(t *testing.T) {
	t.Parallel()

	c := New().Add(1, 0).Add(2, -3)
	assert.True(t, c.IsEmpty())
}

func TestCartLinesStableOrder(t *testing.T) {
	t.Parallel()

	c := New().Add(9, 1).Add(3, 2).Add(7, 4)

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, []transport.CreateOrderItem{
		{ProductID: 3, Quantity: 2},
		{ProductID: 7, Quantity: 4},
		{ProductID: 9, Quantity: 1},
	}, lines)
}

func TestCartJSONRoundTrip(t *testing.T) {
	t.Parallel()

	c := New().Add(1, 2).Add(5, 3)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var back Cart
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c.Items, back.Items)
}
