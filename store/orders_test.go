package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_Total(t *testing.T) {
	o := NewOrder(1,
		OrderItem{ProductID: 10, Quantity: 2},
		OrderItem{ProductID: 20, Quantity: 1},
	)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, int64(250), o.Total(map[int64]int64{10: 100, 20: 50}))
}

func TestReserve(t *testing.T) {
	p := &Product{ID: 10, Inventory: 3}

	assert.True(t, reserve(p, 2))
	assert.False(t, reserve(p, 2))
	assert.Equal(t, 1, p.Inventory)
}
