package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus(" in_transit ")
	require.NoError(t, err)
	assert.Equal(t, StatusInTransit, status)

	_, err = ParseOrderStatus("TELEPORTED")
	assert.Error(t, err)
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Purchased in China", StatusPurchased.Label())
	assert.Equal(t, "Arrived in Rwanda", StatusArrived.Label())
	assert.Equal(t, "Delivered / Completed", StatusCompleted.Label())
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusDeclined.IsTerminal())
	assert.False(t, StatusRequested.IsTerminal())
	assert.False(t, StatusArrived.IsTerminal())
}

func TestValidateTransition(t *testing.T) {
	cases := []struct {
		name   string
		from   OrderStatus
		to     OrderStatus
		strict bool
		ok     bool
	}{
		{"same status is a no-op", StatusPurchased, StatusPurchased, true, true},
		{"same terminal status is a no-op", StatusCompleted, StatusCompleted, true, true},
		{"terminal never changes", StatusCompleted, StatusArrived, false, false},
		{"declined never changes", StatusDeclined, StatusRequested, false, false},
		{"free-form allows backwards", StatusInTransit, StatusRequested, false, true},
		{"strict forbids backwards", StatusInTransit, StatusRequested, true, false},
		{"strict allows next step", StatusRequested, StatusPurchased, true, true},
		{"strict allows forward skip", StatusRequested, StatusArrived, true, true},
		{"strict allows decline anywhere", StatusInTransit, StatusDeclined, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTransition(tc.from, tc.to, tc.strict)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestOrderClone(t *testing.T) {
	order := Order{
		Status: StatusPurchased,
		StatusHistory: []StatusEntry{
			{Status: StatusRequested},
			{Status: StatusPurchased},
		},
	}

	clone := order.Clone()
	clone.StatusHistory[0].Status = StatusDeclined

	assert.Equal(t, StatusRequested, order.StatusHistory[0].Status)

	last, ok := order.LastStatusEntry()
	require.True(t, ok)
	assert.Equal(t, StatusPurchased, last.Status)
}
