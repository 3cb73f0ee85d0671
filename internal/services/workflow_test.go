package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brucekarangwamanzi/tuma-tr/internal/apperr"
	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
)

// A fresh signup has to clear verification before their first order goes in.
func TestSignupToFirstOrder(t *testing.T) {
	env := newTestEnv(t)
	admin := env.addUser(t, "admin@example.com", "Eric Habimana", models.RoleAdmin, true)

	customer, err := env.users.SignUp("kevin@example.com", "Kevin Niyonzima", "+250 788 000 111")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, customer.Role)
	assert.False(t, customer.IsVerified)

	_, err = env.orders.Create(customer, validOrderInput(), validScreenshot())
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	request, err := env.verify.Submit(customer, VerificationInput{
		FullName:  customer.FullName,
		Phone:     customer.Phone,
		GovIDURL:  "https://cdn.tumalink.test/verify/kevin-id.jpg",
		SelfieURL: "https://cdn.tumalink.test/verify/kevin-selfie.jpg",
	})
	require.NoError(t, err)
	require.NoError(t, env.verify.Approve(admin, request.ID))

	customer, err = env.users.Authenticate(customer.Email)
	require.NoError(t, err)
	require.True(t, customer.IsVerified)

	order, err := env.orders.Create(customer, validOrderInput(), validScreenshot())
	require.NoError(t, err)
	assert.Equal(t, models.StatusRequested, order.Status)
	require.Len(t, order.StatusHistory, 1)
}

// A full trip through the pipeline leaves one history row per stage, in
// order, with non-decreasing timestamps.
func TestOrderPipelineToCompletion(t *testing.T) {
	env := newTestEnv(t)
	owner := env.addUser(t, "john@example.com", "John Mugisha", models.RoleUser, true)
	staff := env.addUser(t, "jane@example.com", "Jane Ingabire", models.RoleOrderProcessor, true)
	order := env.placeOrder(t, owner)

	stages := []models.OrderStatus{
		models.StatusPurchased,
		models.StatusInWarehouse,
		models.StatusInTransit,
		models.StatusArrived,
		models.StatusCompleted,
	}
	var err error
	for _, next := range stages {
		order, err = env.orders.SetStatus(staff, order.ID, string(next))
		require.NoError(t, err)
		assert.Equal(t, next, order.Status)
	}

	want := append([]models.OrderStatus{models.StatusRequested}, stages...)
	require.Len(t, order.StatusHistory, len(want))
	for i, entry := range order.StatusHistory {
		assert.Equal(t, want[i], entry.Status)
		if i > 0 {
			assert.False(t, entry.Timestamp.Before(order.StatusHistory[i-1].Timestamp))
		}
	}

	// The owner's own view reflects the same record.
	own, err := env.orders.List(owner)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, models.StatusCompleted, own[0].Status)
	assert.Len(t, own[0].StatusHistory, len(want))
}
