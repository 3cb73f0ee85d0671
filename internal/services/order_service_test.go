package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brucekarangwamanzi/tuma-tr/internal/apperr"
	"github.com/brucekarangwamanzi/tuma-tr/internal/config"
	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
)

func TestCreateOrderRequiresVerification(t *testing.T) {
	env := newTestEnv(t)
	unverified := env.addUser(t, "amina@example.com", "Amina Uwase", models.RoleUser, false)

	_, err := env.orders.Create(unverified, validOrderInput(), validScreenshot())
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	require.NoError(t, env.store.SetUserVerified(unverified.ID, true))
	verified, err := env.users.Authenticate(unverified.Email)
	require.NoError(t, err)

	order, err := env.orders.Create(verified, validOrderInput(), validScreenshot())
	require.NoError(t, err)
	assert.Equal(t, models.StatusRequested, order.Status)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, models.StatusRequested, order.StatusHistory[0].Status)
}

func TestCreateOrderStaffForbidden(t *testing.T) {
	env := newTestEnv(t)
	for _, role := range []models.Role{models.RoleOrderProcessor, models.RoleAdmin, models.RoleSuperAdmin} {
		staff := env.addUser(t, string(role)+"@example.com", "Staff Member", role, true)
		_, err := env.orders.Create(staff, validOrderInput(), validScreenshot())
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err), "role %s", role)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	env := newTestEnv(t)
	owner := env.addUser(t, "john@example.com", "John Mugisha", models.RoleUser, true)

	cases := []struct {
		name       string
		mutate     func(*OrderInput)
		screenshot *AttachmentUpload
	}{
		{name: "missing name", mutate: func(in *OrderInput) { in.ProductName = " " }, screenshot: validScreenshot()},
		{name: "bad url", mutate: func(in *OrderInput) { in.ProductURL = "not-a-url" }, screenshot: validScreenshot()},
		{name: "ftp url", mutate: func(in *OrderInput) { in.ProductURL = "ftp://example.com/x" }, screenshot: validScreenshot()},
		{name: "zero quantity", mutate: func(in *OrderInput) { in.Quantity = 0 }, screenshot: validScreenshot()},
		{name: "no screenshot", mutate: func(in *OrderInput) {}, screenshot: nil},
		{name: "oversized screenshot", mutate: func(in *OrderInput) {}, screenshot: &AttachmentUpload{
			URL: "https://cdn.tumalink.test/screens/big.jpg", ContentType: "image/png", Size: 41 * 1024,
		}},
		{name: "non-image screenshot", mutate: func(in *OrderInput) {}, screenshot: &AttachmentUpload{
			URL: "https://cdn.tumalink.test/screens/file.pdf", ContentType: "application/pdf", Size: 10 * 1024,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validOrderInput()
			tc.mutate(&in)
			_, err := env.orders.Create(owner, in, tc.screenshot)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestCreateOrderIncrementsTotalOrders(t *testing.T) {
	env := newTestEnv(t)
	owner := env.addUser(t, "john@example.com", "John Mugisha", models.RoleUser, true)

	env.placeOrder(t, owner)
	env.placeOrder(t, owner)

	refreshed, err := env.users.Authenticate(owner.Email)
	require.NoError(t, err)
	assert.Equal(t, 2, refreshed.TotalOrders)
}

func TestSetStatusHistoryInvariants(t *testing.T) {
	env := newTestEnv(t)
	owner := env.addUser(t, "john@example.com", "John Mugisha", models.RoleUser, true)
	staff := env.addUser(t, "jane@example.com", "Jane Ingabire", models.RoleOrderProcessor, true)
	order := env.placeOrder(t, owner)

	order, err := env.orders.SetStatus(staff, order.ID, "PURCHASED")
	require.NoError(t, err)
	require.Len(t, order.StatusHistory, 2)

	// Repeating the same status must not grow the history.
	order, err = env.orders.SetStatus(staff, order.ID, "PURCHASED")
	require.NoError(t, err)
	assert.Len(t, order.StatusHistory, 2)

	last, ok := order.LastStatusEntry()
	require.True(t, ok)
	assert.Equal(t, order.Status, last.Status)

	for i := 1; i < len(order.StatusHistory); i++ {
		assert.False(t, order.StatusHistory[i].Timestamp.Before(order.StatusHistory[i-1].Timestamp))
	}
}

func TestSetStatusAuthorization(t *testing.T) {
	env := newTestEnv(t)
	owner := env.addUser(t, "john@example.com", "John Mugisha", models.RoleUser, true)
	order := env.placeOrder(t, owner)

	_, err := env.orders.SetStatus(owner, order.ID, "PURCHASED")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	staff := env.addUser(t, "jane@example.com", "Jane Ingabire", models.RoleOrderProcessor, true)
	_, err = env.orders.SetStatus(staff, uuid.New(), "PURCHASED")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = env.orders.SetStatus(staff, order.ID, "TELEPORTED")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestSetStatusTerminalOrdersAreImmutable(t *testing.T) {
	env := newTestEnv(t)
	owner := env.addUser(t, "john@example.com", "John Mugisha", models.RoleUser, true)
	staff := env.addUser(t, "jane@example.com", "Jane Ingabire", models.RoleOrderProcessor, true)

	declined := env.placeOrder(t, owner)
	_, err := env.orders.SetStatus(staff, declined.ID, "DECLINED")
	require.NoError(t, err)
	_, err = env.orders.SetStatus(staff, declined.ID, "PURCHASED")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	completed := env.placeOrder(t, owner)
	_, err = env.orders.SetStatus(staff, completed.ID, "COMPLETED")
	require.NoError(t, err)
	_, err = env.orders.SetStatus(staff, completed.ID, "ARRIVED")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestSetStatusStrictFlow(t *testing.T) {
	cfg := config.Default()
	cfg.StrictStatusFlow = true
	env := newTestEnvWith(t, cfg)
	owner := env.addUser(t, "john@example.com", "John Mugisha", models.RoleUser, true)
	staff := env.addUser(t, "jane@example.com", "Jane Ingabire", models.RoleOrderProcessor, true)
	order := env.placeOrder(t, owner)

	order, err := env.orders.SetStatus(staff, order.ID, "IN_WAREHOUSE")
	require.NoError(t, err, "forward skips are allowed")

	_, err = env.orders.SetStatus(staff, order.ID, "REQUESTED")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), "no moving backwards")

	_, err = env.orders.SetStatus(staff, order.ID, "DECLINED")
	assert.NoError(t, err, "declining stays possible from any non-terminal status")
}

func TestListOrdersScope(t *testing.T) {
	env := newTestEnv(t)
	john := env.addUser(t, "john@example.com", "John Mugisha", models.RoleUser, true)
	amina := env.addUser(t, "amina@example.com", "Amina Uwase", models.RoleUser, true)
	staff := env.addUser(t, "jane@example.com", "Jane Ingabire", models.RoleOrderProcessor, true)

	env.placeOrder(t, john)
	env.placeOrder(t, john)
	env.placeOrder(t, amina)

	own, err := env.orders.List(john)
	require.NoError(t, err)
	require.Len(t, own, 2)
	for _, listing := range own {
		assert.Equal(t, john.ID, listing.UserID)
	}

	all, err := env.orders.List(staff)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, listing := range all {
		assert.NotEmpty(t, listing.OwnerFullName)
	}
}

func TestGetOrderScope(t *testing.T) {
	env := newTestEnv(t)
	john := env.addUser(t, "john@example.com", "John Mugisha", models.RoleUser, true)
	amina := env.addUser(t, "amina@example.com", "Amina Uwase", models.RoleUser, true)
	order := env.placeOrder(t, john)

	_, err := env.orders.Get(amina, order.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err), "foreign orders fail closed, not empty")

	_, err = env.orders.Get(john, uuid.New())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	got, err := env.orders.Get(john, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestGetDetailIncludesThread(t *testing.T) {
	env := newTestEnv(t)
	john := env.addUser(t, "john@example.com", "John Mugisha", models.RoleUser, true)
	env.addUser(t, "jane@example.com", "Jane Ingabire", models.RoleOrderProcessor, true)
	order := env.placeOrder(t, john)

	_, err := env.msgs.Send(john, order.ID, "Any update?", nil)
	require.NoError(t, err)

	detail, err := env.orders.GetDetail(john, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, detail.Order.ID)
	require.Len(t, detail.Messages, 1)
	assert.Equal(t, "Any update?", detail.Messages[0].Text)
}

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t)
	john := env.addUser(t, "john@example.com", "John Mugisha", models.RoleUser, true)
	staff := env.addUser(t, "jane@example.com", "Jane Ingabire", models.RoleOrderProcessor, true)
	order := env.placeOrder(t, john)
	env.placeOrder(t, john)
	_, err := env.orders.SetStatus(staff, order.ID, "PURCHASED")
	require.NoError(t, err)

	stats, err := env.admin.Stats(staff)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.OrdersByStatus[models.StatusRequested])
	assert.Equal(t, 1, stats.OrdersByStatus[models.StatusPurchased])

	_, err = env.admin.Stats(john)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}
