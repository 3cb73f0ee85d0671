package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brucekarangwamanzi/tuma-tr/internal/config"
	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
	"github.com/brucekarangwamanzi/tuma-tr/internal/store"
)

type testEnv struct {
	store   *store.Store
	cfg     *config.Config
	users   *UserService
	orders  *OrderService
	verify  *VerificationService
	msgs    *MessageService
	content *ContentService
	admin   *AdminService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWith(t, config.Default())
}

func newTestEnvWith(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()
	st := store.New()
	return &testEnv{
		store:   st,
		cfg:     cfg,
		users:   NewUserService(st),
		orders:  NewOrderService(st, cfg),
		verify:  NewVerificationService(st),
		msgs:    NewMessageService(st, cfg),
		content: NewContentService(st),
		admin:   NewAdminService(st),
	}
}

func (e *testEnv) addUser(t *testing.T, email, name string, role models.Role, verified bool) models.User {
	t.Helper()
	u := models.User{Email: email, FullName: name, Role: role, IsVerified: verified}
	require.NoError(t, e.store.InsertUser(&u))
	return u
}

func validOrderInput() OrderInput {
	return OrderInput{
		ProductURL:  "https://example.com/product/1",
		ProductName: "Ergonomic Office Chair",
		Quantity:    1,
	}
}

func validScreenshot() *AttachmentUpload {
	return &AttachmentUpload{
		URL:         "https://cdn.tumalink.test/screens/chair.jpg",
		ContentType: "image/jpeg",
		Size:        32 * 1024,
	}
}

func (e *testEnv) placeOrder(t *testing.T, owner models.User) models.Order {
	t.Helper()
	order, err := e.orders.Create(owner, validOrderInput(), validScreenshot())
	require.NoError(t, err)
	return order
}
