package services

import (
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/brucekarangwamanzi/tuma-tr/internal/apperr"
	"github.com/brucekarangwamanzi/tuma-tr/internal/authz"
	"github.com/brucekarangwamanzi/tuma-tr/internal/config"
	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
	"github.com/brucekarangwamanzi/tuma-tr/internal/store"
)

// OrderService manages the sourcing order lifecycle.
type OrderService struct {
	store *store.Store
	cfg   *config.Config
}

// NewOrderService constructs OrderService.
func NewOrderService(st *store.Store, cfg *config.Config) *OrderService {
	return &OrderService{store: st, cfg: cfg}
}

// OrderInput carries the product descriptor for a new order.
type OrderInput struct {
	ProductURL     string
	ProductName    string
	Quantity       int
	Variation      string
	Specifications string
	Notes          string
}

// OrderListing is an order decorated with its owner's display name for the
// staff views. It is derived at read time from the same stored order the
// customer sees, so the two projections cannot diverge.
type OrderListing struct {
	models.Order
	OwnerFullName string `json:"owner_full_name,omitempty"`
}

// OrderDetail bundles an order with its conversation thread.
type OrderDetail struct {
	Order    OrderListing     `json:"order"`
	Messages []models.Message `json:"messages"`
}

// List returns the orders the actor is allowed to see: customers get their
// own orders, staff get the global list with owner names attached.
func (s *OrderService) List(actor models.User) ([]OrderListing, error) {
	if authz.Can(actor.Role, authz.ActionViewAllOrders) {
		return s.decorate(s.store.ListOrders()), nil
	}
	if actor.Role != models.RoleUser {
		return nil, apperr.Forbidden("role %s may not list orders", actor.Role)
	}
	return s.decorate(s.store.ListOrdersByUser(actor.ID)), nil
}

// Get returns a single order, enforcing ownership scope for customers.
func (s *OrderService) Get(actor models.User, orderID uuid.UUID) (models.Order, error) {
	order, err := s.store.OrderByID(orderID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Order{}, apperr.NotFound("order %s does not exist", orderID)
	}
	if err != nil {
		return models.Order{}, err
	}
	if !authz.Can(actor.Role, authz.ActionViewAllOrders) && order.UserID != actor.ID {
		return models.Order{}, apperr.Forbidden("order %s belongs to another customer", orderID)
	}
	return order, nil
}

// GetDetail returns an order together with its conversation thread.
func (s *OrderService) GetDetail(actor models.User, orderID uuid.UUID) (OrderDetail, error) {
	order, err := s.Get(actor, orderID)
	if err != nil {
		return OrderDetail{}, err
	}
	listing := s.decorate([]models.Order{order})[0]
	return OrderDetail{
		Order:    listing,
		Messages: s.store.MessagesByOrder(orderID),
	}, nil
}

// Create places a new sourcing order for a verified customer. The order
// starts as REQUESTED with its first history entry written atomically.
func (s *OrderService) Create(actor models.User, in OrderInput, screenshot *AttachmentUpload) (models.Order, error) {
	if !authz.Can(actor.Role, authz.ActionCreateOrder) {
		return models.Order{}, apperr.Forbidden("role %s may not create orders", actor.Role)
	}
	if !actor.IsVerified {
		return models.Order{}, apperr.Forbidden("identity verification is required before placing orders")
	}

	if err := validateOrderInput(&in); err != nil {
		return models.Order{}, err
	}
	screenshotURL, err := s.validateScreenshot(screenshot)
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		UserID:         actor.ID,
		ProductURL:     in.ProductURL,
		ProductName:    in.ProductName,
		Quantity:       in.Quantity,
		Variation:      in.Variation,
		Specifications: in.Specifications,
		Notes:          in.Notes,
		ScreenshotURL:  screenshotURL,
		Status:         models.StatusRequested,
	}
	if err := s.store.InsertOrder(&order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// SetStatus transitions an order. Staff capability required; terminal orders
// never change, and strict mode keeps the pipeline forward-only. Setting the
// current status again is a no-op that does not grow the history.
func (s *OrderService) SetStatus(actor models.User, orderID uuid.UUID, rawStatus string) (models.Order, error) {
	if !authz.Can(actor.Role, authz.ActionChangeOrderStatus) {
		return models.Order{}, apperr.Forbidden("role %s may not change order status", actor.Role)
	}

	status, err := models.ParseOrderStatus(rawStatus)
	if err != nil {
		return models.Order{}, apperr.Validation("%v", err)
	}

	order, err := s.store.UpdateOrderStatus(orderID, status, s.cfg.StrictStatusFlow)
	if errors.Is(err, store.ErrNotFound) {
		return models.Order{}, apperr.NotFound("order %s does not exist", orderID)
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func validateOrderInput(in *OrderInput) error {
	in.ProductName = strings.TrimSpace(in.ProductName)
	if in.ProductName == "" {
		return apperr.Validation("product name is required")
	}

	in.ProductURL = strings.TrimSpace(in.ProductURL)
	parsed, err := url.Parse(in.ProductURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return apperr.Validation("product URL must be a valid http(s) link")
	}

	if in.Quantity < 1 {
		return apperr.Validation("quantity must be at least 1")
	}

	in.Variation = strings.TrimSpace(in.Variation)
	in.Specifications = strings.TrimSpace(in.Specifications)
	in.Notes = strings.TrimSpace(in.Notes)
	return nil
}

// validateScreenshot enforces the tighter cap for order screenshots; they
// are shown inline on every order card, so the usual image limit is too big.
func (s *OrderService) validateScreenshot(up *AttachmentUpload) (string, error) {
	if up == nil || strings.TrimSpace(up.URL) == "" {
		return "", apperr.Validation("a product screenshot is required")
	}
	if classifyAttachment(up.ContentType) != attachmentImage {
		return "", apperr.Validation("the product screenshot must be an image")
	}
	if up.Size <= 0 || up.Size > s.cfg.MaxOrderScreenshotBytes {
		return "", apperr.Validation("order screenshots are limited to %d bytes", s.cfg.MaxOrderScreenshotBytes)
	}
	return up.URL, nil
}

func (s *OrderService) decorate(orders []models.Order) []OrderListing {
	out := make([]OrderListing, 0, len(orders))
	for _, o := range orders {
		listing := OrderListing{Order: o}
		if owner, err := s.store.UserByID(o.UserID); err == nil {
			listing.OwnerFullName = owner.FullName
		}
		out = append(out, listing)
	}
	return out
}
