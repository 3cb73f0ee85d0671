package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/brucekarangwamanzi/tuma-tr/internal/apperr"
	"github.com/brucekarangwamanzi/tuma-tr/internal/authz"
	"github.com/brucekarangwamanzi/tuma-tr/internal/config"
	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
	"github.com/brucekarangwamanzi/tuma-tr/internal/store"
)

// MessageService manages the per-order conversation threads between
// customers and staff.
type MessageService struct {
	store *store.Store
	cfg   *config.Config
}

// NewMessageService constructs MessageService.
func NewMessageService(st *store.Store, cfg *config.Config) *MessageService {
	return &MessageService{store: st, cfg: cfg}
}

// List returns an order's thread, enforcing ownership scope for customers.
func (s *MessageService) List(actor models.User, orderID uuid.UUID) ([]models.Message, error) {
	if _, err := s.scopedOrder(actor, orderID); err != nil {
		return nil, err
	}
	return s.store.MessagesByOrder(orderID), nil
}

// Send appends a message to an order's thread and returns the stored record.
// At least one of text and attachment is required. The receiver is inferred:
// customers write to the assigned processor, staff write to the order owner.
func (s *MessageService) Send(actor models.User, orderID uuid.UUID, text string, attachment *AttachmentUpload) (models.Message, error) {
	order, err := s.scopedOrder(actor, orderID)
	if err != nil {
		return models.Message{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" && attachment == nil {
		return models.Message{}, apperr.Validation("a message needs text or an attachment")
	}

	receiverID, err := s.resolveReceiver(actor, order)
	if err != nil {
		return models.Message{}, err
	}

	message := models.Message{
		OrderID:        orderID,
		SenderID:       actor.ID,
		ReceiverID:     receiverID,
		SenderFullName: actor.FullName,
		Text:           text,
	}

	if attachment != nil {
		class, err := validateAttachment(s.cfg, attachment)
		if err != nil {
			return models.Message{}, err
		}
		switch class {
		case attachmentImage:
			message.ImageURL = attachment.URL
		case attachmentVideo:
			message.VideoURL = attachment.URL
		default:
			message.DocURL = attachment.URL
		}
	}

	stored, err := s.store.AppendMessage(&message)
	if errors.Is(err, store.ErrNotFound) {
		return models.Message{}, apperr.NotFound("order %s does not exist", orderID)
	}
	if err != nil {
		return models.Message{}, err
	}
	return stored, nil
}

// scopedOrder loads the order and verifies the actor may take part in its
// conversation.
func (s *MessageService) scopedOrder(actor models.User, orderID uuid.UUID) (models.Order, error) {
	order, err := s.store.OrderByID(orderID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Order{}, apperr.NotFound("order %s does not exist", orderID)
	}
	if err != nil {
		return models.Order{}, err
	}
	if !authz.Can(actor.Role, authz.ActionViewAllConversations) && order.UserID != actor.ID {
		return models.Order{}, apperr.Forbidden("order %s belongs to another customer", orderID)
	}
	return order, nil
}

func (s *MessageService) resolveReceiver(actor models.User, order models.Order) (uuid.UUID, error) {
	if actor.Role.IsStaff() {
		return order.UserID, nil
	}

	if s.cfg.ProcessorEmail != "" {
		processor, err := s.store.UserByEmail(s.cfg.ProcessorEmail)
		if err == nil && processor.Role == models.RoleOrderProcessor {
			return processor.ID, nil
		}
	}
	processor, err := s.store.FirstUserByRole(models.RoleOrderProcessor)
	if errors.Is(err, store.ErrNotFound) {
		return uuid.Nil, apperr.Conflict("no order processor is available to receive messages")
	}
	if err != nil {
		return uuid.Nil, err
	}
	return processor.ID, nil
}
