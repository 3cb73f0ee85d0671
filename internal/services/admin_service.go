package services

import (
	"github.com/brucekarangwamanzi/tuma-tr/internal/apperr"
	"github.com/brucekarangwamanzi/tuma-tr/internal/authz"
	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
	"github.com/brucekarangwamanzi/tuma-tr/internal/store"
)

// AdminService serves the back-office dashboard.
type AdminService struct {
	store *store.Store
}

// NewAdminService constructs AdminService.
func NewAdminService(st *store.Store) *AdminService {
	return &AdminService{store: st}
}

// DashboardStats aggregates the headline numbers for the staff dashboard.
type DashboardStats struct {
	TotalUsers           int                        `json:"total_users"`
	TotalOrders          int                        `json:"total_orders"`
	OrdersByStatus       map[models.OrderStatus]int `json:"orders_by_status"`
	PendingVerifications int                        `json:"pending_verifications"`
}

// Stats returns aggregate statistics for staff dashboards.
func (s *AdminService) Stats(actor models.User) (DashboardStats, error) {
	if !authz.Can(actor.Role, authz.ActionViewAllOrders) {
		return DashboardStats{}, apperr.Forbidden("role %s may not view dashboard statistics", actor.Role)
	}

	byStatus := s.store.CountOrdersByStatus()
	total := 0
	for _, n := range byStatus {
		total += n
	}

	return DashboardStats{
		TotalUsers:           len(s.store.ListUsers()),
		TotalOrders:          total,
		OrdersByStatus:       byStatus,
		PendingVerifications: len(s.store.PendingVerifications()),
	}, nil
}
