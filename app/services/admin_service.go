package services

import (
	"context"
	"errors"
	"time"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/repositories"
	"github.com/chitralaya/chitralaya/app/services/apperr"
	"github.com/chitralaya/chitralaya/pkg/cache"
	"github.com/chitralaya/chitralaya/pkg/orm"
)

const (
	dashboardCacheKey = "chitralaya:admin:dashboard"
	dashboardCacheTTL = time.Minute
)

type AdminService struct {
	users    *repositories.UserRepository
	products *repositories.ProductRepository
	orders   *repositories.OrderRepository
}

func NewAdminService(
	users *repositories.UserRepository,
	products *repositories.ProductRepository,
	orders *repositories.OrderRepository,
) *AdminService {
	return &AdminService{users: users, products: products, orders: orders}
}

type DashboardStats struct {
	TotalProducts int64          `json:"totalProducts"`
	TotalOrders   int64          `json:"totalOrders"`
	TotalUsers    int64          `json:"totalUsers"`
	TotalRevenue  float64        `json:"totalRevenue"`
	RecentOrders  []models.Order `json:"recentOrders"`
}

// Dashboard returns the back-office headline numbers, served from the
// Redis cache when warm.
func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var cached DashboardStats
	if cache.Get(ctx, dashboardCacheKey, &cached) {
		return &cached, nil
	}
	return s.RefreshDashboard(ctx)
}

// RefreshDashboard recomputes the stats and rewrites the cache. The
// scheduler calls it every minute so admin page loads stay warm.
func (s *AdminService) RefreshDashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.TotalProducts, err = s.products.CountActive(); err != nil {
		return nil, apperr.Server("Failed to count products", err)
	}
	if stats.TotalOrders, err = s.orders.Count(); err != nil {
		return nil, apperr.Server("Failed to count orders", err)
	}
	if stats.TotalUsers, err = s.users.Count(); err != nil {
		return nil, apperr.Server("Failed to count users", err)
	}
	if stats.TotalRevenue, err = s.orders.Revenue(); err != nil {
		return nil, apperr.Server("Failed to sum revenue", err)
	}
	if stats.RecentOrders, err = s.orders.Recent(5); err != nil {
		return nil, apperr.Server("Failed to load recent orders", err)
	}

	cache.Set(ctx, dashboardCacheKey, stats, dashboardCacheTTL)
	return stats, nil
}

type AdminUserUpdateInput struct {
	FirstName string `json:"firstName" validate:"nullable|max:100"`
	LastName  string `json:"lastName" validate:"nullable|max:100"`
	Phone     string `json:"phone" validate:"nullable|digits:10"`
	Role      string `json:"role" validate:"nullable|in:user,admin"`
	IsActive  *bool  `json:"isActive"`
}

func (s *AdminService) ListUsers(page, limit int) ([]models.User, orm.Pagination, error) {
	users, p, err := s.users.List(page, limit)
	if err != nil {
		return nil, p, apperr.Server("Failed to load users", err)
	}
	return users, p, nil
}

func (s *AdminService) GetUser(id uint) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Server("Failed to load user", err)
	}
	return user, nil
}

// UpdateUser applies a partial update. Passwords are never set this
// way; the password hash is untouched.
func (s *AdminService) UpdateUser(id uint, input AdminUserUpdateInput) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.users.Save(user); err != nil {
		return nil, apperr.Server("Failed to update user", err)
	}
	return user, nil
}

// DeleteUser removes the account. Past orders keep their shipping
// snapshots, so order history survives the deletion.
func (s *AdminService) DeleteUser(id uint) error {
	if err := s.users.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperr.NotFound("User not found")
		}
		return apperr.Server("Failed to delete user", err)
	}
	return nil
}
