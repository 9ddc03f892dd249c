package admin

import (
	"consultly/models"

	bookingRepo "consultly/database/repository/booking"
	userRepo "consultly/database/repository/user"

	"go.mongodb.org/mongo-driver/bson"
)

// AdminService aggregates the platform overview shown on the admin dashboard.
type AdminService interface {
	Dashboard() (*models.DashboardStats, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
}

func NewDefaultAdminService(bookings bookingRepo.BookingRepository, users userRepo.UserRepository) AdminService {
	return &DefaultAdminService{Bookings: bookings, Users: users}
}

// recentBookingsLimit bounds the dashboard's recent-activity list.
const recentBookingsLimit = 10

// Dashboard collects account totals, booking counts by status, gross revenue
// from paid bookings, and the latest bookings.
func (s *DefaultAdminService) Dashboard() (*models.DashboardStats, error) {
	users, err := s.Users.CountByRole(models.RoleUser)
	if err != nil {
		return nil, err
	}
	providers, err := s.Users.CountByRole(models.RoleProvider)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.Count(bson.M{})
	if err != nil {
		return nil, err
	}
	byStatus, err := s.Bookings.CountByStatus()
	if err != nil {
		return nil, err
	}
	revenue, err := s.Bookings.RevenueTotal()
	if err != nil {
		return nil, err
	}
	recent, err := s.Bookings.Recent(recentBookingsLimit)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		Users:            users,
		Providers:        providers,
		Bookings:         bookings,
		BookingsByStatus: byStatus,
		Revenue:          revenue,
		RecentBookings:   recent,
	}, nil
}
