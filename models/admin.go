package models

// DashboardStats is the admin overview: account totals, bookings broken down
// by status, and gross revenue from successfully paid bookings.
type DashboardStats struct {
	Users            int64            `json:"users"`
	Providers        int64            `json:"providers"`
	Bookings         int64            `json:"bookings"`
	BookingsByStatus map[string]int64 `json:"bookingsByStatus"`
	Revenue          float64          `json:"revenue"`
	RecentBookings   []Booking        `json:"recentBookings"`
}
