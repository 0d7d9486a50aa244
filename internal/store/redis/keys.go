package redis

const (
	// KeyPrefixBooking is the prefix for individual booking records
	KeyPrefixBooking = "revshare:booking:"
	// KeyAllBookings is the set holding every booking id
	KeyAllBookings = "revshare:bookings:all"
)

// BookingKey returns the Redis key for a booking by ID
func BookingKey(id string) string {
	return KeyPrefixBooking + id
}
