package entity

import "time"

// Valid roles for User. Role is fixed at registration and never changes.
const (
	RoleDistributor  = "distributor"
	RoleConsumer     = "consumer"
	RoleManufacturer = "manufacturer"
)

// ValidRole reports whether s is one of the closed role set.
func ValidRole(s string) bool {
	switch s {
	case RoleDistributor, RoleConsumer, RoleManufacturer:
		return true
	}
	return false
}

// User represents an account on the marketplace.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext once persisted
	Name         string
	Role         string // distributor, consumer, manufacturer
	Phone        string
	Address      string
	CreatedAt    time.Time
}
