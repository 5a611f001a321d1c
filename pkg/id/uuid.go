package id

import "github.com/google/uuid"

// GetUUID generates a new random (v4) UUID.
func GetUUID() string {
	return uuid.NewString()
}
