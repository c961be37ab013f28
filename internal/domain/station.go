package domain

import "time"

// Station is a transit station. Only the identity and display name are
// modeled here; line and route modeling live outside this service.
type Station struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
