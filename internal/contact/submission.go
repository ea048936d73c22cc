package contact

import "time"

// Form carries the raw contact-form fields. All fields are required; no
// format validation is applied beyond that (free-text contract from the site).
type Form struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	City    string `json:"city" binding:"required"`
	Service string `json:"service" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Submission is a persisted contact-form entry. Submissions are append-only:
// never updated or deleted by this service.
type Submission struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	City      string    `json:"city" bson:"city"`
	Service   string    `json:"service" bson:"service"`
	Message   string    `json:"message" bson:"message"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
