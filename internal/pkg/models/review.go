package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a post-trip rating one party of an order leaves for the other
type Review struct {
	ID         uuid.UUID `json:"id" db:"id"`
	OrderID    uuid.UUID `json:"order_id" db:"order_id"`
	ReviewerID uuid.UUID `json:"reviewer_id" db:"reviewer_id"`
	RevieweeID uuid.UUID `json:"reviewee_id" db:"reviewee_id"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// SubmitReviewRequest is the payload used to review the other party of an order
type SubmitReviewRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
	Rating  int       `json:"rating" validate:"required,min=1,max=5"`
	Comment string    `json:"comment" validate:"max=1000"`
}
