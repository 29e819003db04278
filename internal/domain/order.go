package domain

import "time"

// Customer holds the contact and delivery fields entered at checkout.
type Customer struct {
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	Notes    string `json:"notes,omitempty"`
}

// OrderDraft is the transient snapshot composed into the outbound order message.
// It is never written to the database.
type OrderDraft struct {
	Reference  string     `json:"reference"`
	SessionID  string     `json:"sessionId,omitempty"`
	Customer   Customer   `json:"customer"`
	Lines      []CartLine `json:"lines"`
	TotalCents int64      `json:"totalCents"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}
