package payment

import "context"

// Status is the outcome reported by a gateway for a charge.
type Status string

const (
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

// Request describes a charge to be placed against a buyer's card.
type Request struct {
	UserID     string
	CardNumber string
	Amount     float64
	Currency   string
	Reference  string
}

// Result is a gateway's answer to a charge request.
type Result struct {
	Status    Status
	Reference string
	Reason    string
}

// Gateway is the external payment collaborator. A charge either completes
// with an approved/declined result or fails with a transport error.
type Gateway interface {
	Charge(ctx context.Context, req Request) (Result, error)
}
