package dto

import (
	"time"

	"github.com/alumnet/backend/internal/app/models"
)

// CreatePaymentRequest starts a donation
type CreatePaymentRequest struct {
	Amount   float64 `json:"amount" example:"100"`
	Currency string  `json:"currency" example:"usd"`
}

// CreatePaymentResponse carries the hosted-payment redirect
type CreatePaymentResponse struct {
	AuthorizationURL string `json:"authorization_url" example:"https://checkout.paystack.com/abc"`
	Reference        string `json:"reference" example:"don_1767225600000_d0c5g0a1s2r3t4u5v6w7"`
}

// VerifyPaymentResponse reports the verification outcome
type VerifyPaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DonationResponse is a donation with its amount in major units
type DonationResponse struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount" example:"100"`
	Currency  string    `json:"currency" example:"USD"`
	Reference string    `json:"reference"`
	DonorID   string    `json:"donorId"`
	DonorName string    `json:"donorName,omitempty"`
	Date      time.Time `json:"date"`
}

// NewDonationResponses converts donations
func NewDonationResponses(donations []*models.Donation) []DonationResponse {
	out := make([]DonationResponse, 0, len(donations))
	for _, d := range donations {
		out = append(out, DonationResponse{
			ID:        d.ID,
			Amount:    d.Amount(),
			Currency:  d.Currency,
			Reference: d.Reference,
			DonorID:   d.DonorID,
			DonorName: d.DonorName,
			Date:      d.Date,
		})
	}
	return out
}
