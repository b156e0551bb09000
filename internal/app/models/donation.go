package models

import "time"

// Donation is recorded only after the gateway verified the payment.
// Amounts are stored in minor units (kobo/cents).
type Donation struct {
	ID          string    `json:"id" db:"id"`
	AmountMinor int64     `json:"-" db:"amount_minor"`
	Currency    string    `json:"currency" db:"currency"`
	Reference   string    `json:"reference" db:"reference"`
	DonorID     string    `json:"donorId" db:"donor_id"`
	DonorName   string    `json:"donorName,omitempty"`
	Date        time.Time `json:"date" db:"date"`
}

// Amount is the major-unit value
func (d *Donation) Amount() float64 {
	return float64(d.AmountMinor) / 100
}
