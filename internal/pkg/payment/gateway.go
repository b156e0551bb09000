// Package payment talks to the hosted payment gateway used for donations.
package payment

import (
	"context"
	"errors"
)

// StatusSuccess is the gateway transaction status for a completed payment
const StatusSuccess = "success"

// ErrGateway is returned for every gateway failure: outages, unreadable
// responses and rejections alike.
var ErrGateway = errors.New("payment gateway error")

// ErrRejected marks a gateway answer that refused the request (4xx or
// status=false). Errors matching it also match ErrGateway.
var ErrRejected = errors.New("payment rejected by gateway")

// MetadataDonorID is the metadata key carrying the initiating user
const MetadataDonorID = "donor_id"

// InitializeRequest starts a hosted payment
type InitializeRequest struct {
	Email       string
	AmountMinor int64 // amount in minor currency units (cents, kobo)
	Currency    string
	Reference   string
	CallbackURL string
	Metadata    map[string]string
}

// InitializeResult carries the hosted-payment redirect
type InitializeResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// VerifyResult is the gateway's view of a transaction reference
type VerifyResult struct {
	Status      string
	AmountMinor int64
	Currency    string
	Reference   string
	Metadata    map[string]string // metadata sent at initialize, as echoed back
}

// DonorID returns the donor recorded at initialize, or "" when the gateway
// echoed no metadata
func (r *VerifyResult) DonorID() string {
	if r == nil {
		return ""
	}
	return r.Metadata[MetadataDonorID]
}

// Succeeded reports whether the gateway settled the transaction
func (r *VerifyResult) Succeeded() bool {
	return r != nil && r.Status == StatusSuccess
}

// Gateway is the payment collaborator: initialize a transaction, verify a reference
type Gateway interface {
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeResult, error)
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}
