package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/app/models/dto"
	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/payment"
)

// Supported donation currencies
const (
	CurrencyUSD = "USD"
	CurrencyNGN = "NGN"
)

// DonationService runs the donation payment flow
type DonationService interface {
	CreatePayment(ctx context.Context, donorID string, amount float64, currency string) (*dto.CreatePaymentResponse, error)
	VerifyPayment(ctx context.Context, donorID, reference string) (*dto.VerifyPaymentResponse, error)
	ListDonations(ctx context.Context) ([]*models.Donation, error)
}

type donationServiceImpl struct {
	donationRepo DonationStore
	userRepo     UserStore
	gateway      payment.Gateway
	callbackURL  string
	logger       zerolog.Logger
	now          func() time.Time
}

// NewDonationService creates a new DonationService
func NewDonationService(
	donationRepo DonationStore,
	userRepo UserStore,
	gateway payment.Gateway,
	callbackURL string,
	logger zerolog.Logger,
) DonationService {
	return &donationServiceImpl{
		donationRepo: donationRepo,
		userRepo:     userRepo,
		gateway:      gateway,
		callbackURL:  callbackURL,
		logger:       logger,
		now:          time.Now,
	}
}

// NormalizeCurrency maps "usd" in any case to USD and everything else to NGN
func NormalizeCurrency(currency string) string {
	if strings.EqualFold(strings.TrimSpace(currency), CurrencyUSD) {
		return CurrencyUSD
	}
	return CurrencyNGN
}

// MaxAmount is the largest donation accepted in major units
const MaxAmount = 1_000_000_000

// ToMinorUnits converts a major-unit amount to cents/kobo. Callers bound the
// amount by MaxAmount first.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func verificationFailed() error {
	return apperrors.NewCustomError(apperrors.ErrPaymentVerificationFailed, "Payment verification failed")
}

// newReference is "don_<unix-ms>_<random>"
func (s *donationServiceImpl) newReference() string {
	return fmt.Sprintf("don_%d_%s", s.now().UnixMilli(), xid.New().String())
}

// CreatePayment validates the amount and starts a hosted payment. Nothing is
// stored until the payment is verified.
func (s *donationServiceImpl) CreatePayment(ctx context.Context, donorID string, amount float64, currency string) (*dto.CreatePaymentResponse, error) {
	if math.IsNaN(amount) || amount < 1 {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidAmount, "Amount must be at least 1")
	}
	if amount > MaxAmount {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidAmount, "Amount must not exceed 1000000000")
	}

	donor, err := s.userRepo.GetByID(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load donor: %w", err)
	}

	reference := s.newReference()
	result, err := s.gateway.Initialize(ctx, payment.InitializeRequest{
		Email:       donor.Email,
		AmountMinor: ToMinorUnits(amount),
		Currency:    NormalizeCurrency(currency),
		Reference:   reference,
		CallbackURL: s.callbackURL,
		Metadata:    map[string]string{payment.MetadataDonorID: donor.ID},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: initialize payment: %v", apperrors.ErrExternalService, err)
	}

	s.logger.Info().Str("reference", reference).Str("donorID", donorID).Msg("Donation payment initialized")
	return &dto.CreatePaymentResponse{AuthorizationURL: result.AuthorizationURL, Reference: reference}, nil
}

// VerifyPayment asks the gateway about reference and records the donation on
// success. Verifying the same reference again succeeds without a second record.
func (s *donationServiceImpl) VerifyPayment(ctx context.Context, donorID, reference string) (*dto.VerifyPaymentResponse, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, apperrors.NewMissingFieldError("Reference is required")
	}

	result, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		if errors.Is(err, payment.ErrRejected) {
			s.logger.Warn().Err(err).Str("reference", reference).Msg("Gateway rejected verification")
			return nil, verificationFailed()
		}
		return nil, fmt.Errorf("%w: verify payment: %v", apperrors.ErrExternalService, err)
	}

	if !result.Succeeded() || result.AmountMinor <= 0 {
		s.logger.Info().Str("reference", reference).Str("status", result.Status).Msg("Payment not successful")
		return nil, verificationFailed()
	}
	if owner := result.DonorID(); owner != "" && owner != donorID {
		s.logger.Warn().Str("reference", reference).Str("donorID", owner).Str("callerID", donorID).
			Msg("Payment reference verified by a different user")
		return nil, verificationFailed()
	}

	currency := strings.ToUpper(strings.TrimSpace(result.Currency))
	if currency == "" {
		currency = CurrencyNGN
	}

	inserted, err := s.donationRepo.InsertIfAbsent(ctx, &models.Donation{
		AmountMinor: result.AmountMinor,
		Currency:    currency,
		Reference:   reference,
		DonorID:     donorID,
	})
	if err != nil {
		return nil, err
	}
	if !inserted {
		s.logger.Info().Str("reference", reference).Msg("Donation already recorded")
	}

	return &dto.VerifyPaymentResponse{Success: true, Message: "Payment verified successfully"}, nil
}

// ListDonations returns donations, newest first
func (s *donationServiceImpl) ListDonations(ctx context.Context) ([]*models.Donation, error) {
	return s.donationRepo.List(ctx)
}
