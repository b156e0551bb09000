package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/db"
	"github.com/alumnet/backend/internal/pkg/logger"
)

// DonationRepository handles donation database operations
type DonationRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewDonationRepository creates a new DonationRepository
func NewDonationRepository(conn db.DBTX) *DonationRepository {
	return &DonationRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// InsertIfAbsent stores the donation unless one with the same reference
// exists. It reports whether a row was written.
func (r *DonationRepository) InsertIfAbsent(ctx context.Context, donation *models.Donation) (bool, error) {
	donation.ID = newID()
	donation.Date = nowUTC()

	sql, args, err := r.sb.Insert("donations").
		Columns("id", "amount_minor", "currency", "reference", "donor_id", "date").
		Values(donation.ID, donation.AmountMinor, donation.Currency, donation.Reference, donation.DonorID, donation.Date).
		Suffix("ON CONFLICT (reference) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build create donation query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("reference", donation.Reference).Msg("Error executing create donation query")
		return false, fmt.Errorf("error creating donation: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// List returns donations with the donor's name, newest first
func (r *DonationRepository) List(ctx context.Context) ([]*models.Donation, error) {
	sql, args, err := r.sb.Select(
		"d.id", "d.amount_minor", "d.currency", "d.reference", "d.donor_id", "COALESCE(u.name, '')", "d.date",
	).
		From("donations d").
		LeftJoin("users u ON u.id = d.donor_id").
		OrderBy("d.date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list donations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing donations: %w", err)
	}
	defer rows.Close()

	donations := make([]*models.Donation, 0)
	for rows.Next() {
		var d models.Donation
		if err := rows.Scan(&d.ID, &d.AmountMinor, &d.Currency, &d.Reference, &d.DonorID, &d.DonorName, &d.Date); err != nil {
			return nil, fmt.Errorf("error scanning donation: %w", err)
		}
		donations = append(donations, &d)
	}
	return donations, rows.Err()
}
