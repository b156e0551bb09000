package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/db"
	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/dberrors"
	"github.com/alumnet/backend/internal/pkg/helpers"
	"github.com/alumnet/backend/internal/pkg/logger"
)

var userColumns = []string{
	"id", "email", "password", "name", "graduation_year", "bio", "location",
	"profile_pic", "role", "is_approved", "created_at", "updated_at",
}

// UserRepository handles user database operations
type UserRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(conn db.DBTX) *UserRepository {
	return &UserRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// scanUser reads userColumns (in order) followed by any extra destinations
func scanUser(row pgx.Row, extra ...any) (*models.User, error) {
	var u models.User
	var role string
	dest := []any{
		&u.ID, &u.Email, &u.Password, &u.Name, &u.GraduationYear, &u.Bio, &u.Location,
		&u.ProfilePic, &role, &u.IsApproved, &u.CreatedAt, &u.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	u.Role = models.Role(role)
	return &u, nil
}

func collectUsers(rows pgx.Rows) ([]*models.User, error) {
	defer rows.Close()
	users := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// Create inserts a new user and assigns its ID and timestamps
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.Role == "" {
		user.Role = models.RoleAlumni
	}
	user.ID = newID()
	user.CreatedAt = nowUTC()
	user.UpdatedAt = user.CreatedAt

	sql, args, err := r.sb.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Email, user.Password, user.Name, user.GraduationYear, user.Bio, user.Location,
			user.ProfilePic, string(user.Role), user.IsApproved, user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Expr("LOWER(email) = ?", strings.ToLower(email)))
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = $1)`
	if err := r.db.QueryRow(ctx, query, strings.ToLower(email)).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// UpdateProfile applies the non-nil fields of upd and returns the stored user
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, upd models.ProfileUpdate) (*models.User, error) {
	if upd.Empty() {
		return r.GetByID(ctx, id)
	}

	changes := map[string]interface{}{"updated_at": nowUTC()}
	if upd.Name != nil {
		changes["name"] = *upd.Name
	}
	if upd.Bio != nil {
		changes["bio"] = *upd.Bio
	}
	if upd.Location != nil {
		changes["location"] = *upd.Location
	}
	if upd.GraduationYear != nil {
		changes["graduation_year"] = *upd.GraduationYear
	}
	if upd.ProfilePic != nil {
		changes["profile_pic"] = *upd.ProfilePic
	}

	sql, args, err := r.sb.Update("users").
		SetMap(changes).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update profile query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", id).Msg("Error executing update profile query")
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return user, nil
}

// ListDirectory returns approved users matching the filter, sorted by name
func (r *UserRepository) ListDirectory(ctx context.Context, filter models.DirectoryFilter) ([]*models.User, error) {
	query := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"is_approved": true})

	if filter.Year != nil {
		query = query.Where(squirrel.Eq{"graduation_year": *filter.Year})
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		query = query.Where(squirrel.ILike{"location": helpers.ContainsPattern(loc)})
	}

	sql, args, err := query.OrderBy("name ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build directory query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing directory: %w", err)
	}
	return collectUsers(rows)
}

// ListAll returns every user, newest first
func (r *UserRepository) ListAll(ctx context.Context) ([]*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return collectUsers(rows)
}

// setApprovedSQL locks the row, writes the flag and returns the previous value
// in one statement, so concurrent approvals see a single false->true transition.
var setApprovedSQL = `
UPDATE users AS u SET is_approved = $1, updated_at = $2
FROM (SELECT id, is_approved FROM users WHERE id = $3 FOR UPDATE) AS prev
WHERE u.id = prev.id
RETURNING u.` + strings.Join(userColumns, ", u.") + `, prev.is_approved`

// SetApproved writes the approval flag and reports the value it replaced
func (r *UserRepository) SetApproved(ctx context.Context, id string, approved bool) (*models.User, bool, error) {
	var wasApproved bool
	user, err := scanUser(r.db.QueryRow(ctx, setApprovedSQL, approved, nowUTC(), id), &wasApproved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", id).Msg("Error executing set approval query")
		return nil, false, fmt.Errorf("error updating approval: %w", err)
	}
	return user, wasApproved, nil
}
