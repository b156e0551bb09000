package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/pkg/apperrors"
)

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	prev := nowUTC
	nowUTC = func() time.Time { return fixedNow }
	t.Cleanup(func() {
		nowUTC = prev
		mock.Close()
	})
	return mock
}

func anyArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func userRow(id, name string, approved bool) []interface{} {
	return []interface{}{
		id, id + "@example.com", "$2a$12$hash", name, 2012, "", "Lagos", "",
		"alumni", approved, fixedNow, fixedNow,
	}
}

func TestUserCreateAssignsIDAndDefaults(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("INSERT INTO users").
		WithArgs(anyArgs(12)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	u := &models.User{Email: "ada@example.com", Password: "hash", Name: "Ada", GraduationYear: 2012}
	require.NoError(t, NewUserRepository(mock).Create(context.Background(), u))

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, models.RoleAlumni, u.Role)
	assert.False(t, u.IsApproved)
	assert.Equal(t, fixedNow, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("INSERT INTO users").
		WithArgs(anyArgs(12)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})

	err := NewUserRepository(mock).Create(context.Background(), &models.User{Email: "ada@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByEmailNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE LOWER\(email\) = \$1`).
		WithArgs("ada@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := NewUserRepository(mock).GetByEmail(context.Background(), "Ada@Example.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByID(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(userRow("u1", "Ada", true)...))

	u, err := NewUserRepository(mock).GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, models.RoleAlumni, u.Role)
	assert.True(t, u.IsApproved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDirectoryAppliesFilters(t *testing.T) {
	mock := newMock(t)
	year := 2012
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE is_approved = \$1 AND graduation_year = \$2 AND location ILIKE \$3 ORDER BY name ASC`).
		WithArgs(true, 2012, `%lag\_os%`).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(userRow("u1", "Ada", true)...).
			AddRow(userRow("u2", "Bola", true)...))

	users, err := NewUserRepository(mock).ListDirectory(context.Background(), models.DirectoryFilter{Year: &year, Location: " lag_os "})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ada", users[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDirectoryWithoutFilters(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE is_approved = \$1 ORDER BY name ASC`).
		WithArgs(true).
		WillReturnRows(pgxmock.NewRows(userColumns))

	users, err := NewUserRepository(mock).ListDirectory(context.Background(), models.DirectoryFilter{})
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfileSetsOnlyGivenFields(t *testing.T) {
	mock := newMock(t)
	name := "Ada O."
	mock.ExpectQuery(`UPDATE users SET name = \$1, updated_at = \$2 WHERE id = \$3 RETURNING`).
		WithArgs(name, fixedNow, "u1").
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(userRow("u1", name, true)...))

	u, err := NewUserRepository(mock).UpdateProfile(context.Background(), "u1", models.ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, u.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetApprovedReportsPreviousValue(t *testing.T) {
	mock := newMock(t)
	cols := append(append([]string{}, userColumns...), "was_approved")
	mock.ExpectQuery(`UPDATE users AS u SET is_approved`).
		WithArgs(true, fixedNow, "u1").
		WillReturnRows(pgxmock.NewRows(cols).AddRow(append(userRow("u1", "Ada", true), false)...))

	u, was, err := NewUserRepository(mock).SetApproved(context.Background(), "u1", true)
	require.NoError(t, err)
	assert.True(t, u.IsApproved)
	assert.False(t, was)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetApprovedMissingUser(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE users AS u SET is_approved`).
		WithArgs(true, fixedNow, "nope").
		WillReturnError(pgx.ErrNoRows)

	_, _, err := NewUserRepository(mock).SetApproved(context.Background(), "nope", true)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestEventListResolvesCreatorName(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT (.+) FROM events e LEFT JOIN users u ON u.id = e.creator_id ORDER BY e.date DESC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "description", "date", "location", "creator_id", "name", "created_at"}).
			AddRow("e1", "Homecoming", "Annual", fixedNow, "Main hall", "u1", "Ada", fixedNow))

	events, err := NewEventRepository(mock).List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Ada", events[0].CreatorName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsCreateDefaultsDate(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("INSERT INTO news").
		WithArgs(pgxmock.AnyArg(), "Title", "Body", "admin1", fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	n := &models.News{Title: "Title", Content: "Body", AuthorID: "admin1"}
	require.NoError(t, NewNewsRepository(mock).Create(context.Background(), n))
	assert.Equal(t, fixedNow, n.Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForumAppendReplyIsSingleStatement(t *testing.T) {
	mock := newMock(t)
	replies := []byte(`[{"content":"first","author":"u2","date":"2026-05-01T11:00:00Z"},{"content":"second","author":"u1","date":"2026-05-01T12:00:00Z"}]`)

	mock.ExpectQuery(`UPDATE forum_threads SET replies = replies \|\| jsonb_build_array\(\$1::jsonb\) WHERE id = \$2 RETURNING`).
		WithArgs(pgxmock.AnyArg(), "t1").
		WillReturnRows(pgxmock.NewRows(threadColumns).AddRow("t1", "Reunion", "Who is coming?", "u1", fixedNow, replies))
	mock.ExpectQuery(`SELECT id, name FROM users WHERE id IN \(\$1,\$2\)`).
		WithArgs("u1", "u2").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow("u1", "Ada").AddRow("u2", "Bola"))

	thread, err := NewForumRepository(mock).AppendReply(context.Background(), "t1", models.Reply{Content: "second", Author: "u1"})
	require.NoError(t, err)
	require.Len(t, thread.Replies, 2)
	assert.Equal(t, "first", thread.Replies[0].Content)
	assert.Equal(t, "second", thread.Replies[1].Content)
	assert.Equal(t, "Bola", thread.Replies[0].AuthorName)
	assert.Equal(t, "Ada", thread.AuthorName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForumAppendReplyMissingThread(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE forum_threads`).
		WithArgs(pgxmock.AnyArg(), "missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := NewForumRepository(mock).AppendReply(context.Background(), "missing", models.Reply{Content: "hi", Author: "u1"})
	assert.ErrorIs(t, err, apperrors.ErrThreadNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDonationInsertIfAbsent(t *testing.T) {
	mock := newMock(t)
	repo := NewDonationRepository(mock)

	mock.ExpectExec(`INSERT INTO donations (.+) ON CONFLICT \(reference\) DO NOTHING`).
		WithArgs(pgxmock.AnyArg(), int64(10000), "USD", "don_1", "u1", fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO donations (.+) ON CONFLICT \(reference\) DO NOTHING`).
		WithArgs(pgxmock.AnyArg(), int64(10000), "USD", "don_1", "u1", fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	inserted, err := repo.InsertIfAbsent(context.Background(), &models.Donation{AmountMinor: 10000, Currency: "USD", Reference: "don_1", DonorID: "u1"})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertIfAbsent(context.Background(), &models.Donation{AmountMinor: 10000, Currency: "USD", Reference: "don_1", DonorID: "u1"})
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDonationListConvertsAmount(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT (.+) FROM donations d LEFT JOIN users u ON u.id = d.donor_id ORDER BY d.date DESC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "amount_minor", "currency", "reference", "donor_id", "name", "date"}).
			AddRow("d1", int64(12345), "NGN", "don_2", "u1", "Ada", fixedNow))

	donations, err := NewDonationRepository(mock).List(context.Background())
	require.NoError(t, err)
	require.Len(t, donations, 1)
	assert.InDelta(t, 123.45, donations[0].Amount(), 0.0001)
	assert.Equal(t, "Ada", donations[0].DonorName)
}

func TestBoardMinuteCreate(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("INSERT INTO board_minutes").
		WithArgs(pgxmock.AnyArg(), "AGM 2026", "https://cdn.example.com/board-minutes/x.pdf", fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	m := &models.BoardMinute{Title: "AGM 2026", FileURL: "https://cdn.example.com/board-minutes/x.pdf"}
	require.NoError(t, NewBoardMinuteRepository(mock).Create(context.Background(), m))
	assert.NotEmpty(t, m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryList(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT (.+) FROM gallery g LEFT JOIN users u`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "url", "caption", "uploader_id", "name", "date"}).
			AddRow("g1", "https://cdn.example.com/gallery/a.jpg", "Reunion", "u1", "Ada", fixedNow))

	items, err := NewGalleryRepository(mock).List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ada", items[0].UploaderName)
}
