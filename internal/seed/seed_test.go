package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appModels "github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/pkg/auth"
	"github.com/alumnet/backend/internal/testutil"
)

func TestCreateDefaultAdmin(t *testing.T) {
	users := testutil.NewUserStore()
	admin := AdminAccount{Email: " Admin@Example.com ", Password: "changeme", Name: "Root"}

	require.NoError(t, CreateDefaultAdmin(context.Background(), users, admin, zerolog.Nop()))

	u, err := users.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, appModels.RoleAdmin, u.Role)
	assert.True(t, u.IsApproved)
	assert.Equal(t, "Root", u.Name)
	assert.True(t, auth.CheckPassword(u.Password, "changeme"))

	// A second run is a no-op
	require.NoError(t, CreateDefaultAdmin(context.Background(), users, admin, zerolog.Nop()))
	assert.Equal(t, 1, users.Count())
}

func TestCreateDefaultAdminSkipsWithoutCredentials(t *testing.T) {
	users := testutil.NewUserStore()
	require.NoError(t, CreateDefaultAdmin(context.Background(), users, AdminAccount{Email: "admin@example.com"}, zerolog.Nop()))
	assert.Equal(t, 0, users.Count())
}
