package member

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gymflow/gymflow/internal/infrastructure/auth"
	"github.com/gymflow/gymflow/internal/infrastructure/database/dbtest"
	"github.com/gymflow/gymflow/internal/infrastructure/repository"
	"github.com/gymflow/gymflow/internal/shared/biztime"
	"github.com/gymflow/gymflow/internal/shared/constants"
	apperrors "github.com/gymflow/gymflow/internal/shared/errors"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

func TestCreate(t *testing.T) {
	gdb := dbtest.Open(t)
	ctx := context.Background()
	log := logger.NewNopLogger()
	hasher := auth.NewBcryptPasswordHasher(bcrypt.MinCost)

	m, err := Create(ctx, gdb, hasher, "Alex@Example.com", "Alex Doe", "s3cret-pass", log)
	require.NoError(t, err)
	assert.NotZero(t, m.ID())
	assert.Equal(t, "alex@example.com", m.Email())

	stored, err := repository.NewMemberRepository(gdb, log).GetByID(ctx, m.ID())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NoError(t, hasher.Verify("s3cret-pass", stored.PasswordHash()))

	_, err = Create(ctx, gdb, hasher, "alex@example.com", "Someone Else", "another-pass", log)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestCreate_Rejects(t *testing.T) {
	gdb := dbtest.Open(t)
	log := logger.NewNopLogger()
	hasher := auth.NewBcryptPasswordHasher(bcrypt.MinCost)

	_, err := Create(context.Background(), gdb, hasher, "a@example.com", "A", "short", log)
	assert.True(t, apperrors.IsValidationError(err))

	_, err = Create(context.Background(), gdb, hasher, "not-an-email", "A", "long-enough", log)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestIssueToken(t *testing.T) {
	svc := auth.NewJWTService("secret", 15, biztime.NewFixedClock(time.Now()))

	token, err := IssueToken(svc, 7, constants.RoleFrontDesk)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.MemberID)
	assert.Equal(t, constants.RoleFrontDesk, claims.Role)

	_, err = IssueToken(svc, 7, "janitor")
	assert.True(t, apperrors.IsValidationError(err))

	_, err = IssueToken(svc, 0, constants.RoleMember)
	assert.True(t, apperrors.IsValidationError(err))
}
