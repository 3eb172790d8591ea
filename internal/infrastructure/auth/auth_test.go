package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/shared/biztime"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

var issuedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	clock := biztime.NewFixedClock(issuedAt)
	svc := NewJWTService("secret", 15, clock)

	token, err := svc.Generate(42, "member")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.MemberID)
	assert.Equal(t, "member", claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	clock := biztime.NewFixedClock(issuedAt)
	svc := NewJWTService("secret", 15, clock)

	token, err := svc.Generate(42, "member")
	require.NoError(t, err)

	clock.Advance(16 * time.Minute)
	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	clock := biztime.NewFixedClock(issuedAt)
	token, err := NewJWTService("secret", 15, clock).Generate(42, "member")
	require.NoError(t, err)

	_, err = NewJWTService("other", 15, clock).Verify(token)
	assert.Error(t, err)
}

func TestReceiptVerifier(t *testing.T) {
	clock := biztime.NewFixedClock(issuedAt)
	v := NewReceiptVerifier("pay-secret", clock, logger.NewNopLogger())
	ctx := context.Background()

	valid, err := IssueReceipt("pay-secret", 42, "req-1", 2000, issuedAt, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name      string
		receipt   string
		memberID  uint
		reference string
		amount    int64
		wantErr   bool
	}{
		{"exact amount", valid, 42, "req-1", 2000, false},
		{"amount above due", valid, 42, "req-1", 1500, true},
		{"underpaid", valid, 42, "req-1", 2001, true},
		{"other member", valid, 7, "req-1", 2000, true},
		{"other request", valid, 42, "req-2", 2000, true},
		{"missing", "", 42, "req-1", 2000, true},
		{"garbage", "not-a-jwt", 42, "req-1", 2000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := v.VerifyPayment(ctx, tt.receipt, tt.memberID, tt.reference, tt.amount)
			if tt.wantErr {
				assert.ErrorIs(t, err, membership.ErrUnauthorized)
				assert.Empty(t, key)
				return
			}
			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(key, "jti:"), key)
		})
	}
}

func TestReceiptVerifier_WrongSecretAndExpiry(t *testing.T) {
	clock := biztime.NewFixedClock(issuedAt)
	v := NewReceiptVerifier("pay-secret", clock, logger.NewNopLogger())

	forged, err := IssueReceipt("guess", 42, "plan:3", 5000, issuedAt, time.Hour)
	require.NoError(t, err)
	_, err = v.VerifyPayment(context.Background(), forged, 42, "plan:3", 5000)
	assert.ErrorIs(t, err, membership.ErrUnauthorized)

	stale, err := IssueReceipt("pay-secret", 42, "plan:3", 5000, issuedAt, time.Minute)
	require.NoError(t, err)
	clock.Advance(2 * time.Minute)
	_, err = v.VerifyPayment(context.Background(), stale, 42, "plan:3", 5000)
	assert.ErrorIs(t, err, membership.ErrUnauthorized)
}

func signReceipt(t *testing.T, secret string, claims *ReceiptClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestReceiptVerifier_RequiresExpiry(t *testing.T) {
	v := NewReceiptVerifier("pay-secret", biztime.NewFixedClock(issuedAt), logger.NewNopLogger())

	forever := signReceipt(t, "pay-secret", &ReceiptClaims{
		MemberID:         42,
		Reference:        "plan:3",
		AmountMinorUnits: 5000,
		RegisteredClaims: jwt.RegisteredClaims{ID: "rcpt-1", IssuedAt: jwt.NewNumericDate(issuedAt)},
	})

	key, err := v.VerifyPayment(context.Background(), forever, 42, "plan:3", 5000)
	assert.ErrorIs(t, err, membership.ErrUnauthorized)
	assert.Empty(t, key)
}

func TestReceiptVerifier_ReceiptKey(t *testing.T) {
	v := NewReceiptVerifier("pay-secret", biztime.NewFixedClock(issuedAt), logger.NewNopLogger())
	ctx := context.Background()
	claims := func(id string, amount int64) *ReceiptClaims {
		return &ReceiptClaims{
			MemberID:         42,
			Reference:        "plan:3",
			AmountMinorUnits: amount,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        id,
				IssuedAt:  jwt.NewNumericDate(issuedAt),
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			},
		}
	}

	t.Run("uses the jti", func(t *testing.T) {
		key, err := v.VerifyPayment(ctx, signReceipt(t, "pay-secret", claims("rcpt-1", 5000)), 42, "plan:3", 5000)
		require.NoError(t, err)
		assert.Equal(t, "jti:rcpt-1", key)
	})

	t.Run("long jti is digested", func(t *testing.T) {
		key, err := v.VerifyPayment(ctx, signReceipt(t, "pay-secret", claims(strings.Repeat("x", 200), 5000)), 42, "plan:3", 5000)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, "jti-sha256:"), key)
		assert.LessOrEqual(t, len(key), 100)
	})

	t.Run("without a jti the signature identifies the receipt", func(t *testing.T) {
		receipt := signReceipt(t, "pay-secret", claims("", 5000))

		first, err := v.VerifyPayment(ctx, receipt, 42, "plan:3", 5000)
		require.NoError(t, err)
		again, err := v.VerifyPayment(ctx, receipt, 42, "plan:3", 5000)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(first, "sig-sha256:"), first)
		assert.Equal(t, first, again)
	})

	t.Run("issued receipts are distinct", func(t *testing.T) {
		a, err := IssueReceipt("pay-secret", 42, "plan:3", 5000, issuedAt, time.Hour)
		require.NoError(t, err)
		b, err := IssueReceipt("pay-secret", 42, "plan:3", 5000, issuedAt, time.Hour)
		require.NoError(t, err)

		keyA, err := v.VerifyPayment(ctx, a, 42, "plan:3", 5000)
		require.NoError(t, err)
		keyB, err := v.VerifyPayment(ctx, b, 42, "plan:3", 5000)
		require.NoError(t, err)
		assert.NotEqual(t, keyA, keyB)
	})
}

type memberStub struct {
	members map[uint]*member.Member
}

func (s *memberStub) Create(ctx context.Context, m *member.Member) error { return nil }
func (s *memberStub) GetByID(ctx context.Context, id uint) (*member.Member, error) {
	return s.members[id], nil
}
func (s *memberStub) GetByEmail(ctx context.Context, email string) (*member.Member, error) {
	return nil, nil
}
func (s *memberStub) Update(ctx context.Context, m *member.Member) error { return nil }

func TestCredentialVerifier(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("hunter22")
	require.NoError(t, err)

	m, err := member.NewMember("ana@example.com", "Ana", hash)
	require.NoError(t, err)
	m.SetID(42)

	v := NewCredentialVerifier(&memberStub{members: map[uint]*member.Member{42: m}}, hasher, logger.NewNopLogger())
	ctx := context.Background()

	assert.NoError(t, v.VerifyCredentials(ctx, 42, "hunter22"))
	assert.ErrorIs(t, v.VerifyCredentials(ctx, 42, "wrong"), membership.ErrUnauthorized)
	assert.ErrorIs(t, v.VerifyCredentials(ctx, 42, ""), membership.ErrUnauthorized)
	assert.ErrorIs(t, v.VerifyCredentials(ctx, 7, "hunter22"), membership.ErrUnauthorized)
}

func TestBcryptPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(100).cost)
}
