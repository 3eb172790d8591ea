package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/shared/biztime"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

// ReceiptClaims is the payload of a payment receipt issued by the payment service.
// Reference is the plan change request id, or Plan.PurchaseReference for a signup.
type ReceiptClaims struct {
	MemberID         uint   `json:"member_id"`
	Reference        string `json:"reference"`
	AmountMinorUnits int64  `json:"amount"`
	Currency         string `json:"currency,omitempty"`
	jwt.RegisteredClaims
}

const maxRawReceiptID = 64

// ReceiptVerifier checks HS256 receipts signed with the shared payment secret.
type ReceiptVerifier struct {
	secret []byte
	clock  biztime.Clock
	logger logger.Interface
}

func NewReceiptVerifier(secret string, clock biztime.Clock, log logger.Interface) *ReceiptVerifier {
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &ReceiptVerifier{
		secret: []byte(secret),
		clock:  clock,
		logger: log,
	}
}

// VerifyPayment succeeds when receipt was issued to memberID for reference and pays exactly amount.
// It returns the key the receipt is redeemed under: its jti, or a digest of its signature
// when the payment service sent none.
func (v *ReceiptVerifier) VerifyPayment(ctx context.Context, receipt string, memberID uint, reference string, amount int64) (string, error) {
	if receipt == "" {
		return "", fmt.Errorf("%w: payment receipt is required", membership.ErrUnauthorized)
	}

	token, err := jwt.ParseWithClaims(receipt, &ReceiptClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithTimeFunc(v.clock.Now), jwt.WithExpirationRequired())
	if err != nil {
		v.logger.Warnw("payment receipt rejected", "member_id", memberID, "reference", reference, "error", err)
		return "", fmt.Errorf("%w: invalid payment receipt", membership.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*ReceiptClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("%w: invalid payment receipt", membership.ErrUnauthorized)
	}

	switch {
	case claims.MemberID != memberID:
		v.logger.Warnw("payment receipt issued to another member", "member_id", memberID, "receipt_member_id", claims.MemberID)
		return "", fmt.Errorf("%w: payment receipt does not belong to member", membership.ErrUnauthorized)
	case claims.Reference != reference:
		return "", fmt.Errorf("%w: payment receipt is for a different purchase", membership.ErrUnauthorized)
	case claims.AmountMinorUnits != amount:
		return "", fmt.Errorf("%w: payment receipt is for %d, %d due", membership.ErrUnauthorized, claims.AmountMinorUnits, amount)
	}

	return receiptKey(claims, token.Signature), nil
}

// receiptKey fits the 100 character receipt_key column.
func receiptKey(claims *ReceiptClaims, signature []byte) string {
	switch {
	case claims.ID != "" && len(claims.ID) <= maxRawReceiptID:
		return "jti:" + claims.ID
	case claims.ID != "":
		sum := sha256.Sum256([]byte(claims.ID))
		return "jti-sha256:" + hex.EncodeToString(sum[:])
	}
	sum := sha256.Sum256(signature)
	return "sig-sha256:" + hex.EncodeToString(sum[:])
}

// IssueReceipt signs a receipt the way the payment service does. Used by local tooling and tests.
func IssueReceipt(secret string, memberID uint, reference string, amount int64, issuedAt time.Time, ttl time.Duration) (string, error) {
	claims := &ReceiptClaims{
		MemberID:         memberID,
		Reference:        reference,
		AmountMinorUnits: amount,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign receipt: %w", err)
	}
	return signed, nil
}
