package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		// same message for mismatch and malformed hash
		return fmt.Errorf("password verification failed")
	}
	return nil
}

// CredentialVerifier re-authenticates a member against the stored password hash
// before a zero-cost plan change is applied.
type CredentialVerifier struct {
	members member.Repository
	hasher  *BcryptPasswordHasher
	logger  logger.Interface
}

func NewCredentialVerifier(members member.Repository, hasher *BcryptPasswordHasher, log logger.Interface) *CredentialVerifier {
	return &CredentialVerifier{
		members: members,
		hasher:  hasher,
		logger:  log,
	}
}

func (v *CredentialVerifier) VerifyCredentials(ctx context.Context, memberID uint, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", membership.ErrUnauthorized)
	}

	m, err := v.members.GetByID(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to load member: %w", err)
	}
	if m == nil || m.PasswordHash() == "" {
		return fmt.Errorf("%w: credentials not on file", membership.ErrUnauthorized)
	}

	if err := v.hasher.Verify(password, m.PasswordHash()); err != nil {
		v.logger.Warnw("credential check failed", "member_id", memberID)
		return fmt.Errorf("%w: %v", membership.ErrUnauthorized, err)
	}
	return nil
}
