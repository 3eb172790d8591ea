package usecases

import "context"

// MemberLocker serializes writes to one member's membership. The returned func releases the lock.
type MemberLocker interface {
	Lock(ctx context.Context, memberID uint) (func(), error)
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PaymentVerifier checks a receipt from the payment service pays amount for reference.
// The returned key identifies the receipt so it can be redeemed only once.
type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, receipt string, memberID uint, reference string, amount int64) (string, error)
}

// CredentialVerifier re-authenticates a member before a change that needs no payment.
type CredentialVerifier interface {
	VerifyCredentials(ctx context.Context, memberID uint, password string) error
}

type DescriptionRenderer interface {
	Render(markdown string) (string, error)
}
