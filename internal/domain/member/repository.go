package member

import "context"

type Repository interface {
	Create(ctx context.Context, member *Member) error
	// GetByID returns (nil, nil) when the member does not exist.
	GetByID(ctx context.Context, id uint) (*Member, error)
	GetByEmail(ctx context.Context, email string) (*Member, error)
	Update(ctx context.Context, member *Member) error
}
