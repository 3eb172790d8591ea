// Package member holds the slice of the member profile this service reads and edits.
// Accounts and sessions are owned by the identity service.
package member

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

var ErrInvalidProfile = errors.New("invalid member profile")

// Member is a gym member's profile.
type Member struct {
	id           uint
	email        string
	fullName     string
	phone        string
	address      string
	dateOfBirth  *time.Time
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// PersonalData carries optional profile edits. Nil fields are left untouched.
type PersonalData struct {
	FullName    *string
	Phone       *string
	Address     *string
	DateOfBirth *time.Time
}

// IsEmpty reports whether no field is set.
func (p *PersonalData) IsEmpty() bool {
	return p == nil || (p.FullName == nil && p.Phone == nil && p.Address == nil && p.DateOfBirth == nil)
}

func NewMember(email, fullName, passwordHash string) (*Member, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid email %q", ErrInvalidProfile, email)
	}
	if strings.TrimSpace(fullName) == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidProfile)
	}
	now := time.Now().UTC()
	return &Member{
		email:        strings.ToLower(addr.Address),
		fullName:     strings.TrimSpace(fullName),
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructMember(
	id uint,
	email, fullName, phone, address string,
	dateOfBirth *time.Time,
	passwordHash string,
	createdAt, updatedAt time.Time,
) *Member {
	return &Member{
		id:           id,
		email:        email,
		fullName:     fullName,
		phone:        phone,
		address:      address,
		dateOfBirth:  dateOfBirth,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (m *Member) ID() uint                { return m.id }
func (m *Member) Email() string           { return m.email }
func (m *Member) FullName() string        { return m.fullName }
func (m *Member) Phone() string           { return m.phone }
func (m *Member) Address() string         { return m.address }
func (m *Member) DateOfBirth() *time.Time { return m.dateOfBirth }
func (m *Member) PasswordHash() string    { return m.passwordHash }
func (m *Member) CreatedAt() time.Time    { return m.createdAt }
func (m *Member) UpdatedAt() time.Time    { return m.updatedAt }

func (m *Member) SetID(id uint) {
	m.id = id
}

// ApplyPersonalData validates every field before changing any of them.
func (m *Member) ApplyPersonalData(data *PersonalData, now time.Time) error {
	if data.IsEmpty() {
		return nil
	}
	if data.FullName != nil && strings.TrimSpace(*data.FullName) == "" {
		return fmt.Errorf("%w: full name cannot be blank", ErrInvalidProfile)
	}
	if data.DateOfBirth != nil && !data.DateOfBirth.Before(now) {
		return fmt.Errorf("%w: date of birth must be in the past", ErrInvalidProfile)
	}

	if data.FullName != nil {
		m.fullName = strings.TrimSpace(*data.FullName)
	}
	if data.Phone != nil {
		m.phone = strings.TrimSpace(*data.Phone)
	}
	if data.Address != nil {
		m.address = strings.TrimSpace(*data.Address)
	}
	if data.DateOfBirth != nil {
		dob := data.DateOfBirth.UTC()
		m.dateOfBirth = &dob
	}
	m.updatedAt = now
	return nil
}
