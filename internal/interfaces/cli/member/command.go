// Package member holds operator commands for member accounts and access tokens.
package member

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gorm.io/gorm"

	memberDomain "github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/infrastructure/auth"
	"github.com/gymflow/gymflow/internal/infrastructure/database"
	"github.com/gymflow/gymflow/internal/infrastructure/repository"
	"github.com/gymflow/gymflow/internal/interfaces/cli/bootstrap"
	"github.com/gymflow/gymflow/internal/shared/constants"
	apperrors "github.com/gymflow/gymflow/internal/shared/errors"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

var roles = []string{
	constants.RoleMember,
	constants.RoleFrontDesk,
	constants.RoleTrainer,
	constants.RoleNutritionist,
	constants.RoleAdmin,
}

var (
	opts     bootstrap.Options
	email    string
	fullName string
	password string
	memberID uint
	role     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage member accounts",
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newCreateCommand(), newTokenCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a member account",
		Long:  `Create a member account. The password is prompted for when --password is omitted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap.InitWithDatabase(opts)
			if err != nil {
				return err
			}
			defer database.Close()

			pw := password
			if pw == "" {
				if pw, err = promptPassword(cmd.ErrOrStderr()); err != nil {
					return err
				}
			}

			hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
			m, err := Create(cmd.Context(), database.Get(), hasher, email, fullName, pw, log.Named("member"))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "member %d created (%s)\n", m.ID(), m.Email())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&fullName, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when empty)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token",
		Long:  `Issue a signed access token for a member or staff role. Intended for operators and local testing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := bootstrap.Init(opts)
			if err != nil {
				return err
			}

			jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, nil)
			token, err := IssueToken(jwtSvc, memberID, role)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().UintVar(&memberID, "id", 0, "Member id (required)")
	cmd.Flags().StringVar(&role, "role", constants.RoleMember, "Role: "+strings.Join(roles, ", "))
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

// Create registers a member with a bcrypt password hash. Emails are unique.
func Create(ctx context.Context, gdb *gorm.DB, hasher *auth.BcryptPasswordHasher, email, fullName, password string, log logger.Interface) (*memberDomain.Member, error) {
	if len(password) < 8 {
		return nil, apperrors.NewValidationError("password must be at least 8 characters")
	}

	repo := repository.NewMemberRepository(gdb, log)
	existing, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("a member with this email already exists", existing.Email())
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	m, err := memberDomain.NewMember(email, fullName, hash)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := repo.Create(ctx, m); err != nil {
		return nil, err
	}

	log.Infow("member created", "member_id", m.ID())
	return m, nil
}

func IssueToken(jwtSvc *auth.JWTService, id uint, role string) (string, error) {
	if id == 0 {
		return "", apperrors.NewValidationError("member id is required")
	}
	if !lo.Contains(roles, role) {
		return "", apperrors.NewValidationError("unknown role", role)
	}
	return jwtSvc.Generate(id, role)
}

func promptPassword(w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", apperrors.NewValidationError("--password is required when stdin is not a terminal")
	}

	fmt.Fprint(w, "Password: ")
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}
