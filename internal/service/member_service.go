package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wooteco-subway/favorite-api/internal/domain"
	"github.com/wooteco-subway/favorite-api/internal/platform/logger"
	"github.com/wooteco-subway/favorite-api/internal/service/auth"
	"github.com/wooteco-subway/favorite-api/internal/store"
)

// MemberService provides the member account lifecycle: registration,
// login, profile reads and updates, and account deletion.
type MemberService interface {
	// Register creates a new member with a bcrypt-hashed password.
	// Returns store.ErrEmailExists when the email is already taken and
	// domain validation errors for malformed input.
	Register(ctx context.Context, email, name, password string) (*domain.Member, error)

	// Authenticate checks the credentials and returns a signed access token.
	// Returns auth.ErrInvalidCredentials for an unknown email or a wrong
	// password, without distinguishing the two.
	Authenticate(ctx context.Context, email, password string) (string, error)

	// GetByID retrieves a member by id.
	// Returns store.ErrMemberNotFound if the member does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Member, error)

	// Update changes the member's name and password.
	// Returns store.ErrMemberNotFound if the member does not exist.
	Update(ctx context.Context, id int64, name, password string) error

	// Delete removes the member account. The store cascades the deletion
	// to the member's favorites; any unexpired token for the account is
	// rejected from then on by identity resolution.
	Delete(ctx context.Context, id int64) error
}

// memberService implements MemberService.
type memberService struct {
	members  store.MemberStore
	tokens   auth.TokenService
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	logger   *slog.Logger
}

// Ensure memberService implements MemberService
var _ MemberService = (*memberService)(nil)

// NewMemberService creates a new MemberService.
// If logger is nil, a default logger will be used.
func NewMemberService(
	members store.MemberStore,
	tokens auth.TokenService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) MemberService {
	if members == nil {
		panic("members cannot be nil")
	}
	if tokens == nil {
		panic("tokens cannot be nil")
	}
	if hasher == nil {
		panic("hasher cannot be nil")
	}
	if verifier == nil {
		panic("verifier cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &memberService{
		members:  members,
		tokens:   tokens,
		hasher:   hasher,
		verifier: verifier,
		logger:   logger.With(slog.String("component", "member_service")),
	}
}

// Register implements MemberService.Register.
func (s *memberService) Register(
	ctx context.Context,
	email, name, password string,
) (*domain.Member, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	member, err := domain.NewMember(email, name, password)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	member.HashedPassword = hashed
	member.Password = ""

	if err := s.members.Create(ctx, member); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, store.ErrEmailExists
		}
		log.Error("failed to create member", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register member: %w", err)
	}

	log.Info("member registered", slog.Int64("member_id", member.ID))
	return member, nil
}

// Authenticate implements MemberService.Authenticate.
func (s *memberService) Authenticate(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	member, err := s.members.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrMemberNotFound) {
			return "", auth.ErrInvalidCredentials
		}
		log.Error("failed to look up member for login", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := s.verifier.Compare(member.HashedPassword, password); err != nil {
		return "", auth.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, member.Email)
	if err != nil {
		log.Error("failed to issue token", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// GetByID implements MemberService.GetByID.
func (s *memberService) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrMemberNotFound) {
			return nil, store.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// Update implements MemberService.Update.
func (s *memberService) Update(ctx context.Context, id int64, name, password string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrMemberNotFound) {
			return store.ErrMemberNotFound
		}
		return fmt.Errorf("failed to load member for update: %w", err)
	}

	member.Name = name
	member.Password = password
	if err := member.Validate(); err != nil {
		return err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return fmt.Errorf("failed to hash password: %w", err)
	}
	member.HashedPassword = hashed
	member.Password = ""

	if err := s.members.Update(ctx, member); err != nil {
		if errors.Is(err, store.ErrMemberNotFound) {
			return store.ErrMemberNotFound
		}
		log.Error("failed to update member",
			slog.String("error", err.Error()),
			slog.Int64("member_id", id))
		return fmt.Errorf("failed to update member: %w", err)
	}

	log.Info("member updated", slog.Int64("member_id", id))
	return nil
}

// Delete implements MemberService.Delete.
func (s *memberService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.members.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrMemberNotFound) {
			return store.ErrMemberNotFound
		}
		log.Error("failed to delete member",
			slog.String("error", err.Error()),
			slog.Int64("member_id", id))
		return fmt.Errorf("failed to delete member: %w", err)
	}

	log.Info("member deleted", slog.Int64("member_id", id))
	return nil
}
