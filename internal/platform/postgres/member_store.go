package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wooteco-subway/favorite-api/internal/domain"
	"github.com/wooteco-subway/favorite-api/internal/platform/logger"
	"github.com/wooteco-subway/favorite-api/internal/store"
)

// PostgresMemberStore implements the store.MemberStore interface
// using a PostgreSQL database as the storage backend.
type PostgresMemberStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMemberStore creates a new PostgreSQL implementation of the
// MemberStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresMemberStore(db store.DBTX, logger *slog.Logger) *PostgresMemberStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMemberStore{
		db:     db,
		logger: logger.With(slog.String("component", "member_store")),
	}
}

// Ensure PostgresMemberStore implements store.MemberStore interface
var _ store.MemberStore = (*PostgresMemberStore)(nil)

// Create implements store.MemberStore.Create
// It saves a new member and assigns the generated id.
// Returns store.ErrEmailExists when the email is already taken.
func (s *PostgresMemberStore) Create(ctx context.Context, member *domain.Member) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if member.HashedPassword == "" {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyHashedPassword)
	}

	query := `
		INSERT INTO members (email, name, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		member.Email,
		member.Name,
		member.HashedPassword,
		member.CreatedAt,
		member.UpdatedAt,
	).Scan(&member.ID)

	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			log.Warn("duplicate email during member creation",
				slog.String("email", member.Email))
			return store.ErrEmailExists
		}

		log.Error("failed to create member",
			slog.String("error", err.Error()),
			slog.String("email", member.Email))
		return err
	}

	log.Info("member created successfully",
		slog.Int64("member_id", member.ID))
	return nil
}

// GetByID implements store.MemberStore.GetByID
// Returns store.ErrMemberNotFound if the member does not exist.
func (s *PostgresMemberStore) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, name, hashed_password, created_at, updated_at
		FROM members
		WHERE id = $1
	`

	var member domain.Member
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID,
		&member.Email,
		&member.Name,
		&member.HashedPassword,
		&member.CreatedAt,
		&member.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("member not found", slog.Int64("member_id", id))
			return nil, store.ErrMemberNotFound
		}
		log.Error("failed to get member by ID",
			slog.String("error", err.Error()),
			slog.Int64("member_id", id))
		return nil, err
	}

	return &member, nil
}

// GetByEmail implements store.MemberStore.GetByEmail
// Returns store.ErrMemberNotFound if the member does not exist.
func (s *PostgresMemberStore) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, name, hashed_password, created_at, updated_at
		FROM members
		WHERE email = $1
	`

	var member domain.Member
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&member.ID,
		&member.Email,
		&member.Name,
		&member.HashedPassword,
		&member.CreatedAt,
		&member.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("member not found by email")
			return nil, store.ErrMemberNotFound
		}
		log.Error("failed to get member by email",
			slog.String("error", err.Error()))
		return nil, err
	}

	return &member, nil
}

// Update implements store.MemberStore.Update
// It modifies the member's name and hashed password.
// Returns store.ErrMemberNotFound if the member does not exist.
func (s *PostgresMemberStore) Update(ctx context.Context, member *domain.Member) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	updatedAt := time.Now().UTC()

	query := `
		UPDATE members
		SET name = $1, hashed_password = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		member.Name,
		member.HashedPassword,
		updatedAt,
		member.ID,
	)

	if err != nil {
		log.Error("failed to update member",
			slog.String("error", err.Error()),
			slog.Int64("member_id", member.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("member_id", member.ID))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("member not found for update", slog.Int64("member_id", member.ID))
		return store.ErrMemberNotFound
	}

	member.UpdatedAt = updatedAt

	log.Info("member updated successfully", slog.Int64("member_id", member.ID))
	return nil
}

// Delete implements store.MemberStore.Delete
// The favorites table declares ON DELETE CASCADE on its member reference,
// so deleting a member also removes every favorite the member owns.
// Returns store.ErrMemberNotFound if the member does not exist.
func (s *PostgresMemberStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM members
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete member",
			slog.String("error", err.Error()),
			slog.Int64("member_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("member_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("member not found for delete", slog.Int64("member_id", id))
		return store.ErrMemberNotFound
	}

	log.Info("member deleted successfully", slog.Int64("member_id", id))
	return nil
}
