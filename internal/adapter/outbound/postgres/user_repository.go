package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/repository"
)

// Unique constraints on the users table. The partial unique index on
// facebook_user_id is what upholds the single-holder guarantee under
// concurrent writers.
const (
	usernameConstraint   = "users_username_key"
	facebookIDConstraint = "users_facebook_user_id_key"
)

const userColumns = `id, username, email, name,
	facebook_user_id, facebook_name, facebook_email, facebook_access_token,
	created_at, updated_at`

// userRepository implements repository.UserRepository.
type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	fbID, fbName, fbEmail, fbToken := facebookToColumns(user.Facebook())

	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, username, email, name,
			facebook_user_id, facebook_name, facebook_email, facebook_access_token,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.ID().String(),
		user.Username(),
		optionalEmailToPgText(user.Email()),
		optionalStringToPgText(user.Name()),
		fbID, fbName, fbEmail, fbToken,
		user.CreatedAt().Time(),
		user.UpdatedAt().Time(),
	)
	return mapUserWriteError(err)
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	fbID, fbName, fbEmail, fbToken := facebookToColumns(user.Facebook())

	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET username = $2,
			email = $3,
			name = $4,
			facebook_user_id = $5,
			facebook_name = $6,
			facebook_email = $7,
			facebook_access_token = $8,
			updated_at = $9
		WHERE id = $1`,
		user.ID().String(),
		user.Username(),
		optionalEmailToPgText(user.Email()),
		optionalStringToPgText(user.Name()),
		fbID, fbName, fbEmail, fbToken,
		user.UpdatedAt().Time(),
	)
	if err != nil {
		return mapUserWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id types.ID) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id.String(),
	)
	return scanUser(row)
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`,
		username,
	)
	return scanUser(row)
}

func (r *userRepository) FindByFacebookUserID(ctx context.Context, facebookUserID string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE facebook_user_id = $1`,
		facebookUserID,
	)
	return scanUser(row)
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username,
	).Scan(&exists)
	return exists, err
}

func scanUser(row pgx.Row) (*model.User, error) {
	var (
		id, username          string
		email, name           pgtype.Text
		fbID, fbName, fbEmail pgtype.Text
		fbToken               pgtype.Text
		createdAt, updatedAt  pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &username, &email, &name,
		&fbID, &fbName, &fbEmail, &fbToken,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	parsedID, err := types.ParseID(id)
	if err != nil {
		return nil, err
	}

	return model.ReconstructUser(
		parsedID,
		username,
		textToOptionalEmail(email),
		textToOptionalString(name),
		columnsToFacebook(fbID, fbName, fbEmail, fbToken),
		types.FromTime(createdAt.Time),
		types.FromTime(updatedAt.Time),
	), nil
}

func mapUserWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err, facebookIDConstraint):
		return repository.ErrDuplicateFacebookID
	case isUniqueViolation(err, usernameConstraint):
		return repository.ErrDuplicateUsername
	default:
		return err
	}
}
