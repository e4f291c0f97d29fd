package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/repository"
)

const challengeColumns = `id, name, motivation, creating_user_id, users_accepted,
	sub_challenges, ongoing, expires_at, created_at, updated_at`

// subChallengeRow is the JSONB shape of one sub-challenge.
type subChallengeRow struct {
	Zekr                string `json:"zekr"`
	OriginalRepetitions int    `json:"original_repetitions"`
	LeftRepetitions     int    `json:"left_repetitions"`
}

// challengeRepository implements repository.ChallengeRepository.
type challengeRepository struct {
	pool *pgxpool.Pool
}

// NewChallengeRepository creates a new ChallengeRepository.
func NewChallengeRepository(pool *pgxpool.Pool) repository.ChallengeRepository {
	return &challengeRepository{pool: pool}
}

func (r *challengeRepository) Create(ctx context.Context, challenge *model.Challenge) error {
	subs, err := marshalSubChallenges(challenge.SubChallenges())
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO challenges (id, name, motivation, creating_user_id, users_accepted,
			sub_challenges, ongoing, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		challenge.ID().String(),
		challenge.Name(),
		challenge.Motivation(),
		challenge.CreatingUserID().String(),
		idsToStrings(challenge.UsersAccepted()),
		subs,
		challenge.IsOngoing(),
		challenge.ExpiresAt().Time(),
		challenge.CreatedAt().Time(),
		challenge.UpdatedAt().Time(),
	)
	return err
}

func (r *challengeRepository) Update(ctx context.Context, challenge *model.Challenge) error {
	subs, err := marshalSubChallenges(challenge.SubChallenges())
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE challenges
		SET users_accepted = $2,
			sub_challenges = $3,
			ongoing = $4,
			updated_at = $5
		WHERE id = $1`,
		challenge.ID().String(),
		idsToStrings(challenge.UsersAccepted()),
		subs,
		challenge.IsOngoing(),
		challenge.UpdatedAt().Time(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *challengeRepository) FindByID(ctx context.Context, id types.ID) (*model.Challenge, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+challengeColumns+` FROM challenges WHERE id = $1`,
		id.String(),
	)
	return scanChallenge(row)
}

func (r *challengeRepository) FindByCreatingUserID(ctx context.Context, userID types.ID) ([]*model.Challenge, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+challengeColumns+` FROM challenges WHERE creating_user_id = $1 ORDER BY created_at`,
		userID.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challenges []*model.Challenge
	for rows.Next() {
		challenge, err := scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, challenge)
	}
	return challenges, rows.Err()
}

func scanChallenge(row pgx.Row) (*model.Challenge, error) {
	var (
		id, name, motivation, creatingUserID string
		usersAccepted                        []string
		subsRaw                              []byte
		ongoing                              bool
		expiresAt, createdAt, updatedAt      pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &name, &motivation, &creatingUserID, &usersAccepted,
		&subsRaw, &ongoing, &expiresAt, &createdAt, &updatedAt,
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
	parsedCreator, err := types.ParseID(creatingUserID)
	if err != nil {
		return nil, err
	}
	accepted, err := stringsToIDs(usersAccepted)
	if err != nil {
		return nil, err
	}
	subs, err := unmarshalSubChallenges(subsRaw)
	if err != nil {
		return nil, err
	}

	return model.ReconstructChallenge(
		parsedID,
		name,
		motivation,
		parsedCreator,
		accepted,
		subs,
		ongoing,
		types.FromTime(expiresAt.Time),
		types.FromTime(createdAt.Time),
		types.FromTime(updatedAt.Time),
	), nil
}

func marshalSubChallenges(subs []model.SubChallenge) ([]byte, error) {
	rows := make([]subChallengeRow, len(subs))
	for i, sub := range subs {
		rows[i] = subChallengeRow{
			Zekr:                sub.Zekr(),
			OriginalRepetitions: sub.OriginalRepetitions(),
			LeftRepetitions:     sub.LeftRepetitions(),
		}
	}
	return json.Marshal(rows)
}

func unmarshalSubChallenges(raw []byte) ([]model.SubChallenge, error) {
	var rows []subChallengeRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	subs := make([]model.SubChallenge, len(rows))
	for i, row := range rows {
		subs[i] = model.ReconstructSubChallenge(row.Zekr, row.OriginalRepetitions, row.LeftRepetitions)
	}
	return subs, nil
}
