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

const groupColumns = `id, name, admin_id, member_ids, is_binary, created_at, updated_at`

// groupRepository implements repository.GroupRepository.
type groupRepository struct {
	pool *pgxpool.Pool
}

// NewGroupRepository creates a new GroupRepository.
func NewGroupRepository(pool *pgxpool.Pool) repository.GroupRepository {
	return &groupRepository{pool: pool}
}

func (r *groupRepository) Create(ctx context.Context, group *model.Group) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO groups (id, name, admin_id, member_ids, is_binary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		group.ID().String(),
		group.Name(),
		group.AdminID().String(),
		idsToStrings(group.MemberIDs()),
		group.IsBinary(),
		group.CreatedAt().Time(),
		group.UpdatedAt().Time(),
	)
	return err
}

func (r *groupRepository) Update(ctx context.Context, group *model.Group) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE groups
		SET name = $2,
			member_ids = $3,
			updated_at = $4
		WHERE id = $1`,
		group.ID().String(),
		group.Name(),
		idsToStrings(group.MemberIDs()),
		group.UpdatedAt().Time(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *groupRepository) FindByID(ctx context.Context, id types.ID) (*model.Group, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+groupColumns+` FROM groups WHERE id = $1`,
		id.String(),
	)
	return scanGroup(row)
}

func (r *groupRepository) FindByMemberID(ctx context.Context, userID types.ID) ([]*model.Group, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+groupColumns+` FROM groups WHERE $1 = ANY(member_ids) ORDER BY created_at`,
		userID.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*model.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

func scanGroup(row pgx.Row) (*model.Group, error) {
	var (
		id, name, adminID    string
		memberIDs            []string
		isBinary             bool
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&id, &name, &adminID, &memberIDs, &isBinary, &createdAt, &updatedAt)
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
	parsedAdminID, err := types.ParseID(adminID)
	if err != nil {
		return nil, err
	}
	members, err := stringsToIDs(memberIDs)
	if err != nil {
		return nil, err
	}

	return model.ReconstructGroup(
		parsedID,
		name,
		parsedAdminID,
		members,
		isBinary,
		types.FromTime(createdAt.Time),
		types.FromTime(updatedAt.Time),
	), nil
}
