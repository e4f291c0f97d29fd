package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// pgtype helpers

func textToOptionalString(t pgtype.Text) types.Optional[string] {
	if t.Valid {
		return types.Some(t.String)
	}
	return types.None[string]()
}

func textToOptionalEmail(t pgtype.Text) types.Optional[types.Email] {
	if t.Valid {
		email, err := types.NewEmail(t.String)
		if err == nil {
			return types.Some(email)
		}
	}
	return types.None[types.Email]()
}

func optionalStringToPgText(o types.Optional[string]) pgtype.Text {
	if o.IsPresent() {
		return pgtype.Text{String: o.MustGet(), Valid: true}
	}
	return pgtype.Text{Valid: false}
}

func optionalEmailToPgText(o types.Optional[types.Email]) pgtype.Text {
	if o.IsPresent() {
		return pgtype.Text{String: o.MustGet().String(), Valid: true}
	}
	return pgtype.Text{Valid: false}
}

// Facebook identity mappers. The identity is stored denormalized on the users
// row; a row either has all of facebook_user_id and facebook_access_token or
// neither.

func facebookToColumns(o types.Optional[model.FacebookIdentity]) (id, name, email, token pgtype.Text) {
	if !o.IsPresent() {
		return
	}
	fb := o.MustGet()
	id = pgtype.Text{String: fb.UserID(), Valid: true}
	token = pgtype.Text{String: fb.AccessToken(), Valid: true}
	if fb.Name() != "" {
		name = pgtype.Text{String: fb.Name(), Valid: true}
	}
	if fb.Email() != "" {
		email = pgtype.Text{String: fb.Email(), Valid: true}
	}
	return
}

func columnsToFacebook(id, name, email, token pgtype.Text) types.Optional[model.FacebookIdentity] {
	if !id.Valid || !token.Valid {
		return types.None[model.FacebookIdentity]()
	}
	return types.Some(model.ReconstructFacebookIdentity(
		id.String,
		name.String,
		email.String,
		token.String,
	))
}

// ID slice mappers for text[] columns.

func idsToStrings(ids []types.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func stringsToIDs(raw []string) ([]types.ID, error) {
	out := make([]types.ID, len(raw))
	for i, s := range raw {
		id, err := types.ParseID(s)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}

// isUniqueViolation reports whether err is a 23505 on the given constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == "23505" &&
		pgErr.ConstraintName == constraint
}
