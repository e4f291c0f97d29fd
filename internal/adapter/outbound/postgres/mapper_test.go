package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// --- pgtype helper tests ---

func TestTextToOptionalString(t *testing.T) {
	t.Run("valid text", func(t *testing.T) {
		text := pgtype.Text{String: "hello", Valid: true}

		result := textToOptionalString(text)

		if !result.IsPresent() {
			t.Fatal("result should be present")
		}
		if result.MustGet() != "hello" {
			t.Errorf("result = %v, want hello", result.MustGet())
		}
	})

	t.Run("invalid text", func(t *testing.T) {
		text := pgtype.Text{Valid: false}

		result := textToOptionalString(text)

		if result.IsPresent() {
			t.Error("result should not be present")
		}
	})
}

func TestTextToOptionalEmail(t *testing.T) {
	t.Run("valid email", func(t *testing.T) {
		text := pgtype.Text{String: "test@example.com", Valid: true}

		result := textToOptionalEmail(text)

		if !result.IsPresent() {
			t.Fatal("result should be present")
		}
		if result.MustGet().String() != "test@example.com" {
			t.Errorf("result = %v, want test@example.com", result.MustGet().String())
		}
	})

	t.Run("invalid email format", func(t *testing.T) {
		text := pgtype.Text{String: "not-an-email", Valid: true}

		result := textToOptionalEmail(text)

		if result.IsPresent() {
			t.Error("result should not be present for invalid email")
		}
	})

	t.Run("null text", func(t *testing.T) {
		text := pgtype.Text{Valid: false}

		result := textToOptionalEmail(text)

		if result.IsPresent() {
			t.Error("result should not be present")
		}
	})
}

func TestOptionalStringToPgText(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		result := optionalStringToPgText(types.Some("hello"))

		if !result.Valid {
			t.Fatal("result should be valid")
		}
		if result.String != "hello" {
			t.Errorf("result = %v, want hello", result.String)
		}
	})

	t.Run("absent", func(t *testing.T) {
		result := optionalStringToPgText(types.None[string]())

		if result.Valid {
			t.Error("result should not be valid")
		}
	})
}

// --- Facebook column mapping tests ---

func TestFacebookColumnRoundTrip(t *testing.T) {
	t.Run("full identity", func(t *testing.T) {
		identity, err := model.NewFacebookIdentity("fb42", "Amir", "a@x.com", "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		id, name, email, token := facebookToColumns(types.Some(identity))
		restored := columnsToFacebook(id, name, email, token)

		if !restored.IsPresent() {
			t.Fatal("restored identity should be present")
		}
		got := restored.MustGet()
		if got.UserID() != "fb42" || got.Name() != "Amir" || got.Email() != "a@x.com" || got.AccessToken() != "tok" {
			t.Errorf("round trip mismatch: %+v", got)
		}
	})

	t.Run("identity without optional fields", func(t *testing.T) {
		identity, err := model.NewFacebookIdentity("fb42", "", "", "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		id, name, email, token := facebookToColumns(types.Some(identity))

		if name.Valid || email.Valid {
			t.Error("empty name and email should map to null columns")
		}

		restored := columnsToFacebook(id, name, email, token)
		if !restored.IsPresent() {
			t.Fatal("restored identity should be present")
		}
		if restored.MustGet().Name() != "" || restored.MustGet().Email() != "" {
			t.Error("optional fields should stay empty")
		}
	})

	t.Run("no identity", func(t *testing.T) {
		id, name, email, token := facebookToColumns(types.None[model.FacebookIdentity]())

		if id.Valid || name.Valid || email.Valid || token.Valid {
			t.Error("all columns should be null for absent identity")
		}

		if columnsToFacebook(id, name, email, token).IsPresent() {
			t.Error("null columns should map to absent identity")
		}
	})
}

// --- ID slice mapping tests ---

func TestIDSliceRoundTrip(t *testing.T) {
	ids := []types.ID{types.NewID(), types.NewID(), types.NewID()}

	raw := idsToStrings(ids)
	restored, err := stringsToIDs(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(restored) != len(ids) {
		t.Fatalf("length mismatch: got %d, want %d", len(restored), len(ids))
	}
	for i := range ids {
		if restored[i] != ids[i] {
			t.Errorf("id %d mismatch: got %s, want %s", i, restored[i], ids[i])
		}
	}
}
