package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	vaultItemsTable = "vault_items"
	usersTable      = "users"
)

var vaultItemColumns = []string{
	"id",
	"owner_id",
	"title",
	"username",
	"password",
	"url",
	"notes",
	"created_at",
	"updated_at",
}

var userColumns = []string{
	"id",
	"login",
	"password_hash",
	"created_at",
}

// buildInsertVaultItemQuery builds the INSERT for a fully populated item.
func buildInsertVaultItemQuery(b sq.StatementBuilderType, item models.CipheredVaultItem) (string, []any, error) {
	return b.Insert(vaultItemsTable).
		Columns(vaultItemColumns...).
		Values(
			item.ID,
			item.OwnerID,
			string(item.Fields.Title),
			string(item.Fields.Username),
			string(item.Fields.Password),
			string(item.Fields.URL),
			string(item.Fields.Notes),
			item.CreatedAt,
			item.UpdatedAt,
		).
		ToSql()
}

// buildSelectVaultItemsByOwnerQuery selects the owner's items, newest first.
// The id tiebreak keeps the order stable for items created within the same
// clock tick.
func buildSelectVaultItemsByOwnerQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return b.Select(vaultItemColumns...).
		From(vaultItemsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildSelectVaultItemQuery(b sq.StatementBuilderType, id, ownerID string) (string, []any, error) {
	return b.Select(vaultItemColumns...).
		From(vaultItemsTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

// buildReplaceVaultItemQuery overwrites every field of one owned item. The
// owner predicate lives in the same statement as the write.
func buildReplaceVaultItemQuery(b sq.StatementBuilderType, id, ownerID string, fields models.CipheredVaultFields, updatedAt time.Time) (string, []any, error) {
	return b.Update(vaultItemsTable).
		Set("title", string(fields.Title)).
		Set("username", string(fields.Username)).
		Set("password", string(fields.Password)).
		Set("url", string(fields.URL)).
		Set("notes", string(fields.Notes)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func buildDeleteVaultItemQuery(b sq.StatementBuilderType, id, ownerID string) (string, []any, error) {
	return b.Delete(vaultItemsTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Login, user.PasswordHash, user.CreatedAt).
		ToSql()
}

func buildSelectUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
}
