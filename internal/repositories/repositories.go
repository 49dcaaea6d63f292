// Package repositories translates domain calls into SQL against the catalog
// database. Each entity has its own repository; the many-to-many reconciliation
// helpers shared by characters and films live here.
package repositories

import (
	"database/sql"
	"fmt"
	"strings"
)

// resolveIDs verifies that every id exists in the given table. Fails with
// invalidErr when any id (or a duplicate) cannot be resolved, so a save never
// proceeds with a dangling reference.
func resolveIDs(tx *sql.Tx, table string, ids []string, invalidErr error) error {
	if len(ids) == 0 {
		return nil
	}
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE id IN (%s)", table, placeholders(len(ids)))
	var count int
	if err := tx.QueryRow(query, toArgs(ids)...).Scan(&count); err != nil {
		return err
	}
	if count != len(ids) {
		return invalidErr
	}
	return nil
}

// replaceAssociations swaps the stored association set of one owning row for
// exactly the given related ids: previous join rows are removed, the new ones
// inserted. Runs inside the caller's transaction.
func replaceAssociations(tx *sql.Tx, ownerCol, ownerID, relatedCol string, relatedIDs []string) error {
	if _, err := tx.Exec(
		fmt.Sprintf("DELETE FROM films_characters WHERE %s = ?", ownerCol), ownerID); err != nil {
		return err
	}
	for _, relatedID := range relatedIDs {
		if _, err := tx.Exec(
			fmt.Sprintf("INSERT INTO films_characters (%s, %s) VALUES (?, ?)", ownerCol, relatedCol),
			ownerID, relatedID); err != nil {
			return err
		}
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func toArgs(ids []string) []interface{} {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
