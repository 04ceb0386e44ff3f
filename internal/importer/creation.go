package importer

import (
	"github.com/finance-center/backend/internal/models"
	"gorm.io/gorm"
)

// Clear removes all entries of a ledger table.
//
// The import clears before it parses, exactly like the system it replaces: a
// mid-parse failure leaves the ledger empty and the import has to be re-run.
func Clear[E models.LedgerModel](db *gorm.DB) error {
	var e E
	return db.Where("true").Delete(&e).Error
}

// Create inserts the parsed entries as one batch and returns the number of
// entries created.
func Create[E models.LedgerModel](db *gorm.DB, parsed ParsedLedger) (int, error) {
	if len(parsed.Entries) == 0 {
		return 0, nil
	}

	entries := make([]E, 0, len(parsed.Entries))
	for _, fields := range parsed.Entries {
		entries = append(entries, models.NewLedgerEntry[E](fields))
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entries).Error
	})
	if err != nil {
		return 0, err
	}

	return len(entries), nil
}
