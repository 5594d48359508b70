package index

import (
	"fmt"
	"log/slog"

	"github.com/arindamsaha1507/vyakarana/internal/models"
)

// Sync rebuilds the index from the collection when the corpus checksum
// differs from the one recorded at the last sync. The rebuild happens
// in one transaction: existing rows are cleared, every sutra is
// reinserted, and the new checksum is recorded.
func Sync(db *DB, coll *models.Collection, corpusSum string, logger *slog.Logger) error {
	stored, err := db.GetMeta(MetaCorpusChecksum)
	if err != nil {
		return err
	}
	if stored == corpusSum {
		logger.Debug("sync: index up to date", slog.String("checksum", corpusSum))
		return nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(`DELETE FROM sutras`); err != nil {
		return fmt.Errorf("index: clear sutras: %w", err)
	}
	if err := ftsClear(tx); err != nil {
		return err
	}
	for i := range coll.Sutras {
		if err := upsertSutraTx(tx, RowFromSutra(&coll.Sutras[i])); err != nil {
			return err
		}
	}
	if err := setMetaTx(tx, MetaCorpusChecksum, corpusSum); err != nil {
		return err
	}
	if err := setMetaTx(tx, MetaCorpusName, coll.Name); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("index: commit sync: %w", err)
	}

	logger.Info("sync: index rebuilt",
		slog.Int("sutras", coll.Len()),
		slog.String("checksum", corpusSum))
	return nil
}
