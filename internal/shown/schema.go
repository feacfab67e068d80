package shown

import "database/sql"

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS shown_stories (
			stories_id TEXT PRIMARY KEY,
			max_shown_slide_index INTEGER NOT NULL DEFAULT 0,
			shown INTEGER NOT NULL DEFAULT 0
		);
	`)
	return err
}
