package state

import "github.com/llehouerou/reel/internal/db"

var migrations = []db.Migration{
	{Version: 1, SQL: `
		CREATE TABLE files (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL UNIQUE,
			created_at INTEGER NOT NULL,
			last_accessed INTEGER NOT NULL,
			access_count INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX idx_files_access_count ON files(access_count);

		CREATE TABLE session_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			folder TEXT,
			volume INTEGER
		);
	`},
}
