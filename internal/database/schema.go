package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema creates the three directory tables.  Shows have no surrogate key:
// the (venue_id, artist_id, start_time) triple is the primary key and both
// foreign keys cascade on delete.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name                VARCHAR(255)    NOT NULL,
		genres              VARCHAR(500)    NOT NULL DEFAULT '',
		city                VARCHAR(120)    NOT NULL DEFAULT '',
		state               VARCHAR(120)    NOT NULL DEFAULT '',
		address             VARCHAR(120)    NOT NULL DEFAULT '',
		phone               VARCHAR(120)    NOT NULL DEFAULT '',
		image_link          VARCHAR(500)    NOT NULL DEFAULT '',
		facebook_link       VARCHAR(500)    NOT NULL DEFAULT '',
		website             VARCHAR(500)    NOT NULL DEFAULT '',
		seeking_talent      BOOLEAN         NOT NULL DEFAULT FALSE,
		seeking_description TEXT            NOT NULL,
		PRIMARY KEY (id),
		KEY idx_venues_area (city, state)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS artists (
		id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name                VARCHAR(255)    NOT NULL,
		genres              VARCHAR(500)    NOT NULL DEFAULT '',
		city                VARCHAR(120)    NOT NULL DEFAULT '',
		state               VARCHAR(120)    NOT NULL DEFAULT '',
		phone               VARCHAR(120)    NOT NULL DEFAULT '',
		image_link          VARCHAR(500)    NOT NULL DEFAULT '',
		facebook_link       VARCHAR(500)    NOT NULL DEFAULT '',
		website             VARCHAR(500)    NOT NULL DEFAULT '',
		seeking_venue       BOOLEAN         NOT NULL DEFAULT FALSE,
		seeking_description TEXT            NOT NULL,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS shows (
		venue_id   BIGINT UNSIGNED NOT NULL,
		artist_id  BIGINT UNSIGNED NOT NULL,
		start_time DATETIME        NOT NULL,
		PRIMARY KEY (venue_id, artist_id, start_time),
		KEY idx_shows_artist (artist_id),
		CONSTRAINT fk_shows_venue  FOREIGN KEY (venue_id)  REFERENCES venues (id)  ON DELETE CASCADE,
		CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates any missing table.  It is safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
