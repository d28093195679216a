package store

import "fmt"

// Foreign keys carry no ON DELETE action. Cascades are issued explicitly,
// child tables first, so they behave the same on every backend.

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	city TEXT NOT NULL,
	state TEXT NOT NULL,
	address TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	image_link TEXT NOT NULL DEFAULT '',
	facebook_link TEXT NOT NULL DEFAULT '',
	website TEXT NOT NULL DEFAULT '',
	genres TEXT NOT NULL DEFAULT '',
	seeking_talent BOOLEAN NOT NULL DEFAULT 0,
	seeking_description TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS artists (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	city TEXT NOT NULL,
	state TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	image_link TEXT NOT NULL DEFAULT '',
	facebook_link TEXT NOT NULL DEFAULT '',
	website TEXT NOT NULL DEFAULT '',
	genres TEXT NOT NULL DEFAULT '',
	seeking_venue BOOLEAN NOT NULL DEFAULT 0,
	seeking_description TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS shows (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	venue_id INTEGER NOT NULL REFERENCES venues(id),
	artist_id INTEGER NOT NULL REFERENCES artists(id),
	start_time DATETIME NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_venue_id ON shows(venue_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_artist_id ON shows(artist_id)`,
	`CREATE TABLE IF NOT EXISTS availability (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	artist_id INTEGER NOT NULL REFERENCES artists(id),
	start_time DATETIME NOT NULL,
	end_time DATETIME NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_availability_artist_id ON availability(artist_id)`,
	`CREATE TABLE IF NOT EXISTS albums (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	artist_id INTEGER NOT NULL REFERENCES artists(id),
	name TEXT NOT NULL,
	year INTEGER
)`,
	`CREATE INDEX IF NOT EXISTS idx_albums_artist_id ON albums(artist_id)`,
	`CREATE TABLE IF NOT EXISTS songs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	album_id INTEGER NOT NULL REFERENCES albums(id),
	name TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_songs_album_id ON songs(album_id)`,
}

// MySQL has no CREATE INDEX IF NOT EXISTS, so indexes live in the table
// definitions. InnoDB indexes foreign key columns on its own.
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	city VARCHAR(120) NOT NULL,
	state VARCHAR(120) NOT NULL,
	address VARCHAR(255) NOT NULL,
	phone VARCHAR(120) NOT NULL DEFAULT '',
	image_link VARCHAR(500) NOT NULL DEFAULT '',
	facebook_link VARCHAR(500) NOT NULL DEFAULT '',
	website VARCHAR(500) NOT NULL DEFAULT '',
	genres VARCHAR(500) NOT NULL DEFAULT '',
	seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
	seeking_description TEXT NOT NULL
) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS artists (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	city VARCHAR(120) NOT NULL,
	state VARCHAR(120) NOT NULL,
	phone VARCHAR(120) NOT NULL DEFAULT '',
	image_link VARCHAR(500) NOT NULL DEFAULT '',
	facebook_link VARCHAR(500) NOT NULL DEFAULT '',
	website VARCHAR(500) NOT NULL DEFAULT '',
	genres VARCHAR(500) NOT NULL DEFAULT '',
	seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
	seeking_description TEXT NOT NULL
) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS shows (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	venue_id BIGINT NOT NULL,
	artist_id BIGINT NOT NULL,
	start_time DATETIME(6) NOT NULL,
	FOREIGN KEY (venue_id) REFERENCES venues(id),
	FOREIGN KEY (artist_id) REFERENCES artists(id)
) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS availability (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	artist_id BIGINT NOT NULL,
	start_time DATETIME(6) NOT NULL,
	end_time DATETIME(6) NOT NULL,
	FOREIGN KEY (artist_id) REFERENCES artists(id)
) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS albums (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	artist_id BIGINT NOT NULL,
	name VARCHAR(255) NOT NULL,
	year INT NULL,
	FOREIGN KEY (artist_id) REFERENCES artists(id)
) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS songs (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	album_id BIGINT NOT NULL,
	name VARCHAR(255) NOT NULL,
	FOREIGN KEY (album_id) REFERENCES albums(id)
) ENGINE=InnoDB`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	city TEXT NOT NULL,
	state TEXT NOT NULL,
	address TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	image_link TEXT NOT NULL DEFAULT '',
	facebook_link TEXT NOT NULL DEFAULT '',
	website TEXT NOT NULL DEFAULT '',
	genres TEXT NOT NULL DEFAULT '',
	seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
	seeking_description TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS artists (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	city TEXT NOT NULL,
	state TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	image_link TEXT NOT NULL DEFAULT '',
	facebook_link TEXT NOT NULL DEFAULT '',
	website TEXT NOT NULL DEFAULT '',
	genres TEXT NOT NULL DEFAULT '',
	seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
	seeking_description TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS shows (
	id BIGSERIAL PRIMARY KEY,
	venue_id BIGINT NOT NULL REFERENCES venues(id),
	artist_id BIGINT NOT NULL REFERENCES artists(id),
	start_time TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_venue_id ON shows(venue_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_artist_id ON shows(artist_id)`,
	`CREATE TABLE IF NOT EXISTS availability (
	id BIGSERIAL PRIMARY KEY,
	artist_id BIGINT NOT NULL REFERENCES artists(id),
	start_time TIMESTAMPTZ NOT NULL,
	end_time TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_availability_artist_id ON availability(artist_id)`,
	`CREATE TABLE IF NOT EXISTS albums (
	id BIGSERIAL PRIMARY KEY,
	artist_id BIGINT NOT NULL REFERENCES artists(id),
	name TEXT NOT NULL,
	year INTEGER
)`,
	`CREATE INDEX IF NOT EXISTS idx_albums_artist_id ON albums(artist_id)`,
	`CREATE TABLE IF NOT EXISTS songs (
	id BIGSERIAL PRIMARY KEY,
	album_id BIGINT NOT NULL REFERENCES albums(id),
	name TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_songs_album_id ON songs(album_id)`,
}

func schemaFor(driver string) ([]string, error) {
	switch driver {
	case DriverSQLite:
		return sqliteSchema, nil
	case DriverMySQL:
		return mysqlSchema, nil
	case DriverPostgres:
		return postgresSchema, nil
	default:
		return nil, fmt.Errorf("no schema for driver %q", driver)
	}
}
