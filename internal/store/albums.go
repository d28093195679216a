package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/cesargomez89/fyyur/internal/constants"
	"github.com/cesargomez89/fyyur/internal/domain"
)

func (t *Tx) CreateAlbum(ctx context.Context, a *domain.Album) error {
	if err := t.mustExist(ctx, "artist", constants.ArtistsTable, a.ArtistID); err != nil {
		return err
	}
	id, err := t.insert(ctx, `INSERT INTO albums (artist_id, name, year) VALUES (?, ?, ?)`,
		a.ArtistID, a.Name, a.Year,
	)
	if err != nil {
		return persistence("create album", err)
	}
	a.ID = id
	return nil
}

func (t *Tx) GetAlbum(ctx context.Context, id int64) (*domain.Album, error) {
	var a domain.Album
	err := t.get(ctx, &a, `SELECT id, artist_id, name, year FROM albums WHERE id = ?`, id)
	if err != nil {
		return nil, classify("get album", "album", id, err)
	}
	return &a, nil
}

func (t *Tx) UpdateAlbum(ctx context.Context, a *domain.Album) error {
	if err := t.mustExist(ctx, "album", constants.AlbumsTable, a.ID); err != nil {
		return err
	}
	if _, err := t.exec(ctx, `UPDATE albums SET name = ?, year = ? WHERE id = ?`, a.Name, a.Year, a.ID); err != nil {
		return persistence("update album", err)
	}
	return nil
}

// DeleteAlbum removes the album and its songs.
func (t *Tx) DeleteAlbum(ctx context.Context, id int64) error {
	if err := t.mustExist(ctx, "album", constants.AlbumsTable, id); err != nil {
		return err
	}
	if _, err := t.exec(ctx, `DELETE FROM songs WHERE album_id = ?`, id); err != nil {
		return persistence("delete album songs", err)
	}
	if _, err := t.exec(ctx, `DELETE FROM albums WHERE id = ?`, id); err != nil {
		return persistence("delete album", err)
	}
	return nil
}

func (t *Tx) AlbumsForArtist(ctx context.Context, artistID int64) ([]domain.Album, error) {
	albums := make([]domain.Album, 0)
	err := t.sel(ctx, &albums, `SELECT id, artist_id, name, year FROM albums WHERE artist_id = ? ORDER BY id`, artistID)
	if err != nil {
		return nil, persistence("list albums", err)
	}
	return albums, nil
}

func (t *Tx) CreateSong(ctx context.Context, s *domain.Song) error {
	if err := t.mustExist(ctx, "album", constants.AlbumsTable, s.AlbumID); err != nil {
		return err
	}
	id, err := t.insert(ctx, `INSERT INTO songs (album_id, name) VALUES (?, ?)`, s.AlbumID, s.Name)
	if err != nil {
		return persistence("create song", err)
	}
	s.ID = id
	return nil
}

func (t *Tx) GetSong(ctx context.Context, id int64) (*domain.Song, error) {
	var s domain.Song
	if err := t.get(ctx, &s, `SELECT id, album_id, name FROM songs WHERE id = ?`, id); err != nil {
		return nil, classify("get song", "song", id, err)
	}
	return &s, nil
}

func (t *Tx) UpdateSong(ctx context.Context, s *domain.Song) error {
	if err := t.mustExist(ctx, "song", constants.SongsTable, s.ID); err != nil {
		return err
	}
	if _, err := t.exec(ctx, `UPDATE songs SET name = ? WHERE id = ?`, s.Name, s.ID); err != nil {
		return persistence("update song", err)
	}
	return nil
}

func (t *Tx) DeleteSong(ctx context.Context, id int64) error {
	if err := t.mustExist(ctx, "song", constants.SongsTable, id); err != nil {
		return err
	}
	if _, err := t.exec(ctx, `DELETE FROM songs WHERE id = ?`, id); err != nil {
		return persistence("delete song", err)
	}
	return nil
}

// SongsForAlbums groups the songs of the given albums by album id.
func (t *Tx) SongsForAlbums(ctx context.Context, albumIDs []int64) (map[int64][]domain.Song, error) {
	out := make(map[int64][]domain.Song, len(albumIDs))
	if len(albumIDs) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(`SELECT id, album_id, name FROM songs WHERE album_id IN (?) ORDER BY id`, albumIDs)
	if err != nil {
		return nil, persistence("build songs query", err)
	}
	var songs []domain.Song
	if err := t.sel(ctx, &songs, query, args...); err != nil {
		return nil, persistence("list songs", err)
	}
	for _, s := range songs {
		out[s.AlbumID] = append(out[s.AlbumID], s)
	}
	return out, nil
}
