package app

import (
	"context"

	"github.com/cesargomez89/fyyur/internal/domain"
	"github.com/cesargomez89/fyyur/internal/store"
)

func (s *ArtistService) AddAlbum(ctx context.Context, in AlbumInput) (*domain.Album, error) {
	album, err := in.album(true)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		return tx.CreateAlbum(ctx, album)
	}); err != nil {
		return nil, err
	}
	s.log.WithArtist(album.ArtistID).Info("Album added", "album_id", album.ID, "name", album.Name)
	return album, nil
}

// UpdateAlbum renames album id and sets its year. The owner is kept.
func (s *ArtistService) UpdateAlbum(ctx context.Context, id int64, in AlbumInput) (*domain.Album, error) {
	album, err := in.album(false)
	if err != nil {
		return nil, err
	}
	album.ID = id
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		if err := tx.UpdateAlbum(ctx, album); err != nil {
			return err
		}
		current, err := tx.GetAlbum(ctx, id)
		if err != nil {
			return err
		}
		album.ArtistID = current.ArtistID
		return nil
	}); err != nil {
		return nil, err
	}
	s.log.Info("Album updated", "album_id", id)
	return album, nil
}

// DeleteAlbum removes the album and its songs.
func (s *ArtistService) DeleteAlbum(ctx context.Context, id int64) error {
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		return tx.DeleteAlbum(ctx, id)
	}); err != nil {
		return err
	}
	s.log.Info("Album deleted", "album_id", id)
	return nil
}

func (s *ArtistService) AddSong(ctx context.Context, in SongInput) (*domain.Song, error) {
	song, err := in.song(true)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		return tx.CreateSong(ctx, song)
	}); err != nil {
		return nil, err
	}
	s.log.Info("Song added", "song_id", song.ID, "album_id", song.AlbumID)
	return song, nil
}

func (s *ArtistService) UpdateSong(ctx context.Context, id int64, in SongInput) (*domain.Song, error) {
	song, err := in.song(false)
	if err != nil {
		return nil, err
	}
	song.ID = id
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		if err := tx.UpdateSong(ctx, song); err != nil {
			return err
		}
		current, err := tx.GetSong(ctx, id)
		if err != nil {
			return err
		}
		song.AlbumID = current.AlbumID
		return nil
	}); err != nil {
		return nil, err
	}
	s.log.Info("Song updated", "song_id", id)
	return song, nil
}

func (s *ArtistService) DeleteSong(ctx context.Context, id int64) error {
	if err := s.Repo.RunInTx(ctx, func(tx *store.Tx) error {
		return tx.DeleteSong(ctx, id)
	}); err != nil {
		return err
	}
	s.log.Info("Song deleted", "song_id", id)
	return nil
}
