package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// TracksService manages the user's saved tracks ("liked songs").
type TracksService struct {
	client *Client
}

func idsQuery(id string) url.Values {
	return url.Values{"ids": []string{id}}
}

// Contains reports whether the track is in the user's saved tracks.
func (s *TracksService) Contains(ctx context.Context, id string) (bool, error) {
	var saved []bool
	if _, err := s.client.doJSON(ctx, http.MethodGet, "/me/tracks/contains", idsQuery(id), &saved); err != nil {
		return false, err
	}
	if len(saved) != 1 {
		return false, fmt.Errorf("spotify: expected 1 result, got %d", len(saved))
	}
	return saved[0], nil
}

// Save adds the track to the user's saved tracks.
func (s *TracksService) Save(ctx context.Context, id string) error {
	_, err := s.client.doJSON(ctx, http.MethodPut, "/me/tracks", idsQuery(id), nil)
	return err
}

// Remove deletes the track from the user's saved tracks.
func (s *TracksService) Remove(ctx context.Context, id string) error {
	_, err := s.client.doJSON(ctx, http.MethodDelete, "/me/tracks", idsQuery(id), nil)
	return err
}
