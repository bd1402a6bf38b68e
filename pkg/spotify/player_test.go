package spotify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
	})
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	return client
}

func TestCurrentlyPlaying(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me/player/currently-playing" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"is_playing": true,
			"item": {
				"id": "4iV5W9uYEdYUVa79Axb7Rh",
				"name": "Aerials",
				"album": {"id": "a1", "name": "Toxicity"},
				"artists": [{"id": "ar1", "name": "System of a Down"}]
			}
		}`))
	}))

	current, err := client.Player().CurrentlyPlaying(context.Background())
	if err != nil {
		t.Fatalf("CurrentlyPlaying() failed: %v", err)
	}
	if current == nil || !current.IsPlaying {
		t.Fatal("expected an actively playing track")
	}
	if current.Item.ID != "4iV5W9uYEdYUVa79Axb7Rh" || current.Item.Name != "Aerials" {
		t.Errorf("unexpected item: %+v", current.Item)
	}
	if current.Item.Artists[0].Name != "System of a Down" {
		t.Errorf("unexpected artist: %+v", current.Item.Artists)
	}
}

func TestCurrentlyPlayingNoContent(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	current, err := client.Player().CurrentlyPlaying(context.Background())
	if err != nil {
		t.Fatalf("CurrentlyPlaying() failed: %v", err)
	}
	if current != nil {
		t.Errorf("got %+v, expected nil for 204", current)
	}
}

func TestCurrentlyPlayingAPIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"status": 401, "message": "The access token expired"}}`))
	}))

	_, err := client.Player().CurrentlyPlaying(context.Background())
	if err == nil {
		t.Fatal("CurrentlyPlaying() succeeded, expected an error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is not a *spotify.Error: %v", err)
	}
	if apiErr.Status != 401 || apiErr.Message != "The access token expired" {
		t.Errorf("unexpected error contents: %+v", apiErr)
	}
	if apiErr.Temporary() {
		t.Error("401 must not be temporary")
	}
}

func TestWaitForPlayback(t *testing.T) {
	// 204 first, then a server error, then paused, then playing: the
	// poll must ride through all of it.
	var calls int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&calls, 1) {
		case 1:
			w.WriteHeader(http.StatusNoContent)
		case 2:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error": {"status": 500, "message": "oops"}}`))
		case 3:
			_, _ = w.Write([]byte(`{"is_playing": false, "item": {"id": "t1", "name": "Song"}}`))
		default:
			_, _ = w.Write([]byte(`{"is_playing": true, "item": {"id": "t1", "name": "Song"}}`))
		}
	}))

	current, err := client.Player().WaitForPlayback(context.Background(), time.Millisecond)
	if err != nil {
		t.Fatalf("WaitForPlayback() failed: %v", err)
	}
	if !current.IsPlaying || current.Item.ID != "t1" {
		t.Errorf("unexpected result: %+v", current)
	}
	if atomic.LoadInt32(&calls) < 4 {
		t.Errorf("poll made %d calls, expected at least 4", calls)
	}
}

func TestWaitForPlaybackFatalError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"status": 403, "message": "Insufficient scope"}}`))
	}))

	_, err := client.Player().WaitForPlayback(context.Background(), time.Millisecond)
	if err == nil {
		t.Fatal("WaitForPlayback() succeeded, expected an error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Status != 403 {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWaitForPlaybackHonorsContext(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Player().WaitForPlayback(ctx, 5*time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, expected context.DeadlineExceeded", err)
	}
}
