package favorites

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/topongo/playing/pkg/spotify"
)

// toggleHandler fakes the three Spotify endpoints Toggle touches.
type toggleHandler struct {
	saved   bool
	playing string // track id, empty = nothing playing
	puts    int
	deletes int
}

func (h *toggleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/me/player/currently-playing":
		if h.playing == "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(`{"is_playing": true, "item": {"id": "` + h.playing + `", "name": "Song"}}`))
	case r.URL.Path == "/me/tracks/contains":
		if h.saved {
			_, _ = w.Write([]byte(`[true]`))
		} else {
			_, _ = w.Write([]byte(`[false]`))
		}
	case r.URL.Path == "/me/tracks" && r.Method == http.MethodPut:
		h.puts++
		w.WriteHeader(http.StatusOK)
	case r.URL.Path == "/me/tracks" && r.Method == http.MethodDelete:
		h.deletes++
		w.WriteHeader(http.StatusOK)
	default:
		http.NotFound(w, r)
	}
}

func newToggleClient(t *testing.T, handler *toggleHandler) Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	api, err := spotify.NewClient(spotify.Config{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
	})
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	return &spotifyClient{api: api}
}

func TestToggleAddsUnsavedTrack(t *testing.T) {
	handler := &toggleHandler{playing: "t1", saved: false}
	client := newToggleClient(t, handler)

	added, err := client.Toggle(context.Background())
	if err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}
	if !added {
		t.Error("Toggle() = false, expected true for an unsaved track")
	}
	if handler.puts != 1 || handler.deletes != 0 {
		t.Errorf("got %d puts and %d deletes, expected 1 put", handler.puts, handler.deletes)
	}
}

func TestToggleRemovesSavedTrack(t *testing.T) {
	handler := &toggleHandler{playing: "t1", saved: true}
	client := newToggleClient(t, handler)

	added, err := client.Toggle(context.Background())
	if err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}
	if added {
		t.Error("Toggle() = true, expected false for a saved track")
	}
	if handler.deletes != 1 || handler.puts != 0 {
		t.Errorf("got %d puts and %d deletes, expected 1 delete", handler.puts, handler.deletes)
	}
}

func TestToggleWithNothingPlaying(t *testing.T) {
	client := newToggleClient(t, &toggleHandler{})

	if _, err := client.Toggle(context.Background()); err == nil {
		t.Error("Toggle() succeeded with nothing playing, expected an error")
	}
}

func TestNewSpotifyClientRequiresCredentials(t *testing.T) {
	_, err := NewSpotifyClient(Credentials{}, 0, zerolog.Nop())
	if err == nil {
		t.Error("NewSpotifyClient() without credentials succeeded, expected an error")
	}
}
