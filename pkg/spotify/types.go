package spotify

// Artist is a simplified artist object.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Album is a simplified album object.
type Album struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Track is a simplified track object.
type Track struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Album   Album    `json:"album"`
	Artists []Artist `json:"artists"`
}

// CurrentlyPlaying is the response from the currently-playing endpoint.
// Item is nil when Spotify reports a non-track context (podcast episode,
// ad) or withholds the item.
type CurrentlyPlaying struct {
	IsPlaying bool   `json:"is_playing"`
	Item      *Track `json:"item"`
}

// apiError is the JSON envelope Spotify wraps errors in.
type apiError struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}
