package lastfm

// Track is a Last.fm track as returned by tag.getTopTracks.
type Track struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Artist Artist `json:"artist"`
}

// Artist is the artist block nested in a track.
type Artist struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// topTracksResponse is the JSON response for tag.getTopTracks.
type topTracksResponse struct {
	Tracks struct {
		Track []Track `json:"track"`
		Attr  struct {
			Tag   string `json:"tag"`
			Total string `json:"total"`
		} `json:"@attr"`
	} `json:"tracks"`
}

// apiError represents a Last.fm API error response.
type apiError struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
}
