package spotify

// Track is a search hit reduced to what a recommendation needs.
type Track struct {
	ID     string
	Name   string
	Artist string // Comma-separated artist names
	URL    string // Open-in-Spotify link
}
