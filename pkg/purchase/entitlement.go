package purchase

// HasAccess reports whether the purchase list grants paid access to a song.
// A single completed song purchase is sufficient; pending or declined
// records grant nothing. A nil or empty list never grants access.
func HasAccess(songID string, purchases []*Purchase) bool {
	for _, p := range purchases {
		if p == nil {
			continue
		}
		if p.SongID == songID && p.Status == StatusCompleted && p.Type == TypeSong {
			return true
		}
	}
	return false
}
