package view

import "imgboard/internal/api"

// Track is one audio file's display state. Title and Artist start as
// fallbacks and are replaced by ResolveTracks when the backend has
// embedded tags.
type Track struct {
	File   api.FileRef
	Title  string
	Artist string

	// Cover is a data URI when artwork is embedded, CoverURL a plain
	// URL otherwise. At most one is set.
	Cover    string
	CoverURL string
}

// Album is the multi-track audio state for a post: which track is
// active and whether the track list is collapsed.
type Album struct {
	Tracks       []Track
	ActiveTrack  int
	Collapsed    bool
	VisibleLimit int
}

func newAlbum(audio []api.FileRef, limits Limits) *Album {
	tracks := make([]Track, len(audio))
	for i, f := range audio {
		title := f.Name
		if title == "" {
			title = limits.DefaultTrackTitle
		}
		tracks[i] = Track{File: f, Title: title, Artist: limits.DefaultArtist}
	}
	return &Album{
		Tracks:       tracks,
		Collapsed:    limits.MaxVisibleTracks > 0 && len(audio) > limits.MaxVisibleTracks,
		VisibleLimit: limits.MaxVisibleTracks,
	}
}

// SwitchTrack makes track i active. Out-of-range indexes are ignored.
func (a *Album) SwitchTrack(i int) {
	if i >= 0 && i < len(a.Tracks) {
		a.ActiveTrack = i
	}
}

// Active returns the currently selected track.
func (a *Album) Active() Track { return a.Tracks[a.ActiveTrack] }

// ToggleTracks flips the collapsed state. Albums within the visible
// limit stay expanded.
func (a *Album) ToggleTracks() {
	if a.VisibleLimit > 0 && len(a.Tracks) > a.VisibleLimit {
		a.Collapsed = !a.Collapsed
	}
}

// VisibleTracks returns the tracks to list given the collapsed state.
func (a *Album) VisibleTracks() []Track {
	if a.Collapsed && a.VisibleLimit > 0 && len(a.Tracks) > a.VisibleLimit {
		return a.Tracks[:a.VisibleLimit]
	}
	return a.Tracks
}

// HiddenCount returns how many tracks the collapsed list is hiding.
func (a *Album) HiddenCount() int {
	return len(a.Tracks) - len(a.VisibleTracks())
}
