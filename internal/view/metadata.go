package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"imgboard/internal/api"
)

// MetadataGateway is the slice of the API client the resolver needs.
type MetadataGateway interface {
	FileMetadata(ctx context.Context, postID, fileID int64) (*api.TrackMetadata, error)
	PostMetadata(ctx context.Context, postID int64) (*api.TrackMetadata, error)
}

// ResolveTracks fetches embedded tags for every track concurrently and
// returns the resolved copies. Each lookup owns exactly one result
// slot, so no shared state is mutated; a failed or empty lookup only
// degrades its own track to the filename/default fallbacks and never
// aborts the batch. The join is all-complete: the returned slice is
// final for every track.
func ResolveTracks(ctx context.Context, gw MetadataGateway, postID int64, tracks []Track, limits Limits) []Track {
	resolved := make([]Track, len(tracks))
	copy(resolved, tracks)

	g, ctx := errgroup.WithContext(ctx)
	for i := range resolved {
		i := i
		g.Go(func() error {
			// Failures are folded into the slot, never returned, so
			// one bad track cannot cancel its siblings.
			t := &resolved[i]
			meta, err := lookup(ctx, gw, postID, t.File)
			if err != nil || meta == nil {
				applyFallback(t, limits)
				return nil
			}
			applyMetadata(t, meta, limits)
			return nil
		})
	}
	_ = g.Wait()
	return resolved
}

func lookup(ctx context.Context, gw MetadataGateway, postID int64, f api.FileRef) (*api.TrackMetadata, error) {
	if f.ID.Valid {
		return gw.FileMetadata(ctx, postID, f.ID.Value)
	}
	// Legacy single-file posts have no per-file id.
	return gw.PostMetadata(ctx, postID)
}

func applyMetadata(t *Track, meta *api.TrackMetadata, limits Limits) {
	t.Title = meta.Title
	t.Artist = meta.Artist
	t.Cover = meta.Cover
	t.CoverURL = meta.CoverURL
	if t.Title == "" || t.Artist == "" {
		fallback := *t
		applyFallback(&fallback, limits)
		if t.Title == "" {
			t.Title = fallback.Title
		}
		if t.Artist == "" {
			t.Artist = fallback.Artist
		}
	}
}

func applyFallback(t *Track, limits Limits) {
	t.Title = t.File.Name
	if t.Title == "" {
		t.Title = limits.DefaultTrackTitle
	}
	t.Artist = limits.DefaultArtist
}
