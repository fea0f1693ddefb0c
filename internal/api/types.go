package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// isoLayouts are the timestamp layouts the backend is known to emit.
// FastAPI-style backends serialize naive datetimes without a zone
// suffix; those are interpreted as UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// Timestamp is a point in time serialized as an ISO 8601 string. On
// deserialization it accepts both zoned and naive forms; serialization
// always produces RFC 3339.
type Timestamp time.Time

// Time returns the underlying time.Time value.
func (t Timestamp) Time() time.Time { return time.Time(t) }

// MarshalJSON serializes Timestamp as an RFC 3339 string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON deserializes an ISO 8601 string, zoned or naive.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("unmarshal timestamp: %w", err)
	}
	for _, layout := range isoLayouts {
		parsed, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			*t = Timestamp(parsed)
			return nil
		}
	}
	return fmt.Errorf("unmarshal timestamp: unrecognized value %q", s)
}

// FlexID is a nullable integer identifier that tolerates the backend
// emitting it as a JSON number or as a numeric string. Ownership
// checks compare ids as int64; decoding normalizes both wire forms so
// the comparison never sees a string.
type FlexID struct {
	Value int64
	Valid bool
}

// ID returns a present FlexID.
func ID(v int64) FlexID { return FlexID{Value: v, Valid: true} }

// Equal reports whether both ids are present and denote the same integer.
func (f FlexID) Equal(other FlexID) bool {
	return f.Valid && other.Valid && f.Value == other.Value
}

// MarshalJSON serializes as a JSON number, or null when absent.
func (f FlexID) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// UnmarshalJSON accepts a number, a numeric string, or null.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = FlexID{}
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("unmarshal id: unrecognized value %s", string(data))
	}
	*f = FlexID{Value: v, Valid: true}
	return nil
}

// FileRef is one attached file's metadata and URL. ID is absent for
// files ingested from the legacy single-file post shape; metadata
// lookups for those go through the legacy post endpoint.
type FileRef struct {
	ID        FlexID `json:"id,omitempty"`
	URL       string `json:"file_url"`
	MimeType  string `json:"file_type"`
	Name      string `json:"file_name"`
	SizeBytes int64  `json:"file_size,omitempty"`
}

// Post is a user-submitted feed item with optional text and attached files.
type Post struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	Date       Timestamp `json:"date"`
	AuthorID   FlexID    `json:"author_id"`
	AuthorNick string    `json:"author_nick,omitempty"`
	Upvotes    int64     `json:"upvotes"`
	Files      []FileRef `json:"files,omitempty"`

	// Legacy single-file shape; folded into Files by normalize().
	LegacyFileURL  string `json:"file_url,omitempty"`
	LegacyFileType string `json:"file_type,omitempty"`
	LegacyFileName string `json:"file_name,omitempty"`
}

// normalize folds the legacy single-file fields into Files so callers
// only ever deal with one representation.
func (p *Post) normalize() {
	if len(p.Files) == 0 && p.LegacyFileURL != "" {
		p.Files = []FileRef{{
			URL:      p.LegacyFileURL,
			MimeType: p.LegacyFileType,
			Name:     p.LegacyFileName,
		}}
	}
	p.LegacyFileURL = ""
	p.LegacyFileType = ""
	p.LegacyFileName = ""
}

// Comment is a reply attached to a post. Soft-deleted comments may
// still appear in a fetched batch; filtering is the caller's concern.
type Comment struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"post_id"`
	Text       string    `json:"text"`
	Date       Timestamp `json:"date"`
	AuthorID   FlexID    `json:"author_id"`
	AuthorNick string    `json:"author_nick,omitempty"`
	IsDeleted  bool      `json:"is_deleted"`
}

// TokenResponse is the payload of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// UserProfile is the authenticated user's identity.
type UserProfile struct {
	ID   FlexID `json:"id"`
	Nick string `json:"nick"`
}

// TrackMetadata holds embedded tags for one audio file. Cover is a
// data URI when the artwork is embedded; CoverURL points at a served
// image otherwise. All fields may be empty.
type TrackMetadata struct {
	Title    string `json:"title,omitempty"`
	Artist   string `json:"artist,omitempty"`
	Album    string `json:"album,omitempty"`
	Cover    string `json:"cover,omitempty"`
	CoverURL string `json:"cover_url,omitempty"`
}

// errorRS is the backend error response shape. Detail is a string for
// application errors and a structured list for validation errors.
type errorRS struct {
	Detail json.RawMessage `json:"detail"`
}

// detailString flattens the detail payload to a displayable message.
func (e errorRS) detailString() string {
	if len(e.Detail) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(e.Detail, &s) == nil {
		return s
	}
	return string(e.Detail)
}
