package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestTimestamp_Unmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{`"2024-03-01T12:30:45Z"`, time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)},
		{`"2024-03-01T12:30:45+03:00"`, time.Date(2024, 3, 1, 9, 30, 45, 0, time.UTC)},
		// Naive forms are interpreted as UTC.
		{`"2024-03-01T12:30:45"`, time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)},
		{`"2024-03-01T12:30:45.123456"`, time.Date(2024, 3, 1, 12, 30, 45, 123456000, time.UTC)},
	}
	for _, tc := range cases {
		var ts Timestamp
		if err := json.Unmarshal([]byte(tc.in), &ts); err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if !ts.Time().UTC().Equal(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.in, ts.Time().UTC(), tc.want)
		}
	}
}

func TestTimestamp_UnmarshalRejectsGarbage(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Error("expected error for unrecognized timestamp")
	}
	if err := json.Unmarshal([]byte(`42`), &ts); err == nil {
		t.Error("expected error for non-string timestamp")
	}
}

func TestFlexID_Unmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want FlexID
	}{
		{`7`, ID(7)},
		{`"7"`, ID(7)}, // numeric string normalizes to the same id
		{`null`, FlexID{}},
	}
	for _, tc := range cases {
		var f FlexID
		if err := json.Unmarshal([]byte(tc.in), &f); err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if f != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.in, f, tc.want)
		}
	}

	var f FlexID
	if err := json.Unmarshal([]byte(`"abc"`), &f); err == nil {
		t.Error("expected error for non-numeric string")
	}
}

func TestFlexID_Equal(t *testing.T) {
	if !ID(3).Equal(ID(3)) {
		t.Error("same ids must be equal")
	}
	if ID(3).Equal(ID(4)) {
		t.Error("different ids must not be equal")
	}
	// An absent id never matches anything, including another absent id.
	if (FlexID{}).Equal(FlexID{}) {
		t.Error("absent ids must not compare equal")
	}
	if ID(0).Equal(FlexID{}) {
		t.Error("present zero must not equal absent")
	}
}

func TestFlexID_MarshalRoundtrip(t *testing.T) {
	got, err := json.Marshal(ID(12))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "12" {
		t.Errorf("present id: got %s", got)
	}
	got, err = json.Marshal(FlexID{})
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "null" {
		t.Errorf("absent id: got %s", got)
	}
}

func TestPost_NormalizeLegacyShape(t *testing.T) {
	var post Post
	raw := `{"id":5,"text":"old","file_url":"/media/song.mp3","file_type":"audio/mpeg","file_name":"song.mp3"}`
	if err := json.Unmarshal([]byte(raw), &post); err != nil {
		t.Fatal(err)
	}
	post.normalize()

	want := []FileRef{{URL: "/media/song.mp3", MimeType: "audio/mpeg", Name: "song.mp3"}}
	if diff := cmp.Diff(want, post.Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
	if post.Files[0].ID.Valid {
		t.Error("legacy file must carry no id")
	}
	if post.LegacyFileURL != "" || post.LegacyFileType != "" || post.LegacyFileName != "" {
		t.Error("legacy fields must be cleared after normalize")
	}
}

func TestPost_NormalizeKeepsModernShape(t *testing.T) {
	post := Post{
		ID:    6,
		Files: []FileRef{{ID: ID(1), URL: "/media/a.jpg", MimeType: "image/jpeg", Name: "a.jpg"}},
		// Legacy fields alongside files[] must not produce a duplicate.
		LegacyFileURL: "/media/a.jpg",
	}
	post.normalize()
	if len(post.Files) != 1 {
		t.Errorf("expected 1 file, got %d", len(post.Files))
	}
}

func TestErrorRS_DetailString(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`{"detail":"Not found"}`, "Not found"},
		{`{"detail":[{"msg":"field required"}]}`, `[{"msg":"field required"}]`},
		{`{}`, ""},
	}
	for _, tc := range cases {
		var rs errorRS
		if err := json.Unmarshal([]byte(tc.raw), &rs); err != nil {
			t.Fatal(err)
		}
		if got := rs.detailString(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.raw, got, tc.want)
		}
	}
}
