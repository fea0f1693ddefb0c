package render

import (
	"fmt"
	"time"

	"imgboard/internal/feed"
)

// categoryNames maps filter codes to display names. Codes stay in
// flags, config and comparisons; words go to humans.
var categoryNames = map[feed.Category]string{
	feed.CategoryAll:   "Everything",
	feed.CategoryImage: "Images",
	feed.CategoryVideo: "Video",
	feed.CategoryAudio: "Audio",
	feed.CategoryText:  "Text only",
	feed.CategoryOther: "Other files",
}

// CategoryName returns the human-readable name for a category code.
// Unknown codes are returned as-is.
func CategoryName(c feed.Category) string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

var sortNames = map[feed.SortKey]string{
	feed.SortByDate:    "date",
	feed.SortByUpvotes: "votes",
}

// SortName returns "date ↓" style labels for the active ordering.
func SortName(key feed.SortKey, dir feed.SortDirection) string {
	name, ok := sortNames[key]
	if !ok {
		name = string(key)
	}
	arrow := "↑"
	if dir == feed.Descending {
		arrow = "↓"
	}
	return name + " " + arrow
}

// FormatSize renders a byte count with a binary unit, two decimals max.
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(bytes)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", bytes)
	}
	return fmt.Sprintf("%.2f %s", size, units[i])
}

// FormatDate renders a timestamp the way the board displays post dates.
func FormatDate(t time.Time) string {
	return t.Local().Format("02.01.2006 15:04:05")
}
