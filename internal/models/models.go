package models

// Category names one of the per-user activity counters.
type Category string

const (
	CategoryMessages   Category = "messages"
	CategoryCharacters Category = "characters"
	CategoryReplies    Category = "replies"
	CategoryEdits      Category = "edits"
	CategoryGIFs       Category = "gifs"
	CategoryStickers   Category = "stickers"
	CategoryImages     Category = "images"
	CategoryVideos     Category = "videos"
	CategoryAudio      Category = "audio"
)

// Categories lists every counter in report order.
var Categories = []Category{
	CategoryMessages,
	CategoryCharacters,
	CategoryReplies,
	CategoryEdits,
	CategoryGIFs,
	CategoryStickers,
	CategoryImages,
	CategoryVideos,
	CategoryAudio,
}

var categoryTitles = map[Category]string{
	CategoryMessages:   "Messages",
	CategoryCharacters: "Characters",
	CategoryReplies:    "Replies",
	CategoryEdits:      "Edited messages",
	CategoryGIFs:       "GIFs",
	CategoryStickers:   "Stickers",
	CategoryImages:     "Images",
	CategoryVideos:     "Videos",
	CategoryAudio:      "Audio",
}

// Title returns the report header for the category.
func (c Category) Title() string {
	if title, ok := categoryTitles[c]; ok {
		return title
	}
	return string(c)
}

// Valid reports whether c is one of the known counters.
func (c Category) Valid() bool {
	_, ok := categoryTitles[c]
	return ok
}

// UserCount is one ranked row of a counter.
type UserCount struct {
	UserID string `json:"user_id"`
	Count  uint64 `json:"count"`
}

// User is a chat participant as seen in the export.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
