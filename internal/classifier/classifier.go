package classifier

import (
	"fmt"
	"strings"

	"github.com/xaenox/stataddict/internal/models"
)

// Classifier maps a message to the media counters it contributes to.
type Classifier interface {
	Classify(msg models.Message) []models.Category
}

// DefaultMediaTypes is the built-in media_type table of Telegram exports.
var DefaultMediaTypes = map[string]models.Category{
	"animation":     models.CategoryGIFs,
	"sticker":       models.CategoryStickers,
	"video_file":    models.CategoryVideos,
	"video_message": models.CategoryVideos,
	"audio_file":    models.CategoryAudio,
	"voice_message": models.CategoryAudio,
}

var mediaCategories = map[models.Category]bool{
	models.CategoryGIFs:     true,
	models.CategoryStickers: true,
	models.CategoryImages:   true,
	models.CategoryVideos:   true,
	models.CategoryAudio:    true,
}

// ParseMediaCategory resolves a counter name case-insensitively and accepts
// only counters a media item can feed.
func ParseMediaCategory(name string) (models.Category, error) {
	category := models.Category(strings.ToLower(strings.TrimSpace(name)))
	if !category.Valid() {
		return "", fmt.Errorf("unknown category %q", name)
	}
	if !mediaCategories[category] {
		return "", fmt.Errorf("category %q is not a media counter", name)
	}
	return category, nil
}

type MediaClassifier struct {
	mediaTypes map[string]models.Category
}

func NewMediaClassifier() *MediaClassifier {
	mediaTypes := make(map[string]models.Category, len(DefaultMediaTypes))
	for mediaType, category := range DefaultMediaTypes {
		mediaTypes[mediaType] = category
	}
	return &MediaClassifier{mediaTypes: mediaTypes}
}

// WithMediaTypes adds to or overrides the media_type table. Targets must be
// media counters, see ParseMediaCategory.
func (c *MediaClassifier) WithMediaTypes(extra map[string]string) (*MediaClassifier, error) {
	for mediaType, name := range extra {
		category, err := ParseMediaCategory(name)
		if err != nil {
			return nil, fmt.Errorf("media type %q: %w", mediaType, err)
		}
		c.mediaTypes[mediaType] = category
	}
	return c, nil
}

// Classify returns the media category of msg, if its media_type is known,
// followed by CategoryImages when the message carries a photo. The two are
// independent.
func (c *MediaClassifier) Classify(msg models.Message) []models.Category {
	var categories []models.Category

	if mediaType, ok := msg.MediaType(); ok {
		if category, known := c.mediaTypes[mediaType]; known {
			categories = append(categories, category)
		}
	}

	if msg.HasPhoto() {
		categories = append(categories, models.CategoryImages)
	}

	return categories
}
