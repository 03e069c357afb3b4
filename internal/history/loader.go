package history

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
	"github.com/xaenox/stataddict/internal/models"
)

var ErrInvalidJSON = errors.New("invalid JSON")

// LoadError reports that a chat export could not be opened or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to load chat history: %v", e.Err)
	}
	return fmt.Sprintf("failed to load chat history %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the chat export at path. Only JSON syntax is checked here;
// the structure is left to the aggregator.
func Load(path string) (*models.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("error reading file: %w", err)}
	}

	doc, err := Parse(data)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Parse validates and parses an in-memory chat export.
func Parse(data []byte) (*models.Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, &LoadError{Err: ErrInvalidJSON}
	}
	return models.NewDocument(gjson.ParseBytes(data)), nil
}
