package stats

import (
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/xaenox/stataddict/internal/classifier"
	"github.com/xaenox/stataddict/internal/models"
	"github.com/xaenox/stataddict/internal/storage"
	"go.uber.org/zap"
)

type Aggregator struct {
	storage    storage.Storage
	classifier classifier.Classifier
	logger     *zap.Logger
}

func NewAggregator(storage storage.Storage, classifier classifier.Classifier, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		storage:    storage,
		classifier: classifier,
		logger:     logger,
	}
}

// Generate resets the storage and counts every "message" entry of doc.
// Entries without a sender are skipped whole; a missing text only skips
// the character count.
func (a *Aggregator) Generate(doc *models.Document) (*models.CounterSet, error) {
	a.storage.Reset()

	logger := a.logger.With(zap.String("run_id", uuid.NewString()))

	if doc == nil || !doc.Root.IsObject() {
		return nil, &ProcessingError{Reason: "chat history is not a JSON object"}
	}
	messages, ok := doc.Messages()
	if !ok {
		return nil, &ProcessingError{Reason: `"messages" is missing or not an array`}
	}

	total, counted := 0, 0
	messages.ForEach(func(_, raw gjson.Result) bool {
		total++
		if a.process(models.NewMessage(raw), logger) {
			counted++
		}
		return true
	})

	set := a.storage.Snapshot()
	logger.Debug("Statistics generated",
		zap.Int("entries", total),
		zap.Int("messages", counted),
		zap.Int("skipped", set.Skipped),
		zap.Int("users", len(set.Users)))

	return set, nil
}

func (a *Aggregator) process(msg models.Message, logger *zap.Logger) bool {
	if msg.Type() != models.TypeMessage {
		return false
	}

	senderID, ok := msg.SenderID()
	if !ok {
		a.storage.Skip()
		logger.Debug("Skipping message without sender")
		return false
	}

	if name, ok := msg.SenderName(); ok {
		a.storage.SetUser(models.User{ID: senderID, Name: name})
	} else {
		a.storage.AddUser(senderID)
	}

	a.storage.Add(models.CategoryMessages, senderID, 1)

	if msg.IsReply() {
		a.storage.Add(models.CategoryReplies, senderID, 1)
	}
	if msg.IsEdited() {
		a.storage.Add(models.CategoryEdits, senderID, 1)
	}

	if fragments, ok := msg.Text(); ok {
		var length uint64
		for _, fragment := range fragments {
			length += uint64(UTF8Length(fragment))
		}
		a.storage.Add(models.CategoryCharacters, senderID, length)
	} else {
		logger.Debug("Message has no text payload", zap.String("user_id", senderID))
	}

	for _, category := range a.classifier.Classify(msg) {
		a.storage.Add(category, senderID, 1)
	}

	return true
}
