package models

import "github.com/tidwall/gjson"

// TypeMessage is the type tag of a regular chat message. Other tags
// (for example "service") mark system entries.
const TypeMessage = "message"

// Document is a parsed chat export.
type Document struct {
	Root gjson.Result
}

func NewDocument(root gjson.Result) *Document {
	return &Document{Root: root}
}

// Messages returns the "messages" value and whether it is an array.
func (d *Document) Messages() (gjson.Result, bool) {
	if d == nil || !d.Root.IsObject() {
		return gjson.Result{}, false
	}
	messages := d.Root.Get("messages")
	return messages, messages.IsArray()
}

// Message is a read-only view over one entry of the export. Accessors
// report absence instead of failing on missing or mistyped fields.
type Message struct {
	raw gjson.Result
}

func NewMessage(raw gjson.Result) Message {
	return Message{raw: raw}
}

func (m Message) Type() string {
	if !m.raw.IsObject() {
		return ""
	}
	t := m.raw.Get("type")
	if t.Type != gjson.String {
		return ""
	}
	return t.Str
}

// SenderID returns from_id. Older exports store it as a number.
func (m Message) SenderID() (string, bool) {
	id := m.raw.Get("from_id")
	switch id.Type {
	case gjson.String:
		return id.Str, id.Str != ""
	case gjson.Number:
		return id.Raw, true
	default:
		return "", false
	}
}

// SenderName returns from. Deleted accounts have a null name.
func (m Message) SenderName() (string, bool) {
	name := m.raw.Get("from")
	if name.Type != gjson.String {
		return "", false
	}
	return name.Str, true
}

func (m Message) IsReply() bool {
	return m.raw.Get("reply_to_message_id").Exists()
}

func (m Message) IsEdited() bool {
	return m.raw.Get("edited").Exists()
}

func (m Message) HasPhoto() bool {
	return m.raw.Get("photo").Exists()
}

func (m Message) MediaType() (string, bool) {
	media := m.raw.Get("media_type")
	if media.Type != gjson.String {
		return "", false
	}
	return media.Str, true
}

// Text returns the text fragments of the message. A plain string payload
// yields a single fragment; object fragments contribute their "text" field.
// Fragments of any other shape are dropped. ok is false when the payload
// is neither a string nor an array.
func (m Message) Text() (fragments []string, ok bool) {
	text := m.raw.Get("text")
	switch {
	case text.Type == gjson.String:
		return []string{text.Str}, true
	case text.IsArray():
		text.ForEach(func(_, fragment gjson.Result) bool {
			switch {
			case fragment.Type == gjson.String:
				fragments = append(fragments, fragment.Str)
			case fragment.IsObject():
				if inner := fragment.Get("text"); inner.Type == gjson.String {
					fragments = append(fragments, inner.Str)
				}
			}
			return true
		})
		return fragments, true
	default:
		return nil, false
	}
}
