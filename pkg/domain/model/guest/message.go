package guest

// MessageType tells who authored a transcript entry. The values match the
// records persisted in the store, so changing them is a data migration.
type MessageType string

const (
	MessageTypeHuman MessageType = "human"
	MessageTypeAI    MessageType = "ai"
)

// Message is a single transcript entry.
type Message struct {
	Type    MessageType `firestore:"type" json:"type"`
	Content string      `firestore:"content" json:"content"`
}

func NewHumanMessage(content string) Message {
	return Message{Type: MessageTypeHuman, Content: content}
}

func NewAIMessage(content string) Message {
	return Message{Type: MessageTypeAI, Content: content}
}

// Valid reports whether the entry can be replayed into a prompt. Entries
// written by older clients may miss a type or content; they are skipped
// during replay, never rejected at write time.
func (x Message) Valid() bool {
	if x.Content == "" {
		return false
	}
	switch x.Type {
	case MessageTypeHuman, MessageTypeAI:
		return true
	}
	return false
}

// SanitizeHistory returns the replayable subset of a stored transcript,
// preserving order. The input slice is not modified.
func SanitizeHistory(history []Message) []Message {
	result := make([]Message, 0, len(history))
	for _, msg := range history {
		if msg.Valid() {
			result = append(result, msg)
		}
	}
	return result
}
