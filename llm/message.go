package llm

import "strings"

// Role indicates the role of a message in a conversation. Either "user",
// "assistant", or "system".
type Role string

const (
	User      Role = "user"
	Assistant Role = "assistant"
	System    Role = "system"
)

func (r Role) String() string {
	return string(r)
}

// ContentType indicates the type of a content block in a message
type ContentType string

const (
	ContentTypeText ContentType = "text"
)

// Content is a single block of content in a message. A message may contain
// multiple content blocks.
type Content struct {
	Type ContentType `json:"type"`
	Text string      `json:"text,omitempty"`
}

// Message containing content passed to or from an LLM.
type Message struct {
	ID      string     `json:"id,omitempty"`
	Role    Role       `json:"role"`
	Content []*Content `json:"content"`
}

// Text returns the message text content. Specifically, it returns the last
// text content in the message. To retrieve a concatenated text from all
// message content, use CompleteText instead.
func (m *Message) Text() string {
	for i := len(m.Content) - 1; i >= 0; i-- {
		if m.Content[i].Type == ContentTypeText {
			return m.Content[i].Text
		}
	}
	return ""
}

// CompleteText returns a concatenated text from all message content. If there
// were multiple text contents, they are separated by two newlines.
func (m *Message) CompleteText() string {
	var sb strings.Builder
	for i, content := range m.Content {
		if content.Type == ContentTypeText {
			if i > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(content.Text)
		}
	}
	return sb.String()
}

// WithText appends a text content block to the message.
func (m *Message) WithText(text string) *Message {
	m.Content = append(m.Content, &Content{Type: ContentTypeText, Text: text})
	return m
}

// NewMessage creates a new message with the given role and content blocks.
func NewMessage(role Role, content []*Content) *Message {
	return &Message{Role: role, Content: content}
}

// NewUserMessage creates a new user message with a single text content block.
func NewUserMessage(text string) *Message {
	return &Message{
		Role:    User,
		Content: []*Content{{Type: ContentTypeText, Text: text}},
	}
}

// NewAssistantMessage creates a new assistant message with a single text
// content block.
func NewAssistantMessage(text string) *Message {
	return &Message{
		Role:    Assistant,
		Content: []*Content{{Type: ContentTypeText, Text: text}},
	}
}

// NewSystemMessage creates a new system message with a single text content
// block.
func NewSystemMessage(text string) *Message {
	return &Message{
		Role:    System,
		Content: []*Content{{Type: ContentTypeText, Text: text}},
	}
}

// NewSingleUserMessage creates a new user message with a single text content
// block and returns a slice of one message.
func NewSingleUserMessage(text string) []*Message {
	return []*Message{NewUserMessage(text)}
}
