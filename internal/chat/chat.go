// Package chat is the assistant page. No model is wired in yet; every
// message gets PlaceholderReply.
package chat

import (
	"errors"
	"strings"
)

// PlaceholderReply is the assistant's answer to every message.
const PlaceholderReply = "This is a placeholder response. Replace with actual model response."

// ErrEmptyMessage is returned for blank input.
var ErrEmptyMessage = errors.New("message is empty")

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// Conversation is the message history of one session.
type Conversation struct {
	messages []Message
}

func NewConversation() *Conversation {
	return &Conversation{}
}

// Send appends the user's message and the reply, and returns the reply.
func (c *Conversation) Send(text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}
	reply := Message{Role: RoleAssistant, Content: PlaceholderReply}
	c.messages = append(c.messages, Message{Role: RoleUser, Content: text}, reply)
	return reply, nil
}

// History returns a copy of all messages, oldest first.
func (c *Conversation) History() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Reset drops the history, e.g. on logout.
func (c *Conversation) Reset() {
	c.messages = nil
}
