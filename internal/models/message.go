// Package models defines the conversation data types shared across docchat.
package models

import "github.com/google/uuid"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Kind distinguishes regular text turns from synthetic upload notices.
// Document notices are shown in the transcript but never sent to the model.
type Kind string

const (
	KindText     Kind = "text"
	KindDocument Kind = "document"
)

// Message is a single conversation turn. Exactly one Message exists per ID;
// a bot turn being revealed is replaced in place under the same ID.
type Message struct {
	ID      string
	Role    Role
	Kind    Kind
	Content string
}

// NewUserMessage creates a text turn authored by the user.
func NewUserMessage(content string) Message {
	return Message{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Kind:    KindText,
		Content: content,
	}
}

// NewBotMessage creates a text turn authored by the bot.
func NewBotMessage(content string) Message {
	return Message{
		ID:      uuid.NewString(),
		Role:    RoleBot,
		Kind:    KindText,
		Content: content,
	}
}

// NewDocumentNotice creates the synthetic user-visible record of an upload.
func NewDocumentNotice(content string) Message {
	return Message{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Kind:    KindDocument,
		Content: content,
	}
}
