package models

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const MaxMessageLen = 1000

// Message is the demo document stored in the "messages" collection.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CleanMessageText trims and validates message text.
func CleanMessageText(text string) (string, error) {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return "", errors.New("text is required")
	}
	if len(clean) > MaxMessageLen {
		return "", errors.New("text too long (max 1000 chars)")
	}
	return clean, nil
}
