package models

import "time"

// ArchivedMessage is the Mongo-persisted copy of a chat message, written by
// the archive worker for the staff management views.
type ArchivedMessage struct {
	ID         string    `bson:"_id" json:"id"`
	Path       string    `bson:"path" json:"path"`
	Text       string    `bson:"text" json:"text"`
	Sender     string    `bson:"sender" json:"sender"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
	ArchivedAt time.Time `bson:"archived_at" json:"archived_at"`
}
