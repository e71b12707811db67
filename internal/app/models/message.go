package models

import "time"

// Message is one entry of the append-only support chat log. Messages are
// never mutated or deleted; ordering is the store's insertion order.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
