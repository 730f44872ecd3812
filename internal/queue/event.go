// Package queue defines message payloads exchanged over the message broker.
package queue

// CatalogChangedEvent is published after every successful catalog or
// favorites mutation. It carries enough for downstream consumers to log or
// trigger analytics without querying the primary database.
type CatalogChangedEvent struct {
	Action     string `json:"action"`     // created | replaced | deleted
	Collection string `json:"collection"` // movies | favorites
	MovieID    string `json:"movie_id"`
	OwnerID    string `json:"owner_id"`
	Title      string `json:"title"`
	OccurredAt string `json:"occurred_at"`
}
