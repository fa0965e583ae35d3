package entities

import "time"

// PendingPoll records which option of a dispatched quiz poll is correct, so a
// later poll-answer event can be resolved without re-fetching the question.
// The poll ID is the opaque identifier issued by Telegram and is trusted to be
// unique for the lifetime of the process.
type PendingPoll struct {
	PollID       string
	Category     string
	CorrectIndex int
	ChatID       int64
	MessageID    int
	SentAt       time.Time
}

// Expired reports whether the poll is past its retention window.
func (p PendingPoll) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(p.SentAt) > ttl
}
