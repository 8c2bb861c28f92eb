package domain

type EventType string

const (
	EventTransactionRecorded EventType = "transaction.recorded"
	EventTransactionDeleted  EventType = "transaction.deleted"
	EventJoinCodeRotated     EventType = "business.join_code_rotated"
	EventMemberJoined        EventType = "business.member_joined"
)

type Event struct {
	Type       EventType         `json:"type"`
	BusinessID string            `json:"business_id"`
	BookID     string            `json:"book_id,omitempty"`
	ActorID    string            `json:"actor_id,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt int64             `json:"occurred_at"`
}
