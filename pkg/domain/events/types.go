package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	EventTypeAccountCreated    EventType = "Account.Created"
	EventTypeAccountsCleared   EventType = "Accounts.Cleared"
	EventTypeTransferCompleted EventType = "Transfer.Completed"
)

// String returns the event type name.
func (t EventType) String() string { return string(t) }

// Event is implemented by every domain event.
type Event interface {
	Type() EventType
}
