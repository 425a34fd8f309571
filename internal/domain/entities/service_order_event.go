package entities

import "time"

// ServiceOrderEventKind names the notifications downstream messaging reacts to.
type ServiceOrderEventKind string

const (
	EventBudgetReady ServiceOrderEventKind = "BudgetReady"
	EventCancelled   ServiceOrderEventKind = "Cancelled"
	EventFinalized   ServiceOrderEventKind = "Finalized"
)

// ServiceOrderEvent describes a notification produced by a status transition.
// The aggregate only builds it; publishing is up to the use case, after commit.
type ServiceOrderEvent struct {
	Kind       ServiceOrderEventKind `json:"kind"`
	OrderID    string                `json:"os_id"`
	OccurredAt time.Time             `json:"occurred_at"`
}
