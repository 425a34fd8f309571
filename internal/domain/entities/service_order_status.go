package entities

import "strings"

// ServiceOrderStatus is the lifecycle state of a service order (OS).
//
// The string values are part of the public contract (API payloads, DynamoDB items,
// status-index queries) and must not be renamed.
type ServiceOrderStatus string

const (
	StatusReceived         ServiceOrderStatus = "Received"
	StatusInDiagnosis      ServiceOrderStatus = "InDiagnosis"
	StatusAwaitingApproval ServiceOrderStatus = "AwaitingApproval"
	StatusInExecution      ServiceOrderStatus = "InExecution"
	StatusFinalized        ServiceOrderStatus = "Finalized"
	StatusCancelled        ServiceOrderStatus = "Cancelled"
	StatusQuoteExpired     ServiceOrderStatus = "QuoteExpired"
)

var allStatuses = []ServiceOrderStatus{
	StatusReceived,
	StatusInDiagnosis,
	StatusAwaitingApproval,
	StatusInExecution,
	StatusFinalized,
	StatusCancelled,
	StatusQuoteExpired,
}

// IsTerminal reports whether no further transition can leave s.
func (s ServiceOrderStatus) IsTerminal() bool {
	switch s {
	case StatusFinalized, StatusCancelled, StatusQuoteExpired:
		return true
	}
	return false
}

func (s ServiceOrderStatus) IsValid() bool {
	for _, v := range allStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseServiceOrderStatus resolves a status name ignoring case and surrounding spaces.
func ParseServiceOrderStatus(raw string) (ServiceOrderStatus, bool) {
	raw = strings.TrimSpace(raw)
	for _, v := range allStatuses {
		if strings.EqualFold(raw, string(v)) {
			return v, true
		}
	}
	return "", false
}
