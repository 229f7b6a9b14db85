package valueobjects

import "fmt"

type CaseStatus string

const (
	StatusOpen       CaseStatus = "OPEN"
	StatusInProgress CaseStatus = "IN_PROGRESS"
	StatusResolved   CaseStatus = "RESOLVED"
	StatusClosed     CaseStatus = "CLOSED"
)

var validCaseStatuses = map[CaseStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

// caseStatusTransitions is the forward-only state machine. RESOLVED and
// CLOSED are terminal: a case is never reopened.
var caseStatusTransitions = map[CaseStatus][]CaseStatus{
	StatusOpen: {
		StatusInProgress,
		StatusClosed,
	},
	StatusInProgress: {
		StatusResolved,
		StatusClosed,
	},
	StatusResolved: {},
	StatusClosed:   {},
}

func (cs CaseStatus) String() string {
	return string(cs)
}

func (cs CaseStatus) IsValid() bool {
	return validCaseStatuses[cs]
}

func (cs CaseStatus) CanTransitionTo(newStatus CaseStatus) bool {
	allowed, ok := caseStatusTransitions[cs]
	if !ok {
		return false
	}

	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

func (cs CaseStatus) IsOpen() bool {
	return cs == StatusOpen
}

func (cs CaseStatus) IsInProgress() bool {
	return cs == StatusInProgress
}

func (cs CaseStatus) IsResolved() bool {
	return cs == StatusResolved
}

func (cs CaseStatus) IsClosed() bool {
	return cs == StatusClosed
}

func (cs CaseStatus) IsTerminal() bool {
	return cs == StatusResolved || cs == StatusClosed
}

func NewCaseStatus(s string) (CaseStatus, error) {
	cs := CaseStatus(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid case status: %s", s)
	}
	return cs, nil
}
