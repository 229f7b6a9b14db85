package valueobjects

import "fmt"

type UrgencyLevel string

const (
	UrgencyEmergency   UrgencyLevel = "EMERGENCY"
	UrgencyUrgentVisit UrgencyLevel = "URGENT_VISIT"
	UrgencyClinicVisit UrgencyLevel = "CLINIC_VISIT"
	UrgencySelfCare    UrgencyLevel = "SELF_CARE"
)

var validUrgencyLevels = map[UrgencyLevel]bool{
	UrgencyEmergency:   true,
	UrgencyUrgentVisit: true,
	UrgencyClinicVisit: true,
	UrgencySelfCare:    true,
}

// urgencyPriorities defines the total clinical ordering used by the staff
// queue. An unset urgency sorts below every recognized tier.
var urgencyPriorities = map[UrgencyLevel]int{
	UrgencyEmergency:   4,
	UrgencyUrgentVisit: 3,
	UrgencyClinicVisit: 2,
	UrgencySelfCare:    1,
}

var urgencyRecommendations = map[UrgencyLevel]string{
	UrgencySelfCare:    "Monitor your symptoms. If they worsen, contact your healthcare provider.",
	UrgencyClinicVisit: "Schedule an appointment with your primary care provider within the next few days.",
	UrgencyUrgentVisit: "Visit an urgent care clinic or your doctor today.",
	UrgencyEmergency:   "Seek immediate emergency care. Call 911 or go to the nearest emergency room.",
}

func (u UrgencyLevel) String() string {
	return string(u)
}

func (u UrgencyLevel) IsValid() bool {
	return validUrgencyLevels[u]
}

func (u UrgencyLevel) Priority() int {
	return urgencyPriorities[u]
}

func (u UrgencyLevel) FollowUpRecommendation() string {
	return urgencyRecommendations[u]
}

func (u UrgencyLevel) IsEmergency() bool {
	return u == UrgencyEmergency
}

func (u UrgencyLevel) IsUrgentVisit() bool {
	return u == UrgencyUrgentVisit
}

func (u UrgencyLevel) IsClinicVisit() bool {
	return u == UrgencyClinicVisit
}

func (u UrgencyLevel) IsSelfCare() bool {
	return u == UrgencySelfCare
}

func NewUrgencyLevel(s string) (UrgencyLevel, error) {
	u := UrgencyLevel(s)
	if !u.IsValid() {
		return "", fmt.Errorf("invalid urgency level: %s", s)
	}
	return u, nil
}

// CoerceUrgencyLevel maps an unrecognized urgency string to the conservative
// middle tier instead of failing. The model occasionally invents labels; a
// triage case must never be dropped because of one.
func CoerceUrgencyLevel(s string) UrgencyLevel {
	u := UrgencyLevel(s)
	if u.IsValid() {
		return u
	}
	return UrgencyClinicVisit
}
