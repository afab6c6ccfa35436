package model

const (
	CampaignActive    = "active"
	CampaignCompleted = "completed"

	DonationCompleted = "completed"
	PaymentVerified   = "verified"

	VolunteerActive   = "active"
	VolunteerApproved = "approved"

	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"

	EquipmentPending = "pending"
)

// ValidApplicationStatus reports whether s is a known volunteer application state.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// CanTransition: pending -> approved | rejected; approved and rejected are
// terminal. Staying in the current state is always allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	return from == ApplicationPending && (to == ApplicationApproved || to == ApplicationRejected)
}
