package models

// JobStatus is the lifecycle stage of a tracked application.
// Saved → Applied → PhoneScreen/Interview/TechnicalTest → Offer → Accepted,
// with Rejected/Withdrawn possible at any point.
type JobStatus string

const (
	JobStatusSaved         JobStatus = "saved"
	JobStatusApplied       JobStatus = "applied"
	JobStatusPhoneScreen   JobStatus = "phone_screen"
	JobStatusInterview     JobStatus = "interview"
	JobStatusTechnicalTest JobStatus = "technical_test"
	JobStatusOffer         JobStatus = "offer"
	JobStatusAccepted      JobStatus = "accepted"
	JobStatusRejected      JobStatus = "rejected"
	JobStatusWithdrawn     JobStatus = "withdrawn"
)

// ValidJobStatuses lists every accepted status value, used by the validator.
var ValidJobStatuses = []JobStatus{
	JobStatusSaved,
	JobStatusApplied,
	JobStatusPhoneScreen,
	JobStatusInterview,
	JobStatusTechnicalTest,
	JobStatusOffer,
	JobStatusAccepted,
	JobStatusRejected,
	JobStatusWithdrawn,
}

func (s JobStatus) Valid() bool {
	for _, v := range ValidJobStatuses {
		if s == v {
			return true
		}
	}
	return false
}
