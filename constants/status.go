package constants

// RecognitionStatus is the status string reported by the recognition service
// while an analyze job is in flight.
type RecognitionStatus string

// Documented analyze statuses. Anything else is a contract violation.
const (
	RecognitionNotStarted RecognitionStatus = "notStarted"
	RecognitionRunning    RecognitionStatus = "running"
	RecognitionSucceeded  RecognitionStatus = "succeeded"
	RecognitionFailed     RecognitionStatus = "failed"
)

// Terminal reports whether the status ends the poll loop.
func (s RecognitionStatus) Terminal() bool {
	return s == RecognitionSucceeded || s == RecognitionFailed
}

// Recognized reports whether the status is one the service documents.
func (s RecognitionStatus) Recognized() bool {
	switch s {
	case RecognitionNotStarted, RecognitionRunning, RecognitionSucceeded, RecognitionFailed:
		return true
	}
	return false
}

// TrainingStatus is reported at modelInfo.status while model training runs.
type TrainingStatus string

const (
	TrainingReady   TrainingStatus = "ready"
	TrainingInvalid TrainingStatus = "invalid"
)
