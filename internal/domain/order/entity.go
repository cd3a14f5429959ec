// internal/domain/order/entity.go
package order

import (
	"github.com/your-org/storefront-bff/internal/infrastructure/services"
)

// State is the submission state machine position
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Submission tracks one order submission attempt. The payload is a snapshot
// taken when the machine enters Submitting; cart edits made while the call
// is in flight do not affect it. A failed submission is terminal but
// retryable: retry is a fresh submission from Idle.
type Submission struct {
	State         State                        `json:"state"`
	Payload       *services.CreateOrderRequest `json:"payload,omitempty"`
	Confirmation  string                       `json:"confirmation,omitempty"`
	FailureReason string                       `json:"failure_reason,omitempty"`
	Retryable     bool                         `json:"retryable,omitempty"`
}

// ValidationError rejects a submission locally, before any network call
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
