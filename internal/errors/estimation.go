package errors

import (
	stderrors "errors"
	"fmt"
)

// AgeEstimationErrorCode is the machine-readable code the backend places in an
// HTTP 500 body on the birthdate/recheck endpoints when camera-based age
// estimation must be attempted before the evaluation can proceed.
const AgeEstimationErrorCode = 561

// EstimationRequiredError is a control-flow signal, not a failure: the
// orchestrator branches on it distinctly from both success and ordinary
// gateway errors.
type EstimationRequiredError struct {
	Code    int    `json:"code"`
	Message string `json:"msg,omitempty"`
}

func (e *EstimationRequiredError) Error() string {
	return fmt.Sprintf("age estimation required (code %d): %s", e.Code, e.Message)
}

// IsEstimationRequired reports whether err carries the age-estimation signal.
func IsEstimationRequired(err error) bool {
	var target *EstimationRequiredError
	return stderrors.As(err, &target)
}
