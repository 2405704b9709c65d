package loan

import "errors"

var (
	ErrLoanNotFound         = errors.New("loan not found")
	ErrLoanAlreadyProcessed = errors.New("loan has already been processed")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
)
