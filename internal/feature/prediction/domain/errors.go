// Package domain defines domain-level errors for the prediction feature.
package domain

import "errors"

// User-facing messages stored in the predictor state and returned by the HTTP layer.
const (
	MessageEmptySymbol       = "Please enter a stock symbol"
	MessageComputationFailed = "Failed to generate prediction. Please try again."
	MessageSuperseded        = "prediction superseded by a newer request"
)

var (
	// ErrEmptySymbol is the validation failure for a missing or blank symbol.
	// The run is rejected before any computation starts.
	ErrEmptySymbol = errors.New("stock symbol is required")

	// ErrComputation wraps any unexpected failure while generating or predicting.
	// No partial state is committed when it is returned.
	ErrComputation = errors.New("prediction computation failed")

	// ErrSuperseded is returned to a run whose result was discarded because a newer
	// request started before it completed.
	ErrSuperseded = errors.New(MessageSuperseded)
)
