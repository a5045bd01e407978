package payment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// State names a step of the checkout payment flow. The flow always runs
// verifying -> processing, then either confirming -> done on approval or
// declined. States are driven by the gateway result, not timers.
type State string

const (
	StateVerifying  State = "verifying"
	StateProcessing State = "processing"
	StateConfirming State = "confirming"
	StateDone       State = "done"
	StateDeclined   State = "declined"
)

// StateFunc observes flow state transitions. May be nil.
type StateFunc func(State)

// Flow runs a charge through the named checkout states.
type Flow struct {
	gateway Gateway
	logger  zerolog.Logger
}

// NewFlow creates a payment flow over the given gateway.
func NewFlow(gateway Gateway, logger zerolog.Logger) *Flow {
	return &Flow{
		gateway: gateway,
		logger:  logger.With().Str("component", "payment-flow").Logger(),
	}
}

// Run executes the charge, reporting each state through observe. It returns
// the gateway result on approval and an error on decline or transport
// failure.
func (f *Flow) Run(ctx context.Context, req Request, observe StateFunc) (Result, error) {
	report := func(s State) {
		if observe != nil {
			observe(s)
		}
	}

	report(StateVerifying)
	if req.Amount <= 0 {
		report(StateDeclined)
		return Result{}, fmt.Errorf("invalid charge amount: %v", req.Amount)
	}

	report(StateProcessing)
	result, err := f.gateway.Charge(ctx, req)
	if err != nil {
		report(StateDeclined)
		f.logger.Error().Err(err).Str("user_id", req.UserID).Msg("gateway charge failed")
		return Result{}, fmt.Errorf("gateway charge failed: %w", err)
	}

	if result.Status != StatusApproved {
		report(StateDeclined)
		f.logger.Warn().
			Str("user_id", req.UserID).
			Str("reason", result.Reason).
			Msg("charge declined by gateway")
		return result, fmt.Errorf("charge declined: %s", result.Reason)
	}

	report(StateConfirming)
	report(StateDone)
	return result, nil
}
