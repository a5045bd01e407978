package payment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SimulatedConfig tunes the stand-in gateway.
type SimulatedConfig struct {
	// Latency is how long a charge takes end to end.
	Latency time.Duration

	// DeclinePrefixes lists card-number prefixes that are declined.
	// Everything else is approved.
	DeclinePrefixes []string
}

// DefaultSimulatedConfig returns the default gateway tuning: a short fixed
// latency and the conventional "0000" test prefix declined.
func DefaultSimulatedConfig() SimulatedConfig {
	return SimulatedConfig{
		Latency:         50 * time.Millisecond,
		DeclinePrefixes: []string{"0000"},
	}
}

// simulatedGateway is a deterministic in-process Gateway used where no real
// acquirer is wired up. The outcome depends only on the card number, so
// tests and demo deployments behave predictably.
type simulatedGateway struct {
	cfg    SimulatedConfig
	logger zerolog.Logger
}

// NewSimulatedGateway creates the stand-in gateway.
func NewSimulatedGateway(cfg SimulatedConfig, logger zerolog.Logger) Gateway {
	return &simulatedGateway{
		cfg:    cfg,
		logger: logger.With().Str("component", "simulated-gateway").Logger(),
	}
}

// Charge resolves the request after the configured latency, honouring
// context cancellation.
func (g *simulatedGateway) Charge(ctx context.Context, req Request) (Result, error) {
	if g.cfg.Latency > 0 {
		timer := time.NewTimer(g.cfg.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-timer.C:
		}
	}

	for _, prefix := range g.cfg.DeclinePrefixes {
		if prefix != "" && strings.HasPrefix(req.CardNumber, prefix) {
			g.logger.Warn().
				Str("user_id", req.UserID).
				Float64("amount", req.Amount).
				Msg("charge declined")
			return Result{
				Status:    StatusDeclined,
				Reference: uuid.NewString(),
				Reason:    "card declined",
			}, nil
		}
	}

	g.logger.Debug().
		Str("user_id", req.UserID).
		Float64("amount", req.Amount).
		Str("currency", req.Currency).
		Msg("charge approved")

	return Result{
		Status:    StatusApproved,
		Reference: uuid.NewString(),
	}, nil
}
