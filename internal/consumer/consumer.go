// Package consumer contains interface of the event log consumer.
package consumer

import (
	"context"

	"github.com/brettericmartin/tee-club-engine/internal/health"
)

//go:generate mockgen -destination=./mock/consumer.go -package=mock -source=consumer.go

// Consumer consumes engagement events from the event log.
type Consumer interface {
	health.Pinger

	Run(ctx context.Context) error
}
