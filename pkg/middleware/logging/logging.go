// Package logging provides a middleware that traces every dispatch with a
// structured logger.
package logging

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/stratum"
	"github.com/aretw0/stratum/pkg/domain"
	"github.com/aretw0/stratum/pkg/ports"
)

// New returns a middleware that logs each dispatched action with a unique
// correlation id, its duration, and its outcome. Place it first in the
// middleware list to measure the whole chain.
func New[S any](logger *slog.Logger) stratum.Middleware[S] {
	return func(api ports.API[S]) func(stratum.Dispatch) stratum.Dispatch {
		return func(next stratum.Dispatch) stratum.Dispatch {
			return func(a domain.Action) (domain.Action, error) {
				id := uuid.NewString()
				start := time.Now()

				logger.Debug("dispatch start",
					"dispatch_id", id,
					"action", a.Type,
				)

				result, err := next(a)
				if err != nil {
					logger.Error("dispatch failed",
						"dispatch_id", id,
						"action", a.Type,
						"err", err,
						"duration", time.Since(start),
					)
					return result, err
				}

				logger.Info("dispatch complete",
					"dispatch_id", id,
					"action", a.Type,
					"duration", time.Since(start),
				)
				return result, nil
			}
		}
	}
}
