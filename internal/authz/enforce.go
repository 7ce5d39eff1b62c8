package authz

import (
	"context"

	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/metrics"

	"github.com/rs/zerolog"
)

// Enforce runs Decide and turns the outcome into an error a service can
// return as is: ErrUnauthenticated for a missing actor, ErrForbidden on deny.
// The reason for a denial is logged, never returned.
func Enforce(ctx context.Context, actor *Actor, action Action, res Resource) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}

	allowed := Decide(actor, action, res)
	metrics.ObserveAuthzDecision(string(action), allowed)
	if allowed {
		return nil
	}

	zerolog.Ctx(ctx).Debug().
		Str("action", string(action)).
		Str("actorId", actor.ID.Hex()).
		Str("role", string(actor.Role)).
		Int("actorLdaCount", len(actor.scopedLDAIDs())).
		Msg("authorization denied")

	return apperrors.ErrForbidden
}
