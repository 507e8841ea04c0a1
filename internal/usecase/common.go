package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/domain"
	"github.com/transit-backoffice/internal/domain/repository"
	"github.com/transit-backoffice/internal/usecase/dto"
)

// ChangePublisher emits a change event after a successful admin write.
// A nil publisher disables events without branching at call sites.
type ChangePublisher interface {
	PublishChange(entity, id, action string) error
}

// mutationHooks bundles the side effects every admin write shares:
// dropping the cached dashboard statistics and emitting a change event.
// Both are best effort; a failure is logged and never fails the write.
type mutationHooks struct {
	cacheRepo repository.CacheRepository
	publisher ChangePublisher
	logger    *zap.Logger
}

func (h *mutationHooks) afterMutation(ctx context.Context, entity, id, action string) {
	if h.cacheRepo != nil {
		if err := h.cacheRepo.Delete(ctx, statsCacheKey); err != nil {
			h.logger.Warn("Failed to invalidate statistics cache",
				zap.String("entity", entity),
				zap.Error(err))
		}
	}
	if h.publisher != nil {
		if err := h.publisher.PublishChange(entity, id, action); err != nil {
			h.logger.Warn("Failed to publish change event",
				zap.String("entity", entity),
				zap.String("id", id),
				zap.String("action", action),
				zap.Error(err))
		}
	}
}

// newLocalized mints a localized record from admin input.
func newLocalized(in *dto.LocalizedTextInput) *domain.LocalizedText {
	if in == nil {
		return nil
	}
	return &domain.LocalizedText{
		ID:  uuid.NewString(),
		En:  in.En,
		Ar:  in.Ar,
		Ckb: in.Ckb,
	}
}

// applyLocalized overwrites the slots of an existing record, minting a
// new one when the entity had none. A nil input leaves it untouched.
func applyLocalized(existing *domain.LocalizedText, in *dto.LocalizedTextInput) *domain.LocalizedText {
	if in == nil {
		return existing
	}
	if existing == nil {
		return newLocalized(in)
	}
	in.ApplyTo(existing)
	return existing
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
