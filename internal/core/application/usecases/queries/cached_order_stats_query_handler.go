package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/cache"
	"laundry/internal/pkg/errs"
)

// OrderStatsHandler is the contract the cached decorator wraps.
type OrderStatsHandler interface {
	Handle(ctx context.Context, query GetOrderStatsQuery) (OrderStatsResponse, error)
}

// CachedOrderStatsQueryHandler serves fleet statistics from a short-lived
// cache. The permission check runs on every call, cache hit or miss; only
// the aggregation result is shared, and it is the same for every admin.
type CachedOrderStatsQueryHandler struct {
	inner  OrderStatsHandler
	policy services.AccessPolicy
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedOrderStatsQueryHandler wraps an OrderStatsHandler with caching.
func NewCachedOrderStatsQueryHandler(
	inner OrderStatsHandler,
	policy services.AccessPolicy,
	statsCache cache.Cache,
	ttl time.Duration,
	logger *slog.Logger,
) CachedOrderStatsQueryHandler {
	return CachedOrderStatsQueryHandler{
		inner:  inner,
		policy: policy,
		cache:  statsCache,
		ttl:    ttl,
		logger: logger,
	}
}

// Handle returns the cached aggregate when fresh, otherwise recomputes and
// stores it. Cache failures degrade to a direct read, never to an error.
func (h CachedOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (OrderStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatsResponse{}, err
	}

	actor := query.Actor()
	if !h.policy.CanViewFleetStats(actor) {
		return OrderStatsResponse{}, errs.NewForbiddenError(actor.ID.String(), "view fleet statistics")
	}

	key := h.cache.GenerateKey("order-stats", "fleet")
	cached, err := h.cache.Get(ctx, key)
	if err != nil {
		h.logger.WarnContext(ctx, "stats cache read failed", "error", err)
	} else if cached != "" {
		var resp OrderStatsResponse
		if err = json.Unmarshal([]byte(cached), &resp); err == nil {
			return resp, nil
		}
		h.logger.WarnContext(ctx, "stats cache entry corrupt", "error", err)
	}

	resp, err := h.inner.Handle(ctx, query)
	if err != nil {
		return OrderStatsResponse{}, err
	}

	payload, err := json.Marshal(resp)
	if err == nil {
		if err = h.cache.Set(ctx, key, payload, h.ttl); err != nil {
			h.logger.WarnContext(ctx, "stats cache write failed", "error", err)
		}
	}

	return resp, nil
}
