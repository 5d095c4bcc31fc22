package exporter

import (
	"context"

	"go.uber.org/zap"

	"github.com/aokabi/slack-export/internal/models"
)

// ResolveUsers resolves every identifier in ids to a UserInfo. A lookup that
// fails maps to the Unknown User sentinel instead of aborting the batch, so
// the result always has exactly one entry per requested identifier. Each
// fresh lookup is followed by the courtesy delay; identifiers already in the
// run-scoped cache cost nothing.
func (e *Exporter) ResolveUsers(ctx context.Context, ids map[string]struct{}) map[string]models.UserInfo {
	resolved := make(map[string]models.UserInfo, len(ids))
	for id := range ids {
		if info, ok := e.store.Get(id); ok {
			resolved[id] = info
			continue
		}
		info := e.lookupUser(ctx, id)
		e.store.Put(id, info)
		resolved[id] = info
		e.sleep(e.cfg.Export.RateLimitDelay)
	}
	return resolved
}

func (e *Exporter) lookupUser(ctx context.Context, id string) models.UserInfo {
	user, err := e.client.GetUserInfoContext(ctx, id)
	if err != nil {
		e.logger.Error("Failed to fetch user info",
			zap.Error(err),
			zap.String("user_id", id))
		return models.UserInfo{Name: "", DisplayName: unknownUser}
	}

	// The profile's real name wins; fall back to the display name.
	display := user.Profile.RealName
	if display == "" {
		display = user.Profile.DisplayName
	}
	return models.UserInfo{Name: user.Name, DisplayName: display}
}
