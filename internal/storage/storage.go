package storage

import "github.com/aokabi/slack-export/internal/models"

// UserStore caches resolved user identities for the duration of one export
// run. Failed lookups are cached as well, so an identifier is never looked
// up twice within a run.
type UserStore interface {
	Get(userID string) (models.UserInfo, bool)
	Put(userID string, info models.UserInfo)
	Close() error
}
