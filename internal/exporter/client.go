package exporter

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackAPI is the subset of the Slack Web API the exporter needs:
// channel history pages, thread reply chains and user lookups.
// *slack.Client satisfies it.
type SlackAPI interface {
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	GetConversationRepliesContext(ctx context.Context, params *slack.GetConversationRepliesParameters) ([]slack.Message, bool, string, error)
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)
}
