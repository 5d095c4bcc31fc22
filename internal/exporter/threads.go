package exporter

import (
	"context"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// FetchThreadReplies returns the replies under threadTS. The API returns the
// root message as the first entry of the chain; it is dropped so the root is
// not duplicated in the export. A failed fetch is absorbed: the thread simply
// exports without replies.
func (e *Exporter) FetchThreadReplies(ctx context.Context, channelID, threadTS string) []slack.Message {
	msgs, _, _, err := e.client.GetConversationRepliesContext(ctx, &slack.GetConversationRepliesParameters{
		ChannelID: channelID,
		Timestamp: threadTS,
	})
	if err != nil {
		e.logger.Error("Failed to fetch thread replies",
			zap.Error(err),
			zap.String("thread_ts", threadTS))
		return nil
	}
	if len(msgs) == 0 {
		return nil
	}
	return msgs[1:]
}
