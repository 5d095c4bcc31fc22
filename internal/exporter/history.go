package exporter

import (
	"context"
	"errors"
	"strconv"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// FetchHistory retrieves every top-level message in the closed interval
// [oldest, latest] (Unix seconds), following pagination cursors and pausing
// the courtesy delay between pages. A rate-limited page is retried in place
// after the server-supplied wait; any other failure stops the loop.
// FetchHistory never returns an error — the caller always gets whatever was
// accumulated, possibly nothing.
func (e *Exporter) FetchHistory(ctx context.Context, channelID string, oldest, latest int64) []slack.Message {
	var all []slack.Message
	cursor := ""
	retries := 0

	for {
		resp, err := e.client.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
			ChannelID: channelID,
			Limit:     e.cfg.Export.PageSize,
			Oldest:    strconv.FormatInt(oldest, 10),
			Latest:    strconv.FormatInt(latest, 10),
			Cursor:    cursor,
			Inclusive: true,
		})
		if err != nil {
			var rle *slack.RateLimitedError
			if errors.As(err, &rle) {
				retries++
				if limit := e.cfg.Export.MaxRateLimitRetries; limit > 0 && retries > limit {
					e.logger.Error("Rate limit retries exhausted, stopping pagination",
						zap.Int("retries", retries-1),
						zap.Int("fetched", len(all)))
					break
				}
				e.logger.Warn("Rate limited, retrying the same page after the server hint",
					zap.Duration("retry_after", rle.RetryAfter))
				e.sleep(rle.RetryAfter)
				continue
			}
			e.logger.Error("History request failed, exporting what was fetched so far",
				zap.Error(err),
				zap.Int("fetched", len(all)))
			break
		}
		retries = 0

		all = append(all, resp.Messages...)
		e.logger.Info("Retrieved messages",
			zap.Int("count", len(resp.Messages)),
			zap.Int("total", len(all)))

		if !resp.HasMore {
			e.logger.Info("All messages for the period retrieved", zap.Int("total", len(all)))
			break
		}
		cursor = resp.ResponseMetaData.NextCursor
		e.sleep(e.cfg.Export.RateLimitDelay)
	}

	return all
}
