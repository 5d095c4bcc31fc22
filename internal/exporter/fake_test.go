package exporter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aokabi/slack-export/internal/storage"
	"github.com/aokabi/slack-export/pkg/config"
)

// fakeSlackAPI implements SlackAPI with overridable function fields.
type fakeSlackAPI struct {
	historyFunc func(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	repliesFunc func(ctx context.Context, params *slack.GetConversationRepliesParameters) ([]slack.Message, bool, string, error)
	userFunc    func(ctx context.Context, user string) (*slack.User, error)

	historyCalls int
	repliesCalls int
	userCalls    int
}

func (f *fakeSlackAPI) GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error) {
	f.historyCalls++
	if f.historyFunc != nil {
		return f.historyFunc(ctx, params)
	}
	return &slack.GetConversationHistoryResponse{}, nil
}

func (f *fakeSlackAPI) GetConversationRepliesContext(ctx context.Context, params *slack.GetConversationRepliesParameters) ([]slack.Message, bool, string, error) {
	f.repliesCalls++
	if f.repliesFunc != nil {
		return f.repliesFunc(ctx, params)
	}
	return nil, false, "", errors.New("no replies configured")
}

func (f *fakeSlackAPI) GetUserInfoContext(ctx context.Context, user string) (*slack.User, error) {
	f.userCalls++
	if f.userFunc != nil {
		return f.userFunc(ctx, user)
	}
	return nil, errors.New("no users configured")
}

func rawMessage(ts, user, text, threadTS string) slack.Message {
	return slack.Message{Msg: slack.Msg{
		Timestamp:       ts,
		User:            user,
		Text:            text,
		ThreadTimestamp: threadTS,
	}}
}

func slackUser(name, realName, displayName string) *slack.User {
	return &slack.User{
		Name: name,
		Profile: slack.UserProfile{
			RealName:    realName,
			DisplayName: displayName,
		},
	}
}

// newTestExporter builds an Exporter over the fake with sleeps recorded
// instead of performed.
func newTestExporter(t *testing.T, api SlackAPI) (*Exporter, *[]time.Duration) {
	t.Helper()

	cfg := &config.Config{
		Export: config.ExportConfig{
			Timezone:       "Asia/Tokyo",
			PageSize:       200,
			RateLimitDelay: time.Second,
		},
	}
	exp, err := New(api, storage.NewMemoryStore(), cfg, zap.NewNop())
	require.NoError(t, err)

	sleeps := &[]time.Duration{}
	exp.sleep = func(d time.Duration) { *sleeps = append(*sleeps, d) }
	return exp, sleeps
}
