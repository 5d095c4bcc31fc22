package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/aokabi/slack-export/internal/models"
	"github.com/aokabi/slack-export/internal/storage"
	"github.com/aokabi/slack-export/pkg/config"
)

// unknownUser substitutes for a missing author field on a raw message. The
// identifier deliberately fails user lookup and resolves to the sentinel.
const unknownUser = "Unknown User"

// Exporter drives one export run: history fetch, thread expansion, identity
// resolution and document assembly.
type Exporter struct {
	client SlackAPI
	store  storage.UserStore
	cfg    *config.Config
	loc    *time.Location
	logger *zap.Logger

	// sleep is swapped out in tests to observe delays.
	sleep func(time.Duration)
}

func New(client SlackAPI, store storage.UserStore, cfg *config.Config, logger *zap.Logger) (*Exporter, error) {
	loc, err := time.LoadLocation(cfg.Export.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Export.Timezone, err)
	}

	return &Exporter{
		client: client,
		store:  store,
		cfg:    cfg,
		loc:    loc,
		logger: logger,
		sleep:  time.Sleep,
	}, nil
}

// Location returns the timezone all dates are interpreted in.
func (e *Exporter) Location() *time.Location {
	return e.loc
}

// Run exports the channel's history between startDate and endDate (both
// YYYY-MM-DD, inclusive, interpreted in the configured timezone) to outPath.
// A failed write is logged, not returned: the run is over either way and
// there is no partial-file guarantee.
func (e *Exporter) Run(ctx context.Context, channelID, startDate, endDate, outPath string) error {
	oldest, err := DateToEpoch(startDate, "00:00:00", e.loc)
	if err != nil {
		return err
	}
	latest, err := DateToEpoch(endDate, "23:59:59", e.loc)
	if err != nil {
		return err
	}

	e.logger.Info("Fetching channel history",
		zap.String("channel_id", channelID),
		zap.String("from", FormatEpoch(oldest, e.loc)),
		zap.String("to", FormatEpoch(latest, e.loc)))

	raw := e.FetchHistory(ctx, channelID, oldest, latest)
	if len(raw) == 0 {
		e.logger.Info("No messages in the requested period, nothing to export",
			zap.String("channel_id", channelID))
		return nil
	}

	doc := e.Assemble(ctx, channelID, raw,
		FormatEpoch(oldest, e.loc), FormatEpoch(latest, e.loc))

	if err := WriteDocument(doc, outPath); err != nil {
		e.logger.Error("Failed to write export file",
			zap.Error(err),
			zap.String("path", outPath))
		return nil
	}

	e.logger.Info("Export written",
		zap.String("path", outPath),
		zap.Int("messages", len(doc.Chat)),
		zap.Int("users", len(doc.Users)))
	return nil
}

// Assemble turns the raw message list into the final export document. Each
// thread is expanded exactly once; the replies feed both the identifier set
// and the assembled chat sequence.
func (e *Exporter) Assemble(ctx context.Context, channelID string, raw []slack.Message, startDate, endDate string) *models.Export {
	ordered := normalizeOrder(raw)

	replies := make(map[string][]slack.Message)
	userIDs := make(map[string]struct{})
	for _, msg := range ordered {
		userIDs[authorOf(msg.Msg)] = struct{}{}
		if !isThreadRoot(msg) {
			continue
		}
		rs := e.FetchThreadReplies(ctx, channelID, msg.Timestamp)
		replies[msg.Timestamp] = rs
		for _, r := range rs {
			userIDs[authorOf(r.Msg)] = struct{}{}
		}
	}

	users := e.ResolveUsers(ctx, userIDs)

	chat := make([]models.Message, 0, len(ordered))
	for _, msg := range ordered {
		out := models.Message{
			Timestamp:     msg.Timestamp,
			ReadableTime:  FormatSlackTimestamp(msg.Timestamp, e.loc),
			User:          authorOf(msg.Msg),
			Text:          msg.Text,
			ThreadReplies: make([]models.ThreadReply, 0, len(replies[msg.Timestamp])),
		}
		for _, r := range replies[msg.Timestamp] {
			out.ThreadReplies = append(out.ThreadReplies, models.ThreadReply{
				Timestamp:    r.Timestamp,
				ReadableTime: FormatSlackTimestamp(r.Timestamp, e.loc),
				User:         authorOf(r.Msg),
				Text:         r.Text,
			})
		}
		chat = append(chat, out)
	}

	return &models.Export{
		StartDate: startDate,
		EndDate:   endDate,
		Users:     users,
		Chat:      chat,
	}
}

// WriteDocument serializes the document as indented JSON with non-ASCII
// text preserved verbatim.
func WriteDocument(doc *models.Export, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return fmt.Errorf("encode export: %w", err)
	}
	return f.Close()
}

// A message roots a thread when its thread marker points at itself.
func isThreadRoot(m slack.Message) bool {
	return m.ThreadTimestamp != "" && m.ThreadTimestamp == m.Timestamp
}

func authorOf(m slack.Msg) string {
	if m.User == "" {
		return unknownUser
	}
	return m.User
}

// normalizeOrder produces a deterministic ascending timeline regardless of
// the order pages arrived in. A timestamp seen twice (a message straddling
// a page boundary) keeps its first occurrence.
func normalizeOrder(raw []slack.Message) []slack.Message {
	seen := make(map[string]struct{}, len(raw))
	out := make([]slack.Message, 0, len(raw))
	for _, m := range raw {
		if _, ok := seen[m.Timestamp]; ok {
			continue
		}
		seen[m.Timestamp] = struct{}{}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, erri := strconv.ParseFloat(out[i].Timestamp, 64)
		tj, errj := strconv.ParseFloat(out[j].Timestamp, 64)
		if erri != nil || errj != nil || ti == tj {
			return out[i].Timestamp < out[j].Timestamp
		}
		return ti < tj
	})
	return out
}
