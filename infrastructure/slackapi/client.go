// Package slackapi adapts the Slack Web API to contract.ChannelSource.
//
// slack-go does not decode previous_names from conversations.list, so
// RawChannel.PreviousNames is always empty here: a renamed channel only
// matches the allow-list under its current name.
package slackapi

import (
	"channel-report/contract"
	"channel-report/domain"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

var _ contract.ChannelSource = (*Client)(nil)

type Options struct {
	PageLimit         int
	RequestsPerMinute int
	MaxRetries        int
}

// Client wraps the Slack Web API. Every call waits for the shared limiter and
// is retried when Slack answers 429, after the delay Slack asks for.
type Client struct {
	api     *slack.Client
	limiter *rate.Limiter
	options Options
	log     *slog.Logger
}

func NewClient(token string, options Options, log *slog.Logger, slackOptions ...slack.Option) *Client {
	every := time.Minute / time.Duration(max(options.RequestsPerMinute, 1))
	return &Client{
		api:     slack.New(token, slackOptions...),
		limiter: rate.NewLimiter(rate.Every(every), 1),
		options: options,
		log:     log,
	}
}

func (c *Client) ListChannels(ctx context.Context, cursor string) ([]domain.RawChannel, string, error) {
	var channels []slack.Channel
	var next string
	err := c.call(ctx, "conversations.list", func() error {
		var err error
		channels, next, err = c.api.GetConversationsContext(ctx, &slack.GetConversationsParameters{
			Cursor: cursor,
			Limit:  c.options.PageLimit,
			Types:  []string{"public_channel"},
		})
		return err
	})
	if err != nil {
		return nil, "", err
	}
	return lo.Map(channels, func(ch slack.Channel, _ int) domain.RawChannel {
		return domain.RawChannel{
			ID:             ch.ID,
			Name:           ch.Name,
			NameNormalized: ch.NameNormalized,
			Creator:        ch.Creator,
		}
	}), next, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (domain.RawUser, error) {
	var user *slack.User
	err := c.call(ctx, "users.info", func() error {
		var err error
		user, err = c.api.GetUserInfoContext(ctx, userID)
		return err
	})
	if err != nil {
		return domain.RawUser{}, err
	}
	return domain.RawUser{ID: user.ID, Name: user.Name}, nil
}

func (c *Client) GetHistory(ctx context.Context, channelID string, oldest time.Time, cursor string) ([]domain.RawMessage, string, error) {
	var history *slack.GetConversationHistoryResponse
	err := c.call(ctx, "conversations.history", func() error {
		var err error
		history, err = c.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
			ChannelID: channelID,
			Cursor:    cursor,
			Limit:     c.options.PageLimit,
			Oldest:    strconv.FormatInt(oldest.Unix(), 10),
		})
		return err
	})
	if err != nil {
		return nil, "", err
	}
	messages := lo.Map(history.Messages, func(m slack.Message, _ int) domain.RawMessage {
		return domain.RawMessage{Text: m.Text, Ts: m.Timestamp}
	})
	if !history.HasMore {
		return messages, "", nil
	}
	return messages, history.ResponseMetaData.NextCursor, nil
}

func (c *Client) call(ctx context.Context, method string, fn func() error) error {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		err := fn()
		var rateLimited *slack.RateLimitedError
		if !errors.As(err, &rateLimited) || attempt >= c.options.MaxRetries {
			if err != nil {
				return fmt.Errorf("%s: %w", method, err)
			}
			return nil
		}
		c.log.Warn("Rate limited by Slack", "method", method, "retry_after", rateLimited.RetryAfter, "attempt", attempt+1)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(rateLimited.RetryAfter):
		}
	}
}
