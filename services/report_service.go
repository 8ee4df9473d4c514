package services

import (
	"channel-report/contract"
	"channel-report/domain"
	"channel-report/errors"
	"channel-report/report"
	"channel-report/repositories"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type IReportService interface {
	Generate(ctx context.Context, now time.Time) (report.Table, error)
	Publish(ctx context.Context, now time.Time, sink contract.ReportSink) (report.Table, error)
}

type ReportService struct {
	source      contract.ChannelSource
	repository  repositories.IMessageRepository
	log         *slog.Logger
	allowList   []string
	oldest      time.Time
	concurrency int
}

func NewReportService(
	source contract.ChannelSource,
	repository repositories.IMessageRepository,
	log *slog.Logger,
	allowList []string,
	oldest time.Time,
	concurrency int) *ReportService {
	return &ReportService{
		source:      source,
		repository:  repository,
		log:         log,
		allowList:   allowList,
		oldest:      oldest,
		concurrency: max(concurrency, 1),
	}
}

// Generate fetches every allowed channel, then builds the table once all of them
// are fully staged. Aggregation never starts on partial data: the first fetch
// error cancels the others and is returned.
func (s *ReportService) Generate(ctx context.Context, now time.Time) (report.Table, error) {
	if len(s.allowList) == 0 {
		return report.Table{}, errors.ErrEmptyAllowList
	}
	channels, err := s.listAllowedChannels(ctx)
	if err != nil {
		return report.Table{}, err
	}

	identities := make([]domain.ChannelIdentity, len(channels))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, channel := range channels {
		g.Go(func() error {
			identity, err := s.fetchChannel(gCtx, channel)
			if err != nil {
				return fmt.Errorf("channel %s: %w", channel.Name, err)
			}
			identities[i] = identity
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return report.Table{}, err
	}

	reports := make([]report.ChannelReport, 0, len(identities))
	for _, identity := range identities {
		timeline, err := s.repository.GetTimeline(identity.ID, s.oldest)
		if err != nil {
			return report.Table{}, fmt.Errorf("channel %s: %w", identity.Name, err)
		}
		r := report.Build(identity, timeline, now)
		s.log.Info("Channel reported", "channel", r.Name, "owner", r.Owner, "messages", r.Total(), "weeks", len(r.Counts))
		reports = append(reports, r)
	}
	return report.Assemble(s.oldest, now, reports)
}

// Publish generates the table and hands it to sink. Nothing is written when
// generation fails.
func (s *ReportService) Publish(ctx context.Context, now time.Time, sink contract.ReportSink) (report.Table, error) {
	table, err := s.Generate(ctx, now)
	if err != nil {
		return report.Table{}, err
	}
	if err = sink.Write(table); err != nil {
		return report.Table{}, fmt.Errorf("writing report: %w", err)
	}
	return table, nil
}

func (s *ReportService) listAllowedChannels(ctx context.Context) ([]domain.RawChannel, error) {
	var all []domain.RawChannel
	cursor := ""
	for {
		page, next, err := s.source.ListChannels(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("listing channels: %w", err)
		}
		all = append(all, page...)
		if next == "" {
			break
		}
		cursor = next
	}
	allowed := lo.Filter(all, func(ch domain.RawChannel, _ int) bool {
		return ch.MatchesAny(s.allowList)
	})
	s.log.Debug("Channels listed", "total", len(all), "allowed", len(allowed))
	if len(allowed) == 0 {
		return nil, errors.ErrNoChannelMatched
	}
	return allowed, nil
}

// fetchChannel resolves the creator and stages the whole history since oldest.
func (s *ReportService) fetchChannel(ctx context.Context, channel domain.RawChannel) (domain.ChannelIdentity, error) {
	creator, err := s.source.GetUser(ctx, channel.Creator)
	if err != nil {
		return domain.ChannelIdentity{}, fmt.Errorf("fetching creator %s: %w", channel.Creator, err)
	}

	cursor := ""
	fetched := 0
	for {
		page, next, err := s.source.GetHistory(ctx, channel.ID, s.oldest, cursor)
		if err != nil {
			return domain.ChannelIdentity{}, fmt.Errorf("fetching history: %w", err)
		}
		messages := make([]domain.Message, 0, len(page))
		for _, raw := range page {
			message, err := domain.NewMessage(raw)
			if err != nil {
				return domain.ChannelIdentity{}, err
			}
			messages = append(messages, message)
		}
		if err = s.repository.StoreMessages(channel.ID, messages); err != nil {
			return domain.ChannelIdentity{}, err
		}
		fetched += len(messages)
		if next == "" {
			break
		}
		cursor = next
	}
	s.log.Debug("History fetched", "channel", channel.Name, "messages", fetched)

	return domain.ChannelIdentity{
		ID:    channel.ID,
		Name:  channel.Name,
		Owner: domain.User{ID: creator.ID, Name: creator.Name},
	}, nil
}
