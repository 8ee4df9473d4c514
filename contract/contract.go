//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"channel-report/domain"
	"channel-report/report"
	"context"
	"time"
)

// ChannelSource is the workspace the report reads from.
// Every list call is paginated: an empty next cursor means the last page.
type ChannelSource interface {
	ListChannels(ctx context.Context, cursor string) ([]domain.RawChannel, string, error)
	GetUser(ctx context.Context, userID string) (domain.RawUser, error)
	GetHistory(ctx context.Context, channelID string, oldest time.Time, cursor string) ([]domain.RawMessage, string, error)
}

// ReportSink receives the assembled table.
type ReportSink interface {
	Write(table report.Table) error
}
