// Package projection builds per-channel timelines from fetched messages
// and folds them into weekly buckets.
// Does not fetch, store or format anything for output.
package projection

import (
	"channel-report/domain"
	"time"

	"github.com/samber/lo"
)

// Timeline holds the messages of one channel and the instant its report starts from.
// oldest comes from configuration and anchors the week grid even when no
// message exists near it.
type Timeline struct {
	messages []domain.Message
	oldest   time.Time
}

func NewTimeline(messages []domain.Message, oldest time.Time) Timeline {
	return Timeline{messages: messages, oldest: oldest}
}

func (t Timeline) Oldest() time.Time {
	return t.oldest
}

func (t Timeline) Len() int {
	return len(t.messages)
}

// Messages returns a copy, the timeline itself is never handed out.
func (t Timeline) Messages() []domain.Message {
	return append([]domain.Message(nil), t.messages...)
}

// Filter keeps the matching messages in their original order.
func (t Timeline) Filter(predicate func(domain.Message) bool) Timeline {
	return NewTimeline(lo.Filter(t.messages, func(m domain.Message, _ int) bool {
		return predicate(m)
	}), t.oldest)
}

func (t Timeline) Map(transform func(domain.Message) domain.Message) Timeline {
	return NewTimeline(lo.Map(t.messages, func(m domain.Message, _ int) domain.Message {
		return transform(m)
	}), t.oldest)
}

// InWeek keeps the messages posted strictly inside (boundary - 7 days, boundary).
func (t Timeline) InWeek(boundary time.Time) Timeline {
	start := boundary.Add(-domain.WeekLength)
	return t.Filter(func(m domain.Message) bool {
		return domain.IsBetween(m.Timestamp, start, boundary)
	})
}

func (t Timeline) CountInWeek(boundary time.Time) int {
	return t.InWeek(boundary).Len()
}
