package repositories

import (
	"channel-report/domain"
	"channel-report/projection"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IMessageRepository interface {
	StoreMessages(channelID string, messages []domain.Message) error
	GetTimeline(channelID string, oldest time.Time) (projection.Timeline, error)
}

// MessageRepository stages fetched history until every channel is complete.
// It is meant to run on an in-memory Badger instance, see OpenInMemory.
type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// OpenInMemory opens a Badger instance that never touches the disk.
func OpenInMemory() (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil))
}

type diskMessage struct {
	Text string `json:"text"`
	At   int64  `json:"at"`
}

// StoreMessages writes every message under "msg:{channel_id}:{timestamp_padded}:{uuid}":
//  1. The 19-digit zero padding keeps a prefix scan chronological.
//  2. The UUID keeps two messages posted at the same nanosecond, nothing is deduplicated.
func (m MessageRepository) StoreMessages(channelID string, messages []domain.Message) error {
	wb := m.db.NewWriteBatch()
	defer wb.Cancel()
	for _, message := range messages {
		key := fmt.Sprintf("msg:%s:%019d:%s", channelID, message.Timestamp.UnixNano(), uuid.New())
		bytes, err := json.Marshal(diskMessage{Text: message.Text, At: message.Timestamp.UnixNano()})
		if err != nil {
			return err
		}
		if err = wb.Set([]byte(key), bytes); err != nil {
			return err
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("staging messages of %s: %w", channelID, err)
	}
	m.log.Debug("Messages staged", "channel", channelID, "count", len(messages))
	return nil
}

// GetTimeline reads back a channel, oldest message first.
func (m MessageRepository) GetTimeline(channelID string, oldest time.Time) (projection.Timeline, error) {
	var messages []domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%s:", channelID))
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var dm diskMessage
				if err := json.Unmarshal(value, &dm); err != nil {
					return err
				}
				messages = append(messages, domain.Message{
					Text:      dm.Text,
					Timestamp: time.Unix(0, dm.At).In(oldest.Location()),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return projection.Timeline{}, err
	}
	return projection.NewTimeline(messages, oldest), nil
}
