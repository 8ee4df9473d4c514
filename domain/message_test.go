package domain

import (
	"channel-report/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		ts       string
		expected time.Time
	}{
		{
			name:     "Seconds with microseconds",
			ts:       "1577836800.000200",
			expected: time.Unix(1577836800, 200*int64(time.Microsecond)),
		},
		{
			name:     "Integer seconds",
			ts:       "1577836800",
			expected: time.Unix(1577836800, 0),
		},
		{
			name:     "Short fraction",
			ts:       "1577836800.5",
			expected: time.Unix(1577836800, 500*int64(time.Millisecond)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, err := ParseTimestamp(tt.ts)
			require.NoError(t, err)
			require.True(t, tt.expected.Equal(at), "expected %s, got %s", tt.expected, at)
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, ts := range []string{"", "abc", "1577836800.", "1577836800.1234567", "1577836800.-1",
		"1577836800.+1", "-1.5", "-1", "+1577836800", ".5"} {
		_, err := ParseTimestamp(ts)
		require.ErrorIs(t, err, errors.ErrInvalidTimestamp, "ts=%q", ts)
	}
}

func TestNewMessage_KeepsText(t *testing.T) {
	req := require.New(t)

	msg, err := NewMessage(RawMessage{Text: "Hello Bob", Ts: "1577836800.000100"})

	req.NoError(err)
	req.Equal("Hello Bob", msg.Text)
	req.Equal(int64(1577836800), msg.Timestamp.Unix())
}

func TestChannelIdentity_DisplayNames(t *testing.T) {
	req := require.New(t)
	identity := ChannelIdentity{ID: "C01", Name: "general", Owner: User{ID: "U01", Name: "alice"}}

	req.Equal("#general", identity.DisplayName())
	req.Equal("@alice", identity.OwnerLabel())
	// Formatting never touches the raw names
	req.Equal("general", identity.Name)
	req.Equal("alice", identity.Owner.Name)
}

func TestRawChannel_MatchesAny(t *testing.T) {
	allowList := []string{"general", "random"}

	tests := []struct {
		name     string
		channel  RawChannel
		expected bool
	}{
		{"Current name", RawChannel{Name: "general"}, true},
		{"Normalized name", RawChannel{Name: "Random", NameNormalized: "random"}, true},
		{"Renamed channel", RawChannel{Name: "team-talk", PreviousNames: []string{"old", "general"}}, true},
		{"Unknown channel", RawChannel{Name: "dev", NameNormalized: "dev", PreviousNames: []string{"ops"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.channel.MatchesAny(allowList))
		})
	}
}
