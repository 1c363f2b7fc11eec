package moderation

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestModerator(t *testing.T, words ...string) Moderator {
	t.Helper()
	mod, err := NewModerator(words, '#', logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)
	return mod
}

func TestModerator_Censor_chat_messages(t *testing.T) {
	mod := newTestModerator(t, "spam", "scam")

	tests := []struct {
		name    string
		message string
		want    string
		found   []string
	}{
		{
			name:    "clean message goes through untouched",
			message: "see you in the lobby at 6?",
			want:    "see you in the lobby at 6?",
		},
		{
			name:    "word inside a sentence",
			message: "stop the spam please",
			want:    "stop the #### please",
			found:   []string{"spam"},
		},
		{
			name:    "every occurrence is reported",
			message: "spam, scam and more spam",
			want:    "####, #### and more ####",
			found:   []string{"spam", "scam", "spam"},
		},
		{
			name:    "obfuscated with leet and separators",
			message: "total $-c-4-m!!",
			want:    "total #######!!",
			found:   []string{"scam"},
		},
		{
			name:    "mixed case and emoji around",
			message: "🔥 SpAm 🔥",
			want:    "🔥 #### 🔥",
			found:   []string{"spam"},
		},
		{
			name:    "empty content",
			message: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			// When the message is censored
			got, found := mod.Censor(tt.message)

			// Then the length is kept and the matches are listed
			req.Equal(tt.want, got)
			req.Equal(len([]rune(tt.message)), len([]rune(got)))
			req.Equal(tt.found, found)
		})
	}
}

func TestModerator_duplicate_dictionary_entries_collapse(t *testing.T) {
	req := require.New(t)

	// Given the same word spelled three ways
	mod := newTestModerator(t, "spam", "SPAM", "5p4m")

	// When it appears once
	got, found := mod.Censor("no spam here")

	// Then it is matched once
	req.Equal("no #### here", got)
	req.Equal([]string{"spam"}, found)
}

func TestModerator_disabled_without_usable_words(t *testing.T) {
	for name, words := range map[string][]string{
		"no words":    nil,
		"only noise":  {"?-", " ", "~~", ""},
		"blank lines": {"", "   "},
	} {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			// Given a dictionary with nothing to match
			mod := newTestModerator(t, words...)
			req.Nil(mod.matcher)

			// Then every message is relayed as is
			got, found := mod.Censor("anything goes, even spam")
			req.Equal("anything goes, even spam", got)
			req.Nil(found)
		})
	}
}

func TestModerator_noise_entries_are_skipped(t *testing.T) {
	req := require.New(t)

	// Given a list mixing noise and a real word
	mod := newTestModerator(t, "...", "~~", "scam")

	// Then punctuation in messages is left alone
	got, found := mod.Censor("wait... what? ~~")
	req.Equal("wait... what? ~~", got)
	req.Nil(found)

	got, found = mod.Censor("a scam...")
	req.Equal("a ####...", got)
	req.Equal([]string{"scam"}, found)
}
