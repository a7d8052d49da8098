package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestInitSetsGlobalLevel(t *testing.T) {
	cases := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		Init(tc.level, "")
		if got := zerolog.GlobalLevel(); got != tc.want {
			t.Errorf("Init(%q) set level %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestGetReturnsUsableLogger(t *testing.T) {
	// The returned value must be assignable and usable before Init runs,
	// since callers log configuration failures through it.
	log := Get()
	log.Debug().Str("check", "startup").Msg("logger ready")
}
