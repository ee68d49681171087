package config

import (
	"testing"
	"time"

	"github.com/ElijahMwambazi/clipb/internal/clipfs"
)

func TestLoad_MissingFile(t *testing.T) {
	fsys := clipfs.NewWithRoot(t.TempDir())

	cfg := Load(fsys)

	if cfg.MaxHistory != DefaultMaxHistory {
		t.Errorf("MaxHistory = %d, want %d", cfg.MaxHistory, DefaultMaxHistory)
	}
	if cfg.PollIntervalMS != DefaultPollIntervalMS {
		t.Errorf("PollIntervalMS = %d, want %d", cfg.PollIntervalMS, DefaultPollIntervalMS)
	}
}

func TestLoad_ValidFile(t *testing.T) {
	fsys := clipfs.NewWithRoot(t.TempDir())
	content := "max_history: 50\npoll_interval_ms: 100\n"
	if err := fsys.WriteFile(FileName, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg := Load(fsys)

	if cfg.MaxHistory != 50 {
		t.Errorf("MaxHistory = %d, want 50", cfg.MaxHistory)
	}
	if cfg.PollIntervalMS != 100 {
		t.Errorf("PollIntervalMS = %d, want 100", cfg.PollIntervalMS)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	fsys := clipfs.NewWithRoot(t.TempDir())
	if err := fsys.WriteFile(FileName, []byte("{{{not yaml"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg := Load(fsys)

	if cfg != Default() {
		t.Errorf("Corrupt config should yield defaults, got %+v", cfg)
	}
}

func TestLoad_NonPositiveFields(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantMax      int
		wantInterval int
	}{
		{
			name:         "zero max_history",
			content:      "max_history: 0\npoll_interval_ms: 100\n",
			wantMax:      DefaultMaxHistory,
			wantInterval: 100,
		},
		{
			name:         "negative poll_interval_ms",
			content:      "max_history: 50\npoll_interval_ms: -1\n",
			wantMax:      50,
			wantInterval: DefaultPollIntervalMS,
		},
		{
			name:         "both missing",
			content:      "{}\n",
			wantMax:      DefaultMaxHistory,
			wantInterval: DefaultPollIntervalMS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := clipfs.NewWithRoot(t.TempDir())
			if err := fsys.WriteFile(FileName, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}

			cfg := Load(fsys)

			if cfg.MaxHistory != tt.wantMax {
				t.Errorf("MaxHistory = %d, want %d", cfg.MaxHistory, tt.wantMax)
			}
			if cfg.PollIntervalMS != tt.wantInterval {
				t.Errorf("PollIntervalMS = %d, want %d", cfg.PollIntervalMS, tt.wantInterval)
			}
		})
	}
}

func TestPollInterval(t *testing.T) {
	cfg := Config{PollIntervalMS: 250}

	if got := cfg.PollInterval(); got != 250*time.Millisecond {
		t.Errorf("PollInterval() = %v, want 250ms", got)
	}
}
