package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", DataDir: "/tmp/data"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "postgres", DataDir: "/tmp/data"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "valid sqlite config",
			config:  Config{Backend: "sqlite", DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "sqlite with empty DataDir is valid at config level",
			config:  Config{Backend: "sqlite", DataDir: ""},
			wantErr: nil,
		},
		{
			name:    "negative recent limit rejected",
			config:  Config{Backend: "sqlite", RecentLimit: -1},
			wantErr: ErrRecentLimitInvalid,
		},
		{
			name:    "negative history limit rejected",
			config:  Config{Backend: "sqlite", HistoryLimit: -3},
			wantErr: ErrHistoryLimitInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigLimits(t *testing.T) {
	var c Config
	if got := c.GetRecentLimit(); got != DefaultRecentLimit {
		t.Fatalf("GetRecentLimit() = %d, want %d", got, DefaultRecentLimit)
	}
	if got := c.GetHistoryLimit(); got != DefaultHistoryLimit {
		t.Fatalf("GetHistoryLimit() = %d, want %d", got, DefaultHistoryLimit)
	}

	c = Config{RecentLimit: 5, HistoryLimit: 3}
	if got := c.GetRecentLimit(); got != 5 {
		t.Fatalf("GetRecentLimit() = %d, want 5", got)
	}
	if got := c.GetHistoryLimit(); got != 3 {
		t.Fatalf("GetHistoryLimit() = %d, want 3", got)
	}
}
