package types

import "errors"

// Config holds backend selection and parameters for attaching the store.
type Config struct {
	Backend      string `json:"backend" yaml:"backend"`
	DataDir      string `json:"data_dir" yaml:"data_dir"`
	RecentLimit  int    `json:"recent_limit,omitempty" yaml:"recent_limit,omitempty"`
	HistoryLimit int    `json:"history_limit,omitempty" yaml:"history_limit,omitempty"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Defaults applied when the corresponding Config field is zero.
const (
	DefaultRecentLimit  = 20
	DefaultHistoryLimit = 10
)

// Config validation errors.
var (
	ErrBackendEmpty        = errors.New("backend must not be empty")
	ErrBackendUnknown      = errors.New("unknown backend")
	ErrRecentLimitInvalid  = errors.New("recent limit must not be negative")
	ErrHistoryLimitInvalid = errors.New("history limit must not be negative")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.RecentLimit < 0 {
		return ErrRecentLimitInvalid
	}
	if c.HistoryLimit < 0 {
		return ErrHistoryLimitInvalid
	}
	return nil
}

// GetRecentLimit returns the configured recent cap or the default.
func (c Config) GetRecentLimit() int {
	if c.RecentLimit == 0 {
		return DefaultRecentLimit
	}
	return c.RecentLimit
}

// GetHistoryLimit returns the configured search history length or the default.
func (c Config) GetHistoryLimit() int {
	if c.HistoryLimit == 0 {
		return DefaultHistoryLimit
	}
	return c.HistoryLimit
}
