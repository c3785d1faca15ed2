package driven

// ConfigStore provides persistent key-value configuration.
// Backed by a TOML file in the vendra config directory.
type ConfigStore interface {
	// Get retrieves a raw configuration value.
	Get(key string) (any, bool)

	// GetString retrieves a string value, "" if absent.
	GetString(key string) string

	// GetInt retrieves an integer value, 0 if absent.
	GetInt(key string) int

	// GetBool retrieves a boolean value, false if absent.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice value, nil if absent.
	GetStringSlice(key string) []string

	// Set stores a configuration value.
	Set(key string, value any) error

	// Save persists all values.
	Save() error
}

// Configuration keys the core reads.
const (
	// ConfigMaxObjectSize is the top piece-size tier threshold in
	// bytes (T0). Defaults to 2 MiB.
	ConfigMaxObjectSize = "max_object_size"

	// ConfigRestrictedCategory names the category excluded by the
	// content-policy filter.
	ConfigRestrictedCategory = "restricted_category"

	// ConfigMaxSearchResults caps search-style index queries.
	ConfigMaxSearchResults = "max_search_results"

	// ConfigDaemonAddress is the host:port of the local DHT daemon.
	ConfigDaemonAddress = "daemon_address"

	// ConfigRequestTimeoutMS bounds each remote request.
	ConfigRequestTimeoutMS = "request_timeout_ms"

	// ConfigDataDir overrides the index database directory.
	ConfigDataDir = "data_dir"
)
