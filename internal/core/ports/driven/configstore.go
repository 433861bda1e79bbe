package driven

// ConfigStore holds flattened dot-notation settings such as
// "history.max_items". Typed getters return the zero value for a missing
// key or a value of the wrong type.
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool

	// Set stores a value and persists it.
	Set(key string, value any) error

	// Unset removes a key so readers fall back to their defaults.
	// Removing a missing key is not an error.
	Unset(key string) error

	// Save writes every value to storage.
	Save() error

	// Load replaces the in-memory values with those in storage.
	Load() error

	// Path is the backing file, or a pseudo path beginning with ':'
	// for stores with no file.
	Path() string
}
