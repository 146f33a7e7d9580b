package configs

// Configurable is a typed config value backed by a key in the cue files.
type Configurable interface {
	ConfigKey() string
}

// Lookup returns the first value at c's key, or zero when no file sets it.
func Lookup[T any](loader Loader, c Configurable) T {
	return First[T](loader, c.ConfigKey())
}
