package config

// Config holds ambient settings for a game run. The guessing range itself
// is fixed and deliberately absent here.
type Config struct {
	// LogLevel controls diagnostic output on stderr ("debug", "info",
	// "warn", "error"). Game text on stdout is unaffected.
	LogLevel string `yaml:"log_level"`

	// Seed makes the secret draw deterministic when non-zero.
	Seed uint64 `yaml:"seed"`

	// RevealSecret prints the secret at game start, the classic
	// teaching-aid behavior. Off by default.
	RevealSecret bool `yaml:"reveal_secret"`
}
