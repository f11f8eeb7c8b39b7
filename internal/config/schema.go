package config

// Config is the complete configuration of the lab binaries.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Session  SessionConfig `yaml:"session"`
	API      APIConfig     `yaml:"api"`
	Reader   ReaderConfig  `yaml:"reader"`
}

// SessionConfig drives the interactive list session.
type SessionConfig struct {
	Prompt string `yaml:"prompt"`
}

// APIConfig holds the HTTP server settings.
type APIConfig struct {
	Port int `yaml:"port"`
}

// ReaderConfig bounds the character-echo lab.
type ReaderConfig struct {
	MaxEntries int `yaml:"max_entries"`
}
