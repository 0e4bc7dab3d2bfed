package config

// Environment variable names for regkv configuration.
const (
	EnvFile   = "REGKV_FILE"   // Path to the registry file
	EnvFormat = "REGKV_FORMAT" // File format: text, yaml or toml
	EnvJSON   = "REGKV_JSON"   // Enable JSON output ("1" or "true")
)
