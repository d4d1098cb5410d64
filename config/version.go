package config

// Version is reported by the status endpoint and the CLI.
const Version = "0.1.0"
