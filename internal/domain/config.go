package domain

// Config represents the coursetable configuration, optionally loaded from coursetable.yaml.
type Config struct {
	Paths  PathsConfig
	Strict bool
	Log    LogConfig
}

type PathsConfig struct {
	Data   string
	Readme string
}

type LogConfig struct {
	Level  string
	Format string
	File   string // optional; empty logs to stderr
}

// DefaultConfig provides the defaults used when coursetable.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			Data:   "automation/data.csv",
			Readme: "README.md",
		},
		Strict: false,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ProjectSpec describes where a new coursetable project is scaffolded.
type ProjectSpec struct {
	Root string
}
