package config

const (
	defaultDataDir    = "~/.local/share/gfl-pages"
	defaultProjectDir = "~/gfl-pages/project"
	defaultLogDir     = "~/.local/share/gfl-pages/logs"
	defaultAPIBind    = "127.0.0.1:7865"
	defaultLogFormat  = "auto"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:    defaultDataDir,
			ProjectDir: defaultProjectDir,
			LogDir:     defaultLogDir,
			APIBind:    defaultAPIBind,
		},
		Import: Import{
			Watch: false,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
