package plugin

type configSource interface {
	GetPlugins() Config
}

type Config struct {
	Enabled []string `yaml:"enabled"`
}
