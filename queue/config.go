package queue

import "time"

type configSource interface {
	GetQueue() Config
}

type Config struct {
	Name           string `yaml:"name"`
	Tag            string `yaml:"tag"`
	PrefetchLimit  int64  `yaml:"prefetchLimit"`
	PollIntervalMs int    `yaml:"pollIntervalMs"`
}

func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = "background"
	}
	if c.Tag == "" {
		c.Tag = "push-worker"
	}
	if c.PrefetchLimit <= 0 {
		c.PrefetchLimit = 10
	}
	if c.PollIntervalMs <= 0 {
		c.PollIntervalMs = 100
	}
	return c
}

func (c Config) pollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}
