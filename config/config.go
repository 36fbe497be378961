package config

import (
	"os"
	"regexp"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"gopkg.in/yaml.v3"

	"github.com/tastetube/push-bootstrap/db"
	"github.com/tastetube/push-bootstrap/metric"
	"github.com/tastetube/push-bootstrap/native"
	"github.com/tastetube/push-bootstrap/plugin"
	"github.com/tastetube/push-bootstrap/queue"
	"github.com/tastetube/push-bootstrap/redisprovider"
	"github.com/tastetube/push-bootstrap/worker"
)

const CName = "config"

// NewFromFile reads a yaml config. ${VAR} references are expanded from the environment,
// so credentials are supplied by the deployment. Any other $ is kept as is.
func NewFromFile(path string) (c *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

func Parse(data []byte) (c *Config, err error) {
	c = &Config{}
	if err = yaml.Unmarshal(expandEnv(data), c); err != nil {
		return nil, err
	}
	return
}

// expandEnv replaces ${VAR} with its value; unset variables expand to an empty string
func expandEnv(data []byte) []byte {
	return envRef.ReplaceAllFunc(data, func(ref []byte) []byte {
		return []byte(os.Getenv(string(envRef.FindSubmatch(ref)[1])))
	})
}

type Config struct {
	Log     logger.Config        `yaml:"log"`
	Mongo   db.Mongo             `yaml:"mongo"`
	Redis   redisprovider.Config `yaml:"redis"`
	Queue   queue.Config         `yaml:"queue"`
	Metric  metric.Config        `yaml:"metric"`
	Worker  worker.Config        `yaml:"worker"`
	Native  native.Config        `yaml:"native"`
	Plugins plugin.Config        `yaml:"plugins"`
}

func (c *Config) Init(a *app.App) (err error) {
	return nil
}

func (c *Config) Name() (name string) {
	return CName
}

func (c *Config) GetMongo() db.Mongo {
	return c.Mongo
}

func (c *Config) GetRedis() redisprovider.Config {
	return c.Redis
}

func (c *Config) GetQueue() queue.Config {
	return c.Queue
}

func (c *Config) GetMetric() metric.Config {
	return c.Metric
}

func (c *Config) GetWorker() worker.Config {
	return c.Worker
}

func (c *Config) GetNative() native.Config {
	return c.Native
}

func (c *Config) GetPlugins() plugin.Config {
	return c.Plugins
}
