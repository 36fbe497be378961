package worker

import "github.com/tastetube/push-bootstrap/domain"

type configSource interface {
	GetWorker() Config
}

type Config struct {
	Bundle    domain.Bundle `yaml:"bundle"`
	InboxSize int           `yaml:"inboxSize"`
}
