package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"go.uber.org/zap"

	"github.com/tastetube/push-bootstrap/config"
	"github.com/tastetube/push-bootstrap/db"
	"github.com/tastetube/push-bootstrap/metric"
	"github.com/tastetube/push-bootstrap/queue"
	"github.com/tastetube/push-bootstrap/redisprovider"
	"github.com/tastetube/push-bootstrap/repo/installrepo"
	"github.com/tastetube/push-bootstrap/sdk/fcm"
	"github.com/tastetube/push-bootstrap/worker"
)

var log = logger.NewNamed("main")

var flagConfigFile = flag.String("c", "etc/config.yml", "path to config file")

func main() {
	flag.Parse()

	conf, err := config.NewFromFile(*flagConfigFile)
	if err != nil {
		log.Fatal("can't open config file", zap.Error(err))
	}
	conf.Log.ApplyGlobal()

	a := new(app.App)
	Bootstrap(a, conf)

	ctx := context.Background()
	if err = a.Start(ctx); err != nil {
		log.Fatal("can't start app", zap.Error(err))
	}
	log.Info("worker started", zap.String("state", a.MustComponent(worker.CName).(worker.Worker).State().String()))

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signals
	log.Info("received signal, stopping", zap.Stringer("signal", sig))

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	if err = a.Close(ctx); err != nil {
		log.Fatal("close error", zap.Error(err))
	}
	log.Info("goodbye")
}

func Bootstrap(a *app.App, conf *config.Config) {
	a.Register(conf).
		Register(redisprovider.New())
	if conf.GetMongo().Enabled() {
		a.Register(db.New()).
			Register(installrepo.New())
	}
	a.Register(metric.New()).
		Register(queue.New()).
		Register(fcm.New()).
		Register(worker.New())
}
