package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"go.uber.org/zap"

	"github.com/tastetube/push-bootstrap/config"
	"github.com/tastetube/push-bootstrap/db"
	"github.com/tastetube/push-bootstrap/domain"
	"github.com/tastetube/push-bootstrap/lifecycle"
	"github.com/tastetube/push-bootstrap/location"
	"github.com/tastetube/push-bootstrap/native"
	"github.com/tastetube/push-bootstrap/plugin"
	"github.com/tastetube/push-bootstrap/plugin/geolocator"
	"github.com/tastetube/push-bootstrap/plugin/mapslauncher"
	"github.com/tastetube/push-bootstrap/repo/installrepo"
)

var log = logger.NewNamed("main")

var flagConfigFile = flag.String("c", "etc/config.yml", "path to config file")

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
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
	defer func() {
		closeCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if cErr := a.Close(closeCtx); cErr != nil {
			log.Warn("close error", zap.Error(cErr))
		}
	}()

	lc := &domain.LaunchContext{Pid: os.Getpid(), Args: os.Args}
	ok, err := a.MustComponent(native.CName).(native.Native).DidFinishLaunching(lc, nil)
	if err != nil {
		log.Error("launch failed", zap.Error(err))
		return 1
	}
	if !ok {
		log.Warn("base startup declined launch")
		return 1
	}
	log.Info("launched", zap.Int("pid", lc.Pid))
	return 0
}

func Bootstrap(a *app.App, conf *config.Config) {
	a.Register(conf).
		Register(location.New()).
		Register(geolocator.New()).
		Register(mapslauncher.New()).
		Register(plugin.New()).
		Register(lifecycle.New())
	if conf.GetMongo().Enabled() {
		a.Register(db.New()).
			Register(installrepo.New())
	}
	a.Register(native.New())
}
