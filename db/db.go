package db

import (
	"context"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const CName = "push.db"

var log = logger.NewNamed(CName)

type Mongo struct {
	Connect  string `yaml:"connect"`
	Database string `yaml:"database"`
}

// Enabled reports whether a connection string is configured
func (m Mongo) Enabled() bool {
	return m.Connect != ""
}

type configGetter interface {
	GetMongo() Mongo
}

func New() Database {
	return new(database)
}

type Database interface {
	Db() *mongo.Database
	app.ComponentRunnable
}

type database struct {
	client *mongo.Client
	db     *mongo.Database
}

func (d *database) Init(a *app.App) (err error) {
	conf := a.MustComponent("config").(configGetter).GetMongo()
	if d.client, err = mongo.Connect(context.Background(), options.Client().ApplyURI(conf.Connect)); err != nil {
		return
	}
	d.db = d.client.Database(conf.Database)
	return
}

func (d *database) Name() (name string) {
	return CName
}

func (d *database) Run(ctx context.Context) (err error) {
	if err = d.client.Ping(ctx, nil); err != nil {
		return
	}
	log.Info("mongo connected", zap.String("db", d.db.Name()))
	return
}

func (d *database) Db() *mongo.Database {
	return d.db
}

func (d *database) Close(ctx context.Context) (err error) {
	if d.client != nil {
		return d.client.Disconnect(ctx)
	}
	return nil
}
