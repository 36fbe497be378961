//go:generate mockgen -destination mock_installrepo/mock_installrepo.go github.com/tastetube/push-bootstrap/repo/installrepo InstallRepo

package installrepo

import (
	"context"
	"errors"
	"time"

	"github.com/anyproto/any-sync/app"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tastetube/push-bootstrap/db"
	"github.com/tastetube/push-bootstrap/domain"
)

const CName = "push.installrepo"

const collName = "installation"

var ErrInstallationExists = errors.New("installation exists")

func New() InstallRepo {
	return new(installRepo)
}

type InstallRepo interface {
	Add(ctx context.Context, inst domain.Installation) (err error)
	LastByApp(ctx context.Context, host domain.Host, appId string) (inst domain.Installation, err error)
	app.ComponentRunnable
}

type installRepo struct {
	coll *mongo.Collection
}

func (r *installRepo) Init(a *app.App) (err error) {
	r.coll = a.MustComponent(db.CName).(db.Database).Db().Collection(collName)
	return
}

func (r *installRepo) Run(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "host", Value: 1}, {Key: "appId", Value: 1}, {Key: "created", Value: -1}},
	})
	return err
}

func (r *installRepo) Name() (name string) {
	return CName
}

func (r *installRepo) Add(ctx context.Context, inst domain.Installation) (err error) {
	if inst.Id == "" {
		inst.Id = domain.NewId()
	}
	if inst.Created == 0 {
		inst.Created = time.Now().Unix()
	}
	_, err = r.coll.InsertOne(ctx, inst)
	if mongo.IsDuplicateKeyError(err) {
		return ErrInstallationExists
	}
	return
}

func (r *installRepo) LastByApp(ctx context.Context, host domain.Host, appId string) (inst domain.Installation, err error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created", Value: -1}})
	err = r.coll.FindOne(ctx, bson.D{{Key: "host", Value: host}, {Key: "appId", Value: appId}}, opts).Decode(&inst)
	return
}

func (r *installRepo) Close(ctx context.Context) (err error) {
	return nil
}
