package installrepo

import (
	"context"
	"testing"

	"github.com/anyproto/any-sync/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tastetube/push-bootstrap/db"
	"github.com/tastetube/push-bootstrap/domain"
)

var ctx = context.Background()

func TestInstallRepo_Add(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.Add(ctx, domain.Installation{
		Id:      "1",
		Host:    domain.HostWorker,
		AppId:   "a1",
		State:   "listening",
		Created: 1,
	}))
	require.ErrorIs(t, fx.Add(ctx, domain.Installation{Id: "1", Host: domain.HostWorker, AppId: "a1"}), ErrInstallationExists)
	require.NoError(t, fx.Add(ctx, domain.Installation{
		Id:      "2",
		Host:    domain.HostWorker,
		AppId:   "a1",
		State:   "listening",
		Created: 2,
	}))
	inst, err := fx.LastByApp(ctx, domain.HostWorker, "a1")
	require.NoError(t, err)
	assert.Equal(t, "2", inst.Id)
}

func TestInstallRepo_LastByApp(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.Add(ctx, domain.Installation{Host: domain.HostNative, AppId: "a1"}))
	_, err := fx.LastByApp(ctx, domain.HostWorker, "a1")
	require.ErrorIs(t, err, mongo.ErrNoDocuments)
	inst, err := fx.LastByApp(ctx, domain.HostNative, "a1")
	require.NoError(t, err)
	assert.NotEmpty(t, inst.Id)
	assert.NotZero(t, inst.Created)
}

func newFixture(t testing.TB) *fixture {
	fx := &fixture{
		InstallRepo: New(),
		a:           new(app.App),
	}
	fx.a.Register(&testConfig{
		Mongo: db.Mongo{
			Connect:  "mongodb://localhost:27017",
			Database: "push_bootstrap_unittest",
		},
	}).
		Register(db.New()).
		Register(fx.InstallRepo)
	require.NoError(t, fx.a.Start(ctx))
	t.Cleanup(func() {
		fx.finish(t)
	})
	return fx
}

type fixture struct {
	InstallRepo
	a *app.App
}

func (fx *fixture) finish(t testing.TB) {
	_ = fx.InstallRepo.(*installRepo).coll.Drop(ctx)
	require.NoError(t, fx.a.Close(ctx))
}

type testConfig struct {
	Mongo db.Mongo
}

func (t testConfig) Init(a *app.App) (err error) {
	return
}

func (t testConfig) Name() (name string) {
	return "config"
}

func (t testConfig) GetMongo() db.Mongo {
	return t.Mongo
}
