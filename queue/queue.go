package queue

import (
	"context"
	"encoding/json"
	"math"

	"github.com/adjust/rmq/v5"
	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tastetube/push-bootstrap/domain"
	"github.com/tastetube/push-bootstrap/redisprovider"
)

const CName = "push.queue"

var log = logger.NewNamed(CName)

func New() Queue {
	return new(queue)
}

// Queue is the delivery channel for inbound background messages.
type Queue interface {
	Add(ctx context.Context, msg domain.InboundMessage) error
	Consume(ctx context.Context, handle func(msg domain.InboundMessage) error) error
	app.ComponentRunnable
}

type queue struct {
	client       redis.UniversalClient
	conf         Config
	rmqConn      rmq.Connection
	queue        rmq.Queue
	errCh        chan error
	runCtx       context.Context
	runCtxCancel context.CancelFunc
}

func (q *queue) Init(a *app.App) (err error) {
	q.client = a.MustComponent(redisprovider.CName).(redisprovider.RedisProvider).Redis()
	q.conf = a.MustComponent("config").(configSource).GetQueue().withDefaults()
	q.runCtx, q.runCtxCancel = context.WithCancel(context.Background())
	return
}

func (q *queue) Name() (name string) {
	return CName
}

func (q *queue) Run(ctx context.Context) (err error) {
	q.errCh = make(chan error, 10)
	if q.rmqConn, err = rmq.OpenClusterConnection(q.conf.Tag, q.client, q.errCh); err != nil {
		return err
	}
	go q.handleRmqErrs()
	if q.queue, err = q.rmqConn.OpenQueue(q.conf.Name); err != nil {
		return err
	}
	// deliveries rejected while the previous consumer was shutting down
	returned, err := q.queue.ReturnRejected(math.MaxInt64)
	if err != nil {
		return err
	}
	if returned > 0 {
		log.Info("rejected messages returned", zap.Int64("count", returned))
	}
	return q.queue.StartConsuming(q.conf.PrefetchLimit, q.conf.pollInterval())
}

func (q *queue) Add(ctx context.Context, msg domain.InboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return q.queue.Publish(string(data))
}

func (q *queue) Consume(ctx context.Context, handle func(msg domain.InboundMessage) error) error {
	cons := func(delivery rmq.Delivery) {
		select {
		case <-q.runCtx.Done():
			_ = delivery.Reject()
			return
		case <-ctx.Done():
			_ = delivery.Reject()
			return
		default:
		}
		var msg domain.InboundMessage
		if err := json.Unmarshal([]byte(delivery.Payload()), &msg); err != nil {
			log.Warn("malformed message", zap.Error(err))
			_ = delivery.Reject()
			return
		}
		if err := handle(msg); err != nil {
			_ = delivery.Reject()
		} else {
			_ = delivery.Ack()
		}
	}
	_, err := q.queue.AddConsumerFunc(q.conf.Tag, cons)
	return err
}

func (q *queue) handleRmqErrs() {
	for {
		select {
		case <-q.runCtx.Done():
			return
		case err := <-q.errCh:
			log.Warn("rmq error", zap.Error(err))
		}
	}
}

func (q *queue) Close(ctx context.Context) (err error) {
	if q.runCtxCancel != nil {
		q.runCtxCancel()
	}
	if q.queue != nil {
		done := q.queue.StopConsuming()
		<-done
	}
	return nil
}
