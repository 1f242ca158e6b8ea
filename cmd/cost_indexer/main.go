package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-cost-manager/config"
	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
	"github.com/oksasatya/go-cost-manager/internal/domain/repository"
	"github.com/oksasatya/go-cost-manager/internal/infrastructure/search"
	"github.com/oksasatya/go-cost-manager/pkg/events"
	"github.com/oksasatya/go-cost-manager/pkg/helpers"
)

// outcome of one delivery
type outcome int

const (
	ack outcome = iota
	drop
	requeue
)

// handle indexes one cost event. Undecodable or foreign messages are dropped,
// index failures are requeued.
func handle(ctx context.Context, idx repository.CostIndex, body []byte, logger *logrus.Logger) outcome {
	var ev events.CostEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		logger.WithError(err).Warn("bad message")
		return drop
	}
	if ev.Type != events.CostCreated || ev.CostID == 0 {
		logger.WithField("type", ev.Type).Warn("unexpected event")
		return drop
	}
	c := &entity.Cost{
		ID:          ev.CostID,
		Description: ev.Description,
		Category:    entity.Category(ev.Category),
		UserID:      ev.UserID,
		Sum:         ev.Sum,
		Date:        ev.Date,
	}
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := idx.Index(ctx, c); err != nil {
		logger.WithError(err).WithField("cost_id", c.ID).Error("index failed")
		return requeue
	}
	logger.WithField("cost_id", c.ID).Debug("cost indexed")
	return ack
}

func settle(msg amqp.Delivery, o outcome, logger *logrus.Logger) {
	var err error
	switch o {
	case ack:
		err = msg.Ack(false)
	case drop:
		err = msg.Nack(false, false)
	case requeue:
		err = msg.Nack(false, true)
	}
	if err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"delivery_tag": msg.DeliveryTag,
			"outcome":      o.String(),
		}).Error("settle delivery failed")
	}
}

func (o outcome) String() string {
	switch o {
	case ack:
		return "ack"
	case drop:
		return "drop"
	case requeue:
		return "requeue"
	}
	return "unknown"
}

// checkConfig rejects settings the indexer cannot run with.
func checkConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQCostQueue == "" {
		return errors.New("RabbitMQ not configured")
	}
	if len(cfg.ESAddrs()) == 0 {
		return errors.New("Elasticsearch not configured")
	}
	return nil
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-indexer", cfg.Env, cfg.LogLevel)

	if err := checkConfig(cfg); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}
	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		logger.Fatalf("elasticsearch client: %v", err)
	}
	idx := search.NewCostIndex(es, cfg.ESCostsIndex)

	conn, ch, err := helpers.DialQueue(cfg.RabbitMQURL, cfg.RabbitMQCostQueue)
	if err != nil {
		logger.Fatalf("amqp: %v", err)
	}
	defer func() { _ = conn.Close() }()
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		logger.Fatalf("qos: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQCostQueue, "", false, false, false, false, nil)
	if err != nil {
		logger.Fatalf("consume: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			settle(msg, handle(ctx, idx, msg.Body, logger), logger)
		}
		close(done)
	}()

	logger.Infof("cost indexer listening on queue=%s index=%s", cfg.RabbitMQCostQueue, cfg.ESCostsIndex)
	<-stop
	logger.Info("shutting down...")
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
