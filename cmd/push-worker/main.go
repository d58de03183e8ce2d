package main

import (
	"context"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-dispatcher/internal/config"
	"github.com/aliskhannn/notification-dispatcher/internal/dedup"
	"github.com/aliskhannn/notification-dispatcher/internal/model"
	"github.com/aliskhannn/notification-dispatcher/internal/rabbitmq/handlers/delivery"
	"github.com/aliskhannn/notification-dispatcher/internal/rabbitmq/queue"
	statusrepo "github.com/aliskhannn/notification-dispatcher/internal/repository/status"
	notifsvc "github.com/aliskhannn/notification-dispatcher/internal/service/notification"
	"github.com/aliskhannn/notification-dispatcher/internal/template"
	"github.com/aliskhannn/notification-dispatcher/internal/worker"
	"github.com/aliskhannn/notification-dispatcher/pkg/push"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	if err := queue.Declare(ch, cfg.Delivery.MaxRetries, cfg.Delivery.BaseRetryDelay); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to declare rabbitmq topology")
	}

	publisher := queue.NewPublisher(ch)
	consumer := queue.NewConsumer(ch, model.ChannelPush.QueueName())

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	pushClient, err := push.NewClient(ctx, cfg.Push.CredentialsFile, cfg.Push.ProjectID)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create push client")
	}

	statusRepo := statusrepo.NewRepository(db)
	dedupIndex := dedup.NewIndex(rdb, cfg.Dedup.TTL)
	service := notifsvc.NewService(statusRepo, publisher, dedupIndex, rdb)

	templates := template.NewClient(cfg.Template.BaseURL, cfg.Template.Timeout)
	provider := delivery.NewPushProvider(pushClient)
	handler := delivery.NewHandler(service, publisher, templates, provider, cfg.Delivery.MaxRetries)

	w := worker.New(string(model.ChannelPush), consumer, handler)
	w.Run(ctx, cfg.Retry, cfg.Workers.Count)

	zlog.Logger.Info().Msg("shutdown signal received")

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
