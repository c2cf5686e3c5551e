package app

import (
	"go.uber.org/dig"

	"order-policy-service/internal/config"
	"order-policy-service/internal/logx"
	"order-policy-service/internal/service/orders"
	"order-policy-service/internal/service/quote"
	"order-policy-service/internal/transport/kafka"
)

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(svc *quote.Service, logger logx.Logger) *orders.Processor {
			return orders.NewProcessor(svc, logger)
		},
		func(p *orders.Processor) kafka.HandleFunc {
			return makeOrdersKafka(p)
		},
		newKafkaConsumer,
	)
}

func newKafkaConsumer(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
	return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, h)
}
