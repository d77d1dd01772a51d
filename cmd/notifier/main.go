package main

import (
	"context"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"medibook/config"
	"medibook/external/notification"
	"medibook/external/sms"
	"medibook/infras/kafka"
	"medibook/shared/constant"
	"medibook/shared/logger"
)

// The notifier consumes booking and OTP events and delivers them over SMS.
// It runs separately from the API so provider latency never touches request
// handling.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	client := kafka.New(cfg)
	sender := sms.NewLogSender(cfg)

	ctx := context.Background()

	log.Info().Str("topic", constant.KafkaTopicNotifications).Msg("Starting notification consumer")

	client.Consume(ctx, cfg.Kafka.ConsumerGroup, constant.KafkaTopicNotifications, func(message kafkaGo.Message) {
		event, err := kafka.DecodeKafkaMessage[notification.Event](message)
		if err != nil {
			log.Error().Err(err).Msg("failed to decode notification event")

			return
		}

		if event.Phone == "" {
			log.Warn().Str("type", string(event.Type)).Msg("notification event without a phone, skipping")

			return
		}

		if err := sender.Send(ctx, event.Phone, sms.Render(event)); err != nil {
			log.Error().Err(err).Str("type", string(event.Type)).Msg("failed to send sms")
		}
	})
}
