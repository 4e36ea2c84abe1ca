package notifier

import (
	"fmt"
	"time"

	"go-gin-concert-booking/config"
)

const httpTimeout = 5 * time.Second

// New 依設定建立 Notifier；none 以外的 driver 皆包上斷路器與重試
func New(cfg config.NotifierConfig) (Notifier, error) {
	var inner Notifier
	switch cfg.Driver {
	case "", "none":
		return NewNoopNotifier(), nil
	case "http":
		if cfg.HTTPURL == "" {
			return nil, fmt.Errorf("NOTIFIER_HTTP_URL is required for http notifier")
		}
		inner = NewHTTPNotifier(cfg.HTTPURL, httpTimeout)
	case "kafka":
		if len(cfg.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("NOTIFIER_KAFKA_BROKERS is required for kafka notifier")
		}
		inner = NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaTopic)
	case "rabbitmq":
		inner = NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPExchange)
	default:
		return nil, fmt.Errorf("unknown notifier driver %q", cfg.Driver)
	}
	return NewResilientNotifier(inner, DefaultResilienceConfig()), nil
}
