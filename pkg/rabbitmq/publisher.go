package rabbitmq

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"offices-service/pkg/config"
)

// Очереди уведомлений об изменениях офисов. Имена закреплены контрактом
// с потребителями, менять их нельзя.
const (
	AddOfficeQueue    = "AddOffice"
	UpdateOfficeQueue = "UpdateOffice"
	DeleteOfficeQueue = "DeleteOffice"
)

type PublisherInterface interface {
	DeclareQueues(ctx context.Context) error
	Publish(ctx context.Context, body interface{}, queueName string) error
	Close() error
}

type Publisher struct {
	conn   *amqp.Connection
	logger *zap.Logger
}

func NewPublisher(cfg config.RabbitMQConfig, logger *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL())
	if err != nil {
		return nil, err
	}

	logger.Info("✅ Подключено к RabbitMQ", zap.String("host", cfg.Host))
	return &Publisher{conn: conn, logger: logger}, nil
}

// DeclareQueues объявляет очереди офисов при старте процесса.
// Объявление идемпотентно: существующая очередь с теми же параметрами не ошибка.
func (p *Publisher) DeclareQueues(ctx context.Context) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	for _, queueName := range []string{AddOfficeQueue, UpdateOfficeQueue, DeleteOfficeQueue} {
		if _, err := ch.QueueDeclare(queueName, false, false, false, false, nil); err != nil {
			return err
		}
	}

	return nil
}

// Publish сериализует сообщение в JSON и кладет его в очередь через
// exchange по умолчанию. Подтверждения потребителей не ожидаются.
func (p *Publisher) Publish(ctx context.Context, body interface{}, queueName string) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	message, err := json.Marshal(body)
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        message,
	})
	if err != nil {
		return err
	}

	p.logger.Debug("Сообщение отправлено в очередь", zap.String("queue", queueName))
	return nil
}

func (p *Publisher) Close() error {
	return p.conn.Close()
}
