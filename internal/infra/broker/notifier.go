package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"time"

	"coworking-booking/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the part of *amqp.Channel the notifier needs.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// dialer opens a channel and returns a func that releases it together with
// its connection. It must give up once ctx is done.
type dialer func(ctx context.Context, url string) (channel, func(), error)

// dialAMQP bounds the TCP connect and the AMQP handshake by ctx. amqp.Dial
// alone waits up to 30s on a broker that accepts but never answers.
func dialAMQP(ctx context.Context, url string) (channel, func(), error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial: func(network, addr string) (net.Conn, error) {
			var d net.Dialer
			c, err := d.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			// amqp clears the deadline once the handshake completes.
			if deadline, ok := ctx.Deadline(); ok {
				if err := c.SetDeadline(deadline); err != nil {
					_ = c.Close()
					return nil, err
				}
			}
			return c, nil
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("amqp channel: %w", err)
	}
	return ch, func() {
		_ = ch.Close()
		_ = conn.Close()
	}, nil
}

// AMQPNotifier publishes client notices as persistent JSON messages on a
// durable queue. Each publish opens its own connection and the whole
// publish, dial included, is bounded by timeout.
type AMQPNotifier struct {
	url     string
	queue   string
	timeout time.Duration
	dial    dialer
	now     func() time.Time
	logger  *slog.Logger
}

const defaultPublishTimeout = 2 * time.Second

func NewAMQPNotifier(url, queue string, timeout time.Duration, logger *slog.Logger) *AMQPNotifier {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &AMQPNotifier{
		url:     url,
		queue:   queue,
		timeout: timeout,
		dial:    dialAMQP,
		now:     time.Now,
		logger:  logger,
	}
}

func (n *AMQPNotifier) Notify(ctx context.Context, notice commands.Notification) error {
	body, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	ch, release, err := n.dial(ctx, n.url)
	if err != nil {
		return err
	}
	defer release()

	if _, err := ch.QueueDeclare(n.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", n.queue, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    n.now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", n.queue, false, false, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", n.queue, err)
	}

	n.logger.Debug("notification published", "queue", n.queue, "client_id", notice.ClientID)
	return nil
}

// LogNotifier records notices in the application log. Used when no broker
// is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, notice commands.Notification) error {
	n.logger.Info("notification",
		"client_id", notice.ClientID,
		"title", notice.Title,
		"message", notice.Message,
		"kind", notice.Kind,
		"urgency", notice.Urgency)
	return nil
}
