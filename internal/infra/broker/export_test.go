package broker

import (
	"context"
	"time"
)

type Channel = channel

var DialAMQP = dialAMQP

func (n *AMQPNotifier) SetDialer(d func(ctx context.Context, url string) (Channel, func(), error)) {
	n.dial = d
}

func (n *AMQPNotifier) SetNow(now func() time.Time) {
	n.now = now
}

func (n *AMQPNotifier) SetTimeout(d time.Duration) {
	n.timeout = d
}
