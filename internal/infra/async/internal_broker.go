package async

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

type BrokerTopicName string

type BrokerMessage struct {
	Event string
	Value any
	Error error
}

// InternalBroker is the in-process pub/sub fabric connecting the review
// workflow to its event consumers (websocket streaming, tests).
type InternalBroker interface {
	Subscribe(topic BrokerTopicName) (Subscription, error)
	Unsubscribe(topic BrokerTopicName, subscription Subscription) error
	Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error
	Stop()
}

var _ InternalBroker = (*LocalBroker)(nil)

var ErrTopicNotFound = errors.New("topic not found")
var ErrSubscriptionNotFound = errors.New("subscription not found")

func NewLocalBroker() *LocalBroker {
	return &LocalBroker{
		topics: make(map[BrokerTopicName][]*subscriber),
	}
}

type LocalBroker struct {
	mu     sync.RWMutex
	topics map[BrokerTopicName][]*subscriber
}

type subscriber struct {
	once         sync.Once
	active       bool
	subscription Subscription
}

type Subscription struct {
	ID       string
	Receiver chan BrokerMessage
}

func (b *LocalBroker) Subscribe(topic BrokerTopicName) (Subscription, error) {
	subscription := Subscription{
		ID:       uuid.NewString(),
		Receiver: make(chan BrokerMessage),
	}

	b.mu.Lock()
	b.topics[topic] = append(b.topics[topic], &subscriber{subscription: subscription, active: true})
	b.mu.Unlock()

	return subscription, nil
}

func (b *LocalBroker) Unsubscribe(topic BrokerTopicName, subscription Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscribers, ok := b.topics[topic]
	if !ok {
		return ErrTopicNotFound
	}

	for _, s := range subscribers {
		if s.subscription.ID == subscription.ID {
			s.close()
			return nil
		}
	}

	return ErrSubscriptionNotFound
}

// Publish fans the message out asynchronously; delivery order across
// subscribers is not guaranteed, order per subscriber is.
func (b *LocalBroker) Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error {
	b.mu.RLock()
	subscribers, ok := b.topics[topic]
	b.mu.RUnlock()
	if !ok {
		return ErrTopicNotFound
	}

	go func() {
		for _, s := range subscribers {
			if s.active {
				s.subscription.Receiver <- msg
			}
		}
	}()

	return nil
}

func (b *LocalBroker) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, subscribers := range b.topics {
		for _, s := range subscribers {
			s.close()
		}
	}
}

func (s *subscriber) close() {
	s.once.Do(func() {
		s.active = false
		close(s.subscription.Receiver)
	})
}
