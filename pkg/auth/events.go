package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"SmartCart-Backend/domain"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

const eventChannelPrefix = "auth:events:"

type (
	// EventBus fans session changes out to the client that caused them.
	// Events are scoped by client id; a client only hears about its own
	// sign-ins and sign-outs.
	EventBus interface {
		Publish(ctx context.Context, event domain.AuthEvent) error
		Subscribe(ctx context.Context, clientID string, handler func(domain.AuthEvent)) (Subscription, error)
	}

	Subscription interface {
		// Unsubscribe stops delivery and waits for the receiving goroutine to
		// exit. Called from inside the handler it returns without waiting,
		// and no further events are delivered. Calling it more than once is
		// a no-op.
		Unsubscribe() error
	}

	redisEventBus struct {
		client *redis.Client
	}

	redisSubscription struct {
		pubsub     *redis.PubSub
		cancel     context.CancelFunc
		done       chan struct{}
		once       sync.Once
		err        error
		delivering atomic.Bool
	}
)

func NewEventBus(client *redis.Client) EventBus {
	return &redisEventBus{client: client}
}

func eventChannel(clientID string) string {
	return eventChannelPrefix + clientID
}

func (b *redisEventBus) Publish(ctx context.Context, event domain.AuthEvent) error {
	if event.ClientID == "" {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, eventChannel(event.ClientID), data).Err()
}

func (b *redisEventBus) Subscribe(ctx context.Context, clientID string, handler func(domain.AuthEvent)) (Subscription, error) {
	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	pubsub := b.client.Subscribe(subCtx, eventChannel(clientID))

	// wait for the subscription to be confirmed so no event published after
	// Subscribe returns is lost
	if _, err := pubsub.Receive(subCtx); err != nil {
		cancel()
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe to auth events: %w", err)
	}

	sub := &redisSubscription{
		pubsub: pubsub,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(sub.done)

		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}

				var event domain.AuthEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Warnw("dropping malformed auth event", "client_id", clientID, "error", err)
					continue
				}
				if subCtx.Err() != nil {
					return
				}
				sub.delivering.Store(true)
				handler(event)
				sub.delivering.Store(false)
			}
		}
	}()

	return sub, nil
}

func (s *redisSubscription) Unsubscribe() error {
	s.once.Do(func() {
		s.cancel()
		s.err = s.pubsub.Close()
		if s.delivering.Load() {
			return
		}
		<-s.done
	})
	return s.err
}
