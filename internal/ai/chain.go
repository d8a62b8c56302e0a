package ai

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"campusos/internal/observability"
)

const DefaultTimeout = 10 * time.Second

// Chain tries each provider in order and falls back to the local responder.
type Chain struct {
	providers []Provider
	local     LocalResponder
	gate      Gate
	timeout   time.Duration
	log       logrus.FieldLogger
}

// ChainConfig configures a Chain. A nil Gate lets every caller reach the providers.
type ChainConfig struct {
	Providers []Provider
	Gate      Gate
	Timeout   time.Duration
	Logger    logrus.FieldLogger
}

func NewChain(cfg ChainConfig) *Chain {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.Logger = l
	}
	return &Chain{
		providers: cfg.Providers,
		gate:      cfg.Gate,
		timeout:   cfg.Timeout,
		log:       cfg.Logger,
	}
}

// GetReply never fails. Provider errors, timeouts and panics are logged and
// the next provider is tried, ending with the local responder.
func (c *Chain) GetReply(ctx context.Context, message string, history []Message) (string, bool) {
	source := "local"
	if len(c.providers) > 0 {
		if !c.allowed(ctx) {
			source = "quota"
		} else {
			for _, p := range c.providers {
				reply, err := c.call(ctx, p, message, history)
				if err != nil {
					observability.ChatProviderErrors.WithLabelValues(p.Name()).Inc()
					c.log.WithFields(logrus.Fields{
						"provider": p.Name(),
						"error":    err.Error(),
					}).Warn("chat provider failed")
					continue
				}
				observability.ChatReplies.WithLabelValues(p.Name()).Inc()
				return reply, TripGenerated(reply)
			}
		}
	}

	observability.ChatReplies.WithLabelValues(source).Inc()
	return c.local.GetReply(ctx, message, history)
}

func (c *Chain) allowed(ctx context.Context) bool {
	if c.gate == nil {
		return true
	}
	id := ClientID(ctx)
	ok, err := c.gate.Allow(ctx, id)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"client_id": id,
			"error":     err.Error(),
		}).Warn("chat quota check failed; allowing")
		return true
	}
	if !ok {
		c.log.WithField("client_id", id).Info("chat quota exhausted; using local replies")
	}
	return ok
}

func (c *Chain) call(ctx context.Context, p Provider, message string, history []Message) (reply string, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", p.Name(), r)
		}
	}()

	start := time.Now()
	reply, err = p.Reply(ctx, message, history)
	observability.ChatProviderLatency.WithLabelValues(p.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("%s: empty reply", p.Name())
	}
	return reply, nil
}
