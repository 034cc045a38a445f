package calibration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/khandoba/threatindex/score"
)

// ErrNotFound is returned by Fetch when no weight set exists under the
// requested name.
var ErrNotFound = errors.New("calibration: weight set not found")

// Config configures the connection to the etcd cluster holding weight sets.
type Config struct {
	// Endpoints lists the etcd cluster endpoints (e.g., "localhost:2379").
	Endpoints []string

	// Namespace prefixes all calibration keys. Default: "khandoba".
	Namespace string

	// DialTimeout bounds connection establishment. Default: 5s.
	DialTimeout time.Duration

	// TLS enables mutual TLS against the cluster.
	TLS *TLSConfig
}

// Client reads and writes weight sets in etcd.
//
// Thread-safety: all methods are safe for concurrent use.
type Client struct {
	client    *clientv3.Client
	namespace string
}

// NewClient connects to the etcd cluster described by cfg.
// The client must be closed with Close when no longer needed.
func NewClient(cfg Config) (*Client, error) {
	if len(cfg.Endpoints) == 0 {
		return nil, fmt.Errorf("calibration: endpoints cannot be empty")
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = "khandoba"
	}
	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}

	clientCfg := clientv3.Config{
		Endpoints:   cfg.Endpoints,
		DialTimeout: dialTimeout,
	}

	if cfg.TLS != nil && cfg.TLS.Enabled {
		tlsConfig, err := newTLSConfig(cfg.TLS)
		if err != nil {
			return nil, fmt.Errorf("calibration: failed to configure TLS: %w", err)
		}
		clientCfg.TLS = tlsConfig
	}

	cli, err := clientv3.New(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("calibration: failed to connect to etcd: %w", err)
	}

	return &Client{client: cli, namespace: namespace}, nil
}

// Publish stores a named weight set. The set is validated first so a bad
// calibration can never reach running engines.
func (c *Client) Publish(ctx context.Context, name string, w score.Weights) error {
	if name == "" {
		return fmt.Errorf("calibration: weight set name cannot be empty")
	}
	if err := w.Validate(); err != nil {
		return fmt.Errorf("calibration: refusing to publish invalid weights: %w", err)
	}

	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("calibration: failed to marshal weights: %w", err)
	}
	if _, err := c.client.Put(ctx, c.key(name), string(data)); err != nil {
		return fmt.Errorf("calibration: failed to publish weight set %s: %w", name, err)
	}
	return nil
}

// Fetch retrieves a named weight set. Returns ErrNotFound when the name is
// unknown, and rejects sets that fail validation.
func (c *Client) Fetch(ctx context.Context, name string) (score.Weights, error) {
	resp, err := c.client.Get(ctx, c.key(name))
	if err != nil {
		return score.Weights{}, fmt.Errorf("calibration: failed to fetch weight set %s: %w", name, err)
	}
	if len(resp.Kvs) == 0 {
		return score.Weights{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return decodeWeights(resp.Kvs[0].Value, name)
}

// Watch streams updates to a named weight set until the context is
// cancelled. Invalid or corrupt updates are dropped rather than delivered.
func (c *Client) Watch(ctx context.Context, name string) (<-chan score.Weights, error) {
	if name == "" {
		return nil, fmt.Errorf("calibration: weight set name cannot be empty")
	}

	updates := make(chan score.Weights)
	watchCh := c.client.Watch(ctx, c.key(name))

	go func() {
		defer close(updates)
		for resp := range watchCh {
			if resp.Err() != nil {
				return
			}
			for _, ev := range resp.Events {
				if ev.Type != clientv3.EventTypePut {
					continue
				}
				w, err := decodeWeights(ev.Kv.Value, name)
				if err != nil {
					continue
				}
				select {
				case updates <- w:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return updates, nil
}

// Close releases the etcd connection.
func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) key(name string) string {
	return fmt.Sprintf("%s/calibration/weights/%s", c.namespace, name)
}

func decodeWeights(data []byte, name string) (score.Weights, error) {
	var w score.Weights
	if err := json.Unmarshal(data, &w); err != nil {
		return score.Weights{}, fmt.Errorf("calibration: corrupt weight set %s: %w", name, err)
	}
	if err := w.Validate(); err != nil {
		return score.Weights{}, fmt.Errorf("calibration: invalid weight set %s: %w", name, err)
	}
	return w, nil
}
