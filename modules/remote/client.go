package remote

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/vk/livegrid/internal/ctxlog"
	"github.com/vk/livegrid/internal/world"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// DefaultEvent is the event listened for when Config.Event is empty.
const DefaultEvent = "input"

// Config describes the server to listen to.
type Config struct {
	URL                string
	Namespace          string
	Event              string
	InsecureSkipVerify bool
	// ConnectTimeout bounds the first connection. Zero means 15s.
	ConnectTimeout time.Duration
}

// Client pushes every received value into an inbox.
type Client struct {
	cfg   Config
	inbox *world.Inbox
}

func New(cfg Config, inbox *world.Inbox) *Client {
	if cfg.Event == "" {
		cfg.Event = DefaultEvent
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 15 * time.Second
	}
	return &Client{cfg: cfg, inbox: inbox}
}

// Run connects and listens until ctx is done. Only a failed first
// connection is an error; later drops are left to the client's own
// reconnection.
func (c *Client) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx).With("module", "remote", "url", c.cfg.URL, "event", c.cfg.Event)

	parsedURL, err := url.Parse(c.cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return fmt.Errorf("remote URL %q needs a scheme and a host", c.cfg.URL)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if c.cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(c.cfg.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting remote client.")
		io.Disconnect()
	}()

	connectChan := make(chan error, 1)
	io.On(types.EventName("connect"), func(...any) {
		logger.Info("Remote input connected.", "sid", io.Id())
		select {
		case connectChan <- nil:
		default:
		}
	})
	io.On(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("connect error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		logger.Debug("Remote connect error.", "error", err)
		select {
		case connectChan <- err:
		default:
		}
	})
	io.On(types.EventName("disconnect"), func(reason ...any) {
		logger.Warn("Remote input disconnected.", "reason", fmt.Sprint(reason...))
	})
	io.On(types.EventName(c.cfg.Event), func(data ...any) {
		for _, payload := range data {
			c.handle(ctx, payload)
		}
	})

	logger.Debug("Connecting remote client.")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			return fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		return nil
	case <-time.After(c.cfg.ConnectTimeout):
		return fmt.Errorf("timed out after %s waiting for socket.io connection", c.cfg.ConnectTimeout)
	}

	<-ctx.Done()
	return nil
}

// handle pushes one payload. Bad payloads and a full inbox are not errors
// for the frame loop.
func (c *Client) handle(ctx context.Context, payload any) {
	logger := ctxlog.FromContext(ctx)
	msgs, err := Decode(payload)
	if err != nil {
		logger.Debug("Ignoring remote payload.", "error", err)
		return
	}
	for _, m := range msgs {
		if !c.inbox.Push(m) {
			logger.Debug("Remote input dropped, inbox full.", "name", m.Name, "dropped", c.inbox.Dropped())
		}
	}
}
