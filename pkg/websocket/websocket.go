package websocketPkg

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/log"
	"github.com/sirupsen/logrus"
)

type Service string

const (
	LandmarkService Service = "landmarks"
	EmotionService  Service = "emotion"
)

var ErrNotConfigured = errors.New("service URL not configured")

// Config maps each model service to its websocket URL. An empty URL leaves
// the service disabled.
type Config struct {
	URLs         map[Service]string
	PingInterval time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		URLs:         map[Service]string{},
		PingInterval: 30 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

type IWebsocket interface {
	RoundTrip(ctx context.Context, service Service, payload []byte) ([]byte, error)
	IsConnected(service Service) bool
	Reconnect(service Service) error
	CloseConnections()
}

type webSocketClient struct {
	urls  map[Service]string
	conns map[Service]*websocket.Conn
	// busy serialises request/reply pairs on one connection.
	busy         map[Service]*sync.Mutex
	mu           sync.Mutex
	pingInterval time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
	log          *logrus.Logger
}

// NewAIWebSocketClient returns a client that dials lazily on the first
// request for each service.
func NewAIWebSocketClient(cfg Config, logger *logrus.Logger) IWebsocket {
	c := &webSocketClient{
		urls:         map[Service]string{},
		conns:        map[Service]*websocket.Conn{},
		busy:         map[Service]*sync.Mutex{},
		pingInterval: cfg.PingInterval,
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
		log:          logger,
	}
	for service, url := range cfg.URLs {
		if url == "" {
			continue
		}
		c.urls[service] = url
		c.busy[service] = &sync.Mutex{}
	}
	return c
}

func (c *webSocketClient) IsConnected(service Service) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conns[service] != nil
}

func (c *webSocketClient) Reconnect(service Service) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if conn := c.conns[service]; conn != nil {
		conn.Close()
		delete(c.conns, service)
	}

	url := c.urls[service]
	if url == "" {
		return fmt.Errorf("%w: %s", ErrNotConfigured, service)
	}

	c.log.WithFields(log.Fields{
		"service": service,
		"url":     url,
	}).Info("Connecting to model service")

	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout))
		if err != nil {
			c.log.WithField("error", err.Error()).Warn("Error sending pong")
		}
		return nil
	})

	c.conns[service] = conn

	if c.pingInterval > 0 {
		go c.keepAlive(service, conn)
	}

	return nil
}

func (c *webSocketClient) CloseConnections() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for service, conn := range c.conns {
		conn.Close()
		delete(c.conns, service)
	}
}

func (c *webSocketClient) keepAlive(service Service, conn *websocket.Conn) {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		if c.conns[service] != conn {
			c.mu.Unlock()
			return
		}

		err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(c.writeTimeout))
		if err != nil {
			c.log.WithFields(log.Fields{
				"service": service,
				"error":   err.Error(),
			}).Warn("Ping failed, marking connection as dead")
			delete(c.conns, service)
			conn.Close()
			c.mu.Unlock()
			return
		}

		c.mu.Unlock()
	}
}

func (c *webSocketClient) getConnection(service Service) (*websocket.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn := c.conns[service]
	if conn == nil {
		return nil, fmt.Errorf("not connected to %s service", service)
	}
	return conn, nil
}

func (c *webSocketClient) drop(service Service, conn *websocket.Conn) {
	c.mu.Lock()
	if c.conns[service] == conn {
		delete(c.conns, service)
	}
	c.mu.Unlock()
	conn.Close()
}

// RoundTrip sends payload as one binary frame and waits for the single
// reply. The connection is dropped on any transport error so the next call
// redials.
func (c *webSocketClient) RoundTrip(ctx context.Context, service Service, payload []byte) ([]byte, error) {
	busy, ok := c.busy[service]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotConfigured, service)
	}
	busy.Lock()
	defer busy.Unlock()

	conn, err := c.getConnection(service)
	if err != nil {
		if err := c.Reconnect(service); err != nil {
			return nil, fmt.Errorf("cannot connect to %s service: %w", service, err)
		}
		if conn, err = c.getConnection(service); err != nil {
			return nil, err
		}
	}

	c.mu.Lock()
	conn.SetWriteDeadline(c.deadline(ctx, c.writeTimeout))
	err = conn.WriteMessage(websocket.BinaryMessage, payload)
	c.mu.Unlock()
	if err != nil {
		c.drop(service, conn)
		return nil, fmt.Errorf("error sending %s frame: %w", service, err)
	}

	conn.SetReadDeadline(c.deadline(ctx, c.readTimeout))
	_, message, err := conn.ReadMessage()
	if err != nil {
		c.drop(service, conn)
		return nil, fmt.Errorf("error reading %s message: %w", service, err)
	}
	conn.SetReadDeadline(time.Time{})

	c.log.WithFields(log.Fields{
		"request_id": log.RequestIDFrom(ctx),
		"service":    service,
		"sent":       len(payload),
		"received":   len(message),
	}).Debug("Model service replied")

	return message, nil
}

// deadline is now+timeout, or the context deadline when that is sooner.
func (c *webSocketClient) deadline(ctx context.Context, timeout time.Duration) time.Time {
	d := time.Now().Add(timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(d) {
		return ctxDeadline
	}
	return d
}
