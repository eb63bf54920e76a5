package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/bft-labs/corelink/internal/domain"
	"github.com/bft-labs/corelink/internal/ports"
)

const sessionEndpoint = "/v1/session"

// SessionConfig configures the HTTP session driver.
type SessionConfig struct {
	// ServiceURL is the control-plane base URL, without a trailing slash.
	ServiceURL string

	// AuthKey is the API key sent as a bearer token.
	AuthKey string

	// NodeID identifies this node to the control plane.
	NodeID string
}

// SessionDriver implements ports.Driver against the control plane's session
// API. Setup registers a session, Teardown closes it. Teardown tolerates
// being invoked again after a timed-out call: once the session is gone it is
// a no-op.
type SessionDriver struct {
	cfg      SessionConfig
	client   ports.HTTPClient
	logger   ports.Logger
	sessions ports.SessionRepository

	// heartbeat retry policy
	heartbeatRetries int
	backoffInitial   time.Duration
	backoffMax       time.Duration

	mu      sync.Mutex
	session domain.Session
}

// NewSessionDriver creates a new HTTP session driver. The sessions
// repository is optional; pass nil to skip crash-forensics persistence.
func NewSessionDriver(cfg SessionConfig, client ports.HTTPClient, sessions ports.SessionRepository, logger ports.Logger) *SessionDriver {
	return &SessionDriver{
		cfg:              cfg,
		client:           client,
		logger:           logger,
		sessions:         sessions,
		heartbeatRetries: 3,
		backoffInitial:   DefaultBackoffInitial,
		backoffMax:       DefaultBackoffMax,
	}
}

// registerRequest is the body of the session registration call.
type registerRequest struct {
	NodeID   string `json:"node_id"`
	Hostname string `json:"hostname"`
	OSArch   string `json:"os_arch"`
}

// registerResponse is the control plane's answer to a registration.
type registerResponse struct {
	SessionID string `json:"session_id"`
}

// Setup registers a session with the control plane.
func (d *SessionDriver) Setup(ctx context.Context) error {
	body, err := json.Marshal(registerRequest{
		NodeID:   d.cfg.NodeID,
		Hostname: hostname(),
		OSArch:   runtime.GOOS + "/" + runtime.GOARCH,
	})
	if err != nil {
		return fmt.Errorf("marshal session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.ServiceURL+sessionEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create session request: %w", err)
	}
	d.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("register session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(respBody))
	}

	var reg registerResponse
	if err := json.NewDecoder(resp.Body).Decode(&reg); err != nil {
		return fmt.Errorf("decode session response: %w", err)
	}
	if reg.SessionID == "" {
		return fmt.Errorf("server returned empty session id")
	}

	sess := domain.Session{
		ID:        reg.SessionID,
		NodeID:    d.cfg.NodeID,
		StartedAt: time.Now().UTC(),
	}

	d.mu.Lock()
	d.session = sess
	d.mu.Unlock()

	if d.sessions != nil {
		if err := d.sessions.Save(sess); err != nil {
			d.logger.Warn("failed to persist session record", ports.Err(err))
		}
	}

	d.logger.Info("session registered", ports.String("session_id", sess.ID))
	return nil
}

// Teardown closes the registered session. A second call after the session
// was already closed returns nil.
func (d *SessionDriver) Teardown(ctx context.Context) error {
	d.mu.Lock()
	sess := d.session
	d.mu.Unlock()

	if sess.Empty() {
		return nil
	}

	url := d.cfg.ServiceURL + sessionEndpoint + "/" + sess.ID
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("create close request: %w", err)
	}
	d.setHeaders(req)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 && resp.StatusCode != http.StatusNotFound {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(respBody))
	}

	d.mu.Lock()
	d.session = domain.Session{}
	d.mu.Unlock()

	if d.sessions != nil {
		if err := d.sessions.Clear(); err != nil {
			d.logger.Warn("failed to clear session record", ports.Err(err))
		}
	}

	d.logger.Info("session closed", ports.String("session_id", sess.ID))
	return nil
}

// Heartbeat tells the control plane the session is still alive. Used by the
// daemon loop, not by the lifecycle layer. Transient failures are retried
// with exponential backoff before the error is surfaced.
func (d *SessionDriver) Heartbeat(ctx context.Context) error {
	b := newBackoff(d.backoffInitial, d.backoffMax)

	var err error
	for attempt := 0; attempt < d.heartbeatRetries; attempt++ {
		if attempt > 0 {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			d.logger.Debug("retrying heartbeat",
				ports.Int("attempt", attempt),
				ports.Duration("backoff", b.Current()))
			b.Sleep()
		}
		if err = d.heartbeatOnce(ctx); err == nil {
			return nil
		}
	}
	return err
}

func (d *SessionDriver) heartbeatOnce(ctx context.Context) error {
	d.mu.Lock()
	sess := d.session
	d.mu.Unlock()

	if sess.Empty() {
		return fmt.Errorf("no active session")
	}

	url := d.cfg.ServiceURL + sessionEndpoint + "/" + sess.ID + "/heartbeat"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("create heartbeat request: %w", err)
	}
	d.setHeaders(req)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("send heartbeat: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// Session returns the currently registered session, if any.
func (d *SessionDriver) Session() domain.Session {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.session
}

func (d *SessionDriver) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+d.cfg.AuthKey)
	req.Header.Set("X-Agent-Hostname", hostname())
	req.Header.Set("X-Agent-OSArch", runtime.GOOS+"/"+runtime.GOARCH)
}

// hostname returns the current hostname.
func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}
