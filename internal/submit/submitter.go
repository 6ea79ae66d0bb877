// Package submit sends lab payloads to the lab server.
//
// A Submitter issues exactly one POST per invocation to
// /labs?lab_id=<id> with a JSON body and no retries. Submit blocks until
// the reply arrives; Fire returns at once and reports through a callback,
// the way the page's click handler did. Concurrent invocations are
// independent: nothing is deduplicated, queued or cancelled.
package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/concave-dev/labform/internal/config"
	"github.com/concave-dev/labform/internal/form"
	"github.com/concave-dev/labform/internal/logging"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	// ContentType is sent with every payload.
	ContentType = "application/json; charset=utf-8"

	// RequestIDHeader correlates client and server log lines.
	RequestIDHeader = "X-Request-ID"
)

// Result describes a completed exchange with the lab server.
type Result struct {
	RequestID  string
	StatusCode int
	Duration   time.Duration
	Response   form.Response
}

// StatusError is returned when the server answers outside 2xx.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("lab request failed with status %d: %s", e.StatusCode, e.Body)
}

// Callback receives the outcome of a fired request.
type Callback func(*Result, error)

// Submitter posts payloads for one lab.
type Submitter struct {
	client  *resty.Client
	baseURL string
	labID   int

	// Fired requests still running. Fire may race with Wait, which a
	// WaitGroup does not allow once its counter reaches zero.
	mu      sync.Mutex
	idle    *sync.Cond
	pending int
}

// New builds a Submitter. cfg must have passed Validate.
func New(cfg *Config) *Submitter {
	client := resty.New()

	client.SetLogger(logging.RestyLogger{})

	client.
		SetTimeout(cfg.Timeout).
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", cfg.UserAgent).
		SetRetryCount(0)

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Submitting lab payload: %s %s (request %s)",
			req.Method, req.URL, logging.FormatID(req.Header.Get(RequestIDHeader)))
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("Lab response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("Lab request failed: %s %s - %v", req.Method, req.URL, err)
	})

	s := &Submitter{
		client:  client,
		baseURL: cfg.BaseURL,
		labID:   cfg.LabID,
	}
	s.idle = sync.NewCond(&s.mu)
	return s
}

// Submit sends p and waits for the reply. A non-2xx status returns both the
// Result and a *StatusError.
func (s *Submitter) Submit(ctx context.Context, p *form.Payload) (*Result, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return s.send(ctx, body)
}

// Fire serializes p immediately and sends it in the background. done, if
// not nil, runs on the request's goroutine once the reply or error is in.
func (s *Submitter) Fire(ctx context.Context, p *form.Payload, done Callback) {
	body, err := json.Marshal(p)
	if err != nil {
		if done != nil {
			done(nil, fmt.Errorf("failed to encode payload: %w", err))
		}
		return
	}

	s.mu.Lock()
	s.pending++
	s.mu.Unlock()

	go func() {
		defer s.release()
		res, err := s.send(ctx, body)
		if done != nil {
			done(res, err)
		}
	}()
}

// Wait blocks until every fired request has completed. It is safe to call
// while other goroutines keep firing; it returns once none are pending.
func (s *Submitter) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.pending > 0 {
		s.idle.Wait()
	}
}

func (s *Submitter) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending--
	if s.pending == 0 {
		s.idle.Broadcast()
	}
}

// Close waits for fired requests and releases idle connections.
func (s *Submitter) Close() {
	s.Wait()
	s.client.GetClient().CloseIdleConnections()
}

func (s *Submitter) send(ctx context.Context, body []byte) (*Result, error) {
	requestID := uuid.NewString()

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", ContentType).
		SetHeader(RequestIDHeader, requestID).
		SetQueryParam(config.LabIDParam, strconv.Itoa(s.labID)).
		SetBody(body).
		Post(config.LabsPath)

	if err != nil {
		return nil, fmt.Errorf("failed to connect to lab server at %s: %w", s.baseURL, err)
	}

	result := &Result{
		RequestID:  requestID,
		StatusCode: resp.StatusCode(),
		Duration:   resp.Time(),
		Response:   form.ParseResponse(resp.Body()),
	}

	if !resp.IsSuccess() {
		return result, &StatusError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return result, nil
}

// LogCompletion is the default Callback. It logs the reply when the server
// marks the computation finished and otherwise does nothing; errors only
// show up at DEBUG level.
func LogCompletion(res *Result, err error) {
	if err != nil {
		logging.Debug("Lab submission error: %v", err)
		return
	}
	if res == nil {
		return
	}
	if res.Response.Progress != nil {
		logging.Debug("Lab progress: %.0f%%", *res.Response.Progress)
	}
	if res.Response.IsFinished {
		logging.Info("Lab finished: %s", res.Response.Raw)
	}
}
