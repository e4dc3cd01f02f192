package dal

import (
	"context"
	"elevatorops-console/models"
	"elevatorops-console/utils/logger"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// RestyGateway is the HTTP Gateway backed by resty
type RestyGateway struct {
	httpClient   *resty.Client
	defaultToken string
	logger       logger.Logger
}

// NewRestyGateway creates a gateway for the configured backend. Retries are
// disabled: a failed call is surfaced and retried by the user.
func NewRestyGateway(cfg *models.Config, log logger.Logger) *RestyGateway {
	timeout := cfg.APITimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIBaseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &RestyGateway{
		httpClient:   client,
		defaultToken: cfg.APIToken,
		logger:       log,
	}
}

// Send issues one request and converts the outcome into an envelope or a Failure
func (g *RestyGateway) Send(ctx context.Context, method, path string, opts RequestOptions) (*Envelope, error) {
	requestID := uuid.New().String()
	req := g.httpClient.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID)

	if len(opts.Query) > 0 {
		req.SetQueryParams(opts.Query)
	}
	if opts.Body != nil {
		req.SetBody(opts.Body)
	}
	if token, ok := TokenFromContext(ctx); ok {
		req.SetAuthToken(token)
	} else if g.defaultToken != "" {
		req.SetAuthToken(g.defaultToken)
	}

	log := g.logger.WithFields(map[string]interface{}{
		"request_id": requestID,
		"method":     method,
		"path":       path,
	})

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Errorf("Backend call failed: %v", err)
		return nil, transportFailure(err)
	}

	env := NewEnvelope(resp.StatusCode(), resp.Body())
	if resp.IsError() {
		msg := env.ErrorMessage()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		log.Warnf("Backend rejected request: %s", msg)
		return nil, &models.Failure{
			Kind:       models.ErrorKindRemoteRejected,
			Message:    msg,
			StatusCode: resp.StatusCode(),
		}
	}

	if failure := rejectedInBody(env); failure != nil {
		log.Warnf("Backend returned unsuccessful envelope: %s", failure.Message)
		return nil, failure
	}

	log.Debugf("Backend call completed in %s", resp.Time())
	return env, nil
}

// rejectedInBody catches 2xx responses carrying an explicit success=false
func rejectedInBody(env *Envelope) *models.Failure {
	if !env.Valid() {
		return nil
	}
	for _, p := range []string{"success", "data.success"} {
		flag := env.Get(p)
		if flag.Exists() && flag.IsBool() && !flag.Bool() {
			msg := env.ErrorMessage()
			if msg == "" {
				msg = "request was not successful"
			}
			return &models.Failure{
				Kind:       models.ErrorKindRemoteRejected,
				Message:    msg,
				StatusCode: env.StatusCode,
			}
		}
	}
	return nil
}

func transportFailure(err error) *models.Failure {
	msg := "network error, the server could not be reached"
	switch {
	case errors.Is(err, context.Canceled):
		msg = "request cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		msg = "request timed out"
	}
	return &models.Failure{
		Kind:    models.ErrorKindTransport,
		Message: fmt.Sprintf("%s: %v", msg, err),
		Err:     err,
	}
}
