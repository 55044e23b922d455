package checker

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"imagecheck/internal/models"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "Mozilla/5.0"
)

// TrustPolicy decides which server certificates a Checker accepts.
// The zero value keeps Go's default verification.
type TrustPolicy struct {
	tls *tls.Config
}

// TrustEverything accepts any certificate for any host name. Use it to probe
// endpoints with self-signed or mismatched certificates.
func TrustEverything() TrustPolicy {
	return TrustPolicy{tls: &tls.Config{InsecureSkipVerify: true}}
}

// TLSConfig returns a copy of the policy's TLS settings, or nil for the defaults.
func (p TrustPolicy) TLSConfig() *tls.Config {
	if p.tls == nil {
		return nil
	}
	return p.tls.Clone()
}

// Options configures a Checker. Zero fields fall back to the defaults.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Trust     TrustPolicy
}

// Checker issues one GET per URL and records the status and content type.
// It implements pipeline.Stage.
type Checker struct {
	client *resty.Client
}

// New builds a Checker. The trust policy is applied to this client only.
func New(opts Options, logger *zap.Logger) *Checker {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	c := resty.New()
	c.SetTimeout(opts.Timeout)
	c.SetRetryCount(0)
	c.SetHeader("User-Agent", opts.UserAgent)
	c.SetLogger(logger.Sugar())
	if cfg := opts.Trust.TLSConfig(); cfg != nil {
		c.SetTLSClientConfig(cfg)
	}

	return &Checker{client: c}
}

// Check sends a single GET to url. Any response, whatever its status, is a
// success; every transport failure ends up in Result.Err.
func (c *Checker) Check(ctx context.Context, url string) models.Result {
	resp, err := c.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if resp != nil && resp.RawResponse != nil {
		// Only headers are needed.
		defer resp.RawBody().Close()
	}
	if err != nil {
		return models.Result{URL: url, Err: err}
	}

	res := models.Result{URL: url, StatusCode: resp.StatusCode()}
	if values, ok := resp.Header()["Content-Type"]; ok && len(values) > 0 {
		res.ContentType = values[0]
		res.HasContentType = true
	}
	return res
}

// Execute checks URLs from input strictly one after another and forwards each
// result before taking the next URL.
func (c *Checker) Execute(ctx context.Context, input <-chan interface{}, output chan<- interface{}, logger *zap.Logger) error {
	for item := range input {
		if err := ctx.Err(); err != nil {
			logger.Warn("checking interrupted", zap.Error(err))
			return err
		}

		url, ok := item.(string)
		if !ok {
			logger.Warn("invalid input type, expected string", zap.Any("type", item))
			continue
		}

		start := time.Now()
		res := c.Check(ctx, url)
		if res.Err != nil {
			logger.Debug("check failed",
				zap.String("url", url),
				zap.Duration("duration", time.Since(start)),
				zap.Error(res.Err))
		} else {
			logger.Debug("check completed",
				zap.String("url", url),
				zap.Int("status", res.StatusCode),
				zap.String("content_type", res.ContentType),
				zap.Duration("duration", time.Since(start)))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case output <- res:
		}
	}
	return nil
}
