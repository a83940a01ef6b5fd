package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
)

type GatewayConfig struct {
	BaseURL      string
	EmailEnabled bool
	SMSEnabled   bool
	Rate         rate.Limit
	Burst        int
	Timeout      time.Duration
	RetryCount   int
}

type emailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type smsRequest struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

type gatewayResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// GatewayClient talks to the plant notification gateway, which relays email
// and SMS. Each recipient is throttled per channel.
type GatewayClient struct {
	httpClient *resty.Client
	cfg        GatewayConfig
	limiters   *RateLimiterStore
}

func NewGatewayClient(cfg GatewayConfig) *GatewayClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Rate <= 0 {
		cfg.Rate = rate.Every(time.Minute)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 3
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &GatewayClient{
		httpClient: client,
		cfg:        cfg,
		limiters:   NewRateLimiterStore(cfg.Rate, cfg.Burst),
	}
}

func (g *GatewayClient) EmailChannel() *EmailChannel { return &EmailChannel{g: g} }

func (g *GatewayClient) SMSChannel() *SMSChannel { return &SMSChannel{g: g} }

func (g *GatewayClient) post(ctx context.Context, channel, recipient, path string, body any) error {
	logger := common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryDispatch)

	if !g.limiters.Allow(channel, recipient) {
		return fmt.Errorf("%w: %s to %s", ErrRateLimited, channel, recipient)
	}

	var result gatewayResponse
	resp, err := g.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		SetError(&result).
		Post(path)
	if err != nil {
		return fmt.Errorf("failed to call notification gateway: %w", err)
	}

	if resp.IsError() {
		logger.Error("Notification gateway returned error",
			zap.String("channel", channel),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("msg", result.Message),
		)
		return fmt.Errorf("notification gateway error: %s (status: %d)", result.Message, resp.StatusCode())
	}

	logger.Info("Notification delivered", zap.String("channel", channel), zap.String("recipient", recipient))
	return nil
}

type EmailChannel struct {
	g *GatewayClient
}

func (c *EmailChannel) Available() bool {
	return c.g.cfg.BaseURL != "" && c.g.cfg.EmailEnabled
}

func (c *EmailChannel) SendEmail(ctx context.Context, to, subject, body string) error {
	if !c.Available() {
		return fmt.Errorf("%w: email", ErrChannelUnavailable)
	}
	return c.g.post(ctx, channelEmail, to, "/email", emailRequest{To: to, Subject: subject, Body: body})
}

type SMSChannel struct {
	g *GatewayClient
}

func (c *SMSChannel) Available() bool {
	return c.g.cfg.BaseURL != "" && c.g.cfg.SMSEnabled
}

func (c *SMSChannel) SendSMS(ctx context.Context, to, text string) error {
	if !c.Available() {
		return fmt.Errorf("%w: sms", ErrChannelUnavailable)
	}
	return c.g.post(ctx, channelSMS, to, "/sms", smsRequest{To: to, Text: text})
}
