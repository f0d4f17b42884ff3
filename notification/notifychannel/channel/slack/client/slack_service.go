package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/slack-go/slack"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"opencsg.com/report-notifier/common/config"
)

const screenshotFilename = "screenshot.png"

// SlackService is the part of the Slack Web API a report is delivered through.
type SlackService interface {
	PostMessage(ctx context.Context, channelID, text string) error
	UploadFile(ctx context.Context, channelID string, file []byte, initialComment, title string) error
}

// ServiceBuilder creates a SlackService authenticated with token.
// Tokens may rotate between sends, so a service is built per send.
type ServiceBuilder func(token string) (SlackService, error)

type slackServiceImpl struct {
	api *slack.Client
}

func NewServiceBuilder(cfg *config.Config, options ...slack.Option) (ServiceBuilder, error) {
	hc, err := newHTTPClient(cfg.Slack.Proxy, time.Duration(cfg.Slack.TimeoutSEC)*time.Second)
	if err != nil {
		return nil, err
	}
	hc.Transport = otelhttp.NewTransport(hc.Transport)
	return func(token string) (SlackService, error) {
		if token == "" {
			return nil, fmt.Errorf("slack api token is empty")
		}
		opts := append([]slack.Option{slack.OptionHTTPClient(hc)}, options...)
		return &slackServiceImpl{api: slack.New(token, opts...)}, nil
	}, nil
}

func newHTTPClient(proxy string, timeout time.Duration) (*http.Client, error) {
	hc := &http.Client{Timeout: timeout}
	if proxy == "" {
		return hc, nil
	}
	proxyURL, err := url.Parse(proxy)
	if err != nil {
		return nil, fmt.Errorf("invalid slack proxy %q: %w", proxy, err)
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = http.ProxyURL(proxyURL)
	hc.Transport = transport
	return hc, nil
}

func (s *slackServiceImpl) PostMessage(ctx context.Context, channelID, text string) error {
	_, _, err := s.api.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
	return err
}

func (s *slackServiceImpl) UploadFile(ctx context.Context, channelID string, file []byte, initialComment, title string) error {
	_, err := s.api.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
		Channel:        channelID,
		Reader:         bytes.NewReader(file),
		FileSize:       len(file),
		Filename:       screenshotFilename,
		Title:          title,
		InitialComment: initialComment,
	})
	return err
}
