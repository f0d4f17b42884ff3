package factory

import (
	"fmt"
	"time"

	"opencsg.com/report-notifier/builder/rpc"
	"opencsg.com/report-notifier/builder/store/s3"
	"opencsg.com/report-notifier/common/config"
	"opencsg.com/report-notifier/notification/notifychannel/channel/slack"
	slackclient "opencsg.com/report-notifier/notification/notifychannel/channel/slack/client"
	"opencsg.com/report-notifier/notification/notifychannel/channel/webhook"
	"opencsg.com/report-notifier/notification/tmplmgr"
)

const (
	ChannelNameSlack   = "slack"
	ChannelNameWebhook = "webhook"
)

// Register channels
func registerChannels(config *config.Config, factory Factory) error {
	serviceBuilder, err := slackclient.NewServiceBuilder(config)
	if err != nil {
		return fmt.Errorf("failed to init slack client: %w", err)
	}
	slackChannel := slack.NewChannel(config.SlackToken(), serviceBuilder, tmplmgr.NewTemplateManager())
	factory.RegisterChannel(ChannelNameSlack, slackChannel)

	minioClient, err := s3.NewMinio(config)
	if err != nil {
		return err
	}
	var opts []rpc.RequestOption
	if config.Webhook.AuthToken != "" {
		opts = append(opts, rpc.AuthWithApiKey(config.Webhook.AuthToken))
	}
	if config.Webhook.UserAgent != "" {
		opts = append(opts, rpc.WithHeader("User-Agent", config.Webhook.UserAgent))
	}
	poster := rpc.NewHttpClient(time.Duration(config.Webhook.TimeoutSEC)*time.Second, opts...).
		WithRetry(config.Webhook.MaxAttempts)
	webhookChannel := webhook.NewChannel(s3.NewAssetStore(config, minioClient), poster)
	factory.RegisterChannel(ChannelNameWebhook, webhookChannel)

	return nil
}
