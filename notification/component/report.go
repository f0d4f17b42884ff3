package component

import (
	"context"
	"fmt"
	"log/slog"

	"opencsg.com/report-notifier/builder/prometheus"
	"opencsg.com/report-notifier/common/config"
	"opencsg.com/report-notifier/common/errorx"
	"opencsg.com/report-notifier/common/types"
	"opencsg.com/report-notifier/notification/notifychannel"
	notifychannelfactory "opencsg.com/report-notifier/notification/notifychannel/factory"
	"opencsg.com/report-notifier/notification/utils"
)

type ReportNotifierComponent interface {
	// Send delivers a rendered report to one recipient.
	//
	// Targets prefixed with "webhook:" go to the webhook relays and never fail;
	// any other target is a slack channel and failures come back as *utils.NotificationError.
	Send(ctx context.Context, recipient *types.ReportRecipient, content *types.ReportContent) error
}

type reportNotifierComponentImpl struct {
	channels notifychannelfactory.Factory
}

var _ ReportNotifierComponent = (*reportNotifierComponentImpl)(nil)

func NewReportNotifierComponent(conf *config.Config) (ReportNotifierComponent, error) {
	channels, err := notifychannelfactory.NewFactory(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to init notify channels: %w", err)
	}
	return NewReportNotifierComponentWithFactory(channels), nil
}

func NewReportNotifierComponentWithFactory(channels notifychannelfactory.Factory) ReportNotifierComponent {
	return &reportNotifierComponentImpl{
		channels: channels,
	}
}

func (c *reportNotifierComponentImpl) Send(ctx context.Context, recipient *types.ReportRecipient, content *types.ReportContent) error {
	if recipient == nil {
		return utils.NewNotificationError(errorx.InvalidRecipient(nil, nil), "recipient cannot be nil")
	}
	cfg, err := recipient.Config()
	if err != nil {
		return utils.NewNotificationError(errorx.InvalidRecipient(err, nil), "invalid recipient config")
	}

	req := &notifychannel.NotifyRequest{
		Recipient: recipient,
		Config:    cfg,
		Content:   content,
	}
	if cfg.IsWebhook() {
		c.sendToWebhook(ctx, req)
		return nil
	}
	if recipient.Type != "" && recipient.Type != types.ReportRecipientTypeSlack {
		return utils.NewNotificationError(
			errorx.InvalidRecipient(nil, errorx.Ctx().Set("type", recipient.Type)),
			fmt.Sprintf("unsupported recipient type %s", recipient.Type),
		)
	}
	return c.sendToSlack(ctx, req)
}

func (c *reportNotifierComponentImpl) sendToWebhook(ctx context.Context, req *notifychannel.NotifyRequest) {
	channel, err := c.channels.GetChannel(notifychannelfactory.ChannelNameWebhook)
	if err != nil {
		slog.ErrorContext(ctx, "webhook channel unavailable", slog.Any("error", err))
		prometheus.ObserveSend(prometheus.PathWebhook, prometheus.ResultFailure)
		return
	}
	if err := channel.Send(ctx, req); err != nil {
		slog.ErrorContext(ctx, "failed to send report to webhook", slog.Any("error", err))
		prometheus.ObserveSend(prometheus.PathWebhook, prometheus.ResultFailure)
		return
	}
	prometheus.ObserveSend(prometheus.PathWebhook, prometheus.ResultSuccess)
}

func (c *reportNotifierComponentImpl) sendToSlack(ctx context.Context, req *notifychannel.NotifyRequest) error {
	channel, err := c.channels.GetChannel(notifychannelfactory.ChannelNameSlack)
	if err != nil {
		prometheus.ObserveSend(prometheus.PathSlack, prometheus.ResultFailure)
		return utils.NewNotificationError(err, "slack channel unavailable")
	}
	if err := channel.Send(ctx, req); err != nil {
		slog.ErrorContext(ctx, "failed to send report to slack", slog.String("channel", req.Config.Target), slog.Any("error", err))
		prometheus.ObserveSend(prometheus.PathSlack, prometheus.ResultFailure)
		if utils.IsNotificationError(err) {
			return err
		}
		return utils.NewNotificationError(err, "failed to send report to slack")
	}
	prometheus.ObserveSend(prometheus.PathSlack, prometheus.ResultSuccess)
	return nil
}
