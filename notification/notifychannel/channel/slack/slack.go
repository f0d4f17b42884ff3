package slack

import (
	"context"
	"fmt"
	"log/slog"

	"opencsg.com/report-notifier/common/config"
	"opencsg.com/report-notifier/common/errorx"
	"opencsg.com/report-notifier/common/types"
	"opencsg.com/report-notifier/notification/notifychannel"
	"opencsg.com/report-notifier/notification/notifychannel/channel/slack/client"
	"opencsg.com/report-notifier/notification/tmplmgr"
	"opencsg.com/report-notifier/notification/utils"
)

const (
	uploadTitle              = "subject"
	missingScreenshotMessage = "Unexpected missing screenshot"
)

type SlackChannel struct {
	token      config.Value[string]
	newService client.ServiceBuilder
	tmpl       *tmplmgr.TemplateManager
}

func NewChannel(token config.Value[string], newService client.ServiceBuilder, tmpl *tmplmgr.TemplateManager) notifychannel.Notifier {
	return &SlackChannel{
		token:      token,
		newService: newService,
		tmpl:       tmpl,
	}
}

var _ notifychannel.Notifier = (*SlackChannel)(nil)

type errorBody struct {
	Name string
	Text string
}

type exploreBody struct {
	Name string
	URL  string
}

// Body renders the message text of a report.
func (s *SlackChannel) Body(content *types.ReportContent) (string, error) {
	if content.HasText() {
		return s.tmpl.Format(tmplmgr.SlackChannel, tmplmgr.SlackErrorTemplate, errorBody{Name: content.Name, Text: content.Text})
	}
	if content.HasScreenshot() {
		return s.tmpl.Format(tmplmgr.SlackChannel, tmplmgr.SlackExploreTemplate, exploreBody{Name: content.Name, URL: content.Screenshot.URL})
	}
	return s.tmpl.Format(tmplmgr.SlackChannel, tmplmgr.SlackErrorTemplate, errorBody{Name: content.Name, Text: missingScreenshotMessage})
}

// Send posts the report to the target channel, uploading the screenshot when there is one.
// Every failure is returned as a *utils.NotificationError.
func (s *SlackChannel) Send(ctx context.Context, req *notifychannel.NotifyRequest) error {
	if err := req.Validate(); err != nil {
		return utils.NewNotificationError(errorx.InvalidRecipient(err, nil), "invalid notify request")
	}

	channelID := req.Config.Target
	errCtx := errorx.Ctx().Set("channel", channelID)

	body, err := s.Body(req.Content)
	if err != nil {
		return utils.NewNotificationError(err, "failed to render slack message")
	}

	token, err := s.token.Resolve(ctx)
	if err != nil {
		return utils.NewNotificationError(err, "failed to resolve slack api token")
	}
	svc, err := s.newService(token)
	if err != nil {
		return utils.NewNotificationError(err, "failed to create slack client")
	}

	if file := req.Content.InlineImage(); file != nil {
		err = svc.UploadFile(ctx, channelID, file, body, uploadTitle)
	} else {
		err = svc.PostMessage(ctx, channelID, body)
	}
	if err != nil {
		return utils.NewNotificationError(errorx.ChatDeliveryFailed(err, errCtx), fmt.Sprintf("failed to send report to slack channel %s", channelID))
	}

	slog.InfoContext(ctx, "report sent to slack", slog.String("channel", channelID), slog.String("report", req.Content.Name))
	return nil
}
