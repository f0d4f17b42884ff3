package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mockclient "opencsg.com/report-notifier/_mocks/opencsg.com/report-notifier/notification/notifychannel/channel/slack/client"
	"opencsg.com/report-notifier/common/config"
	"opencsg.com/report-notifier/common/errorx"
	"opencsg.com/report-notifier/common/types"
	"opencsg.com/report-notifier/notification/notifychannel"
	"opencsg.com/report-notifier/notification/notifychannel/channel/slack/client"
	"opencsg.com/report-notifier/notification/tmplmgr"
	"opencsg.com/report-notifier/notification/utils"
)

func newTestChannel(t *testing.T, svc client.SlackService) (notifychannel.Notifier, *[]string) {
	var tokens []string
	builder := func(token string) (client.SlackService, error) {
		tokens = append(tokens, token)
		return svc, nil
	}
	return NewChannel(config.Static[string]{V: "xoxb-test"}, builder, tmplmgr.NewTemplateManager()), &tokens
}

func newRequest(target string, content *types.ReportContent) *notifychannel.NotifyRequest {
	return &notifychannel.NotifyRequest{
		Recipient: &types.ReportRecipient{Type: types.ReportRecipientTypeSlack},
		Config:    types.RecipientConfig{Target: target},
		Content:   content,
	}
}

func TestSlackChannel_Body(t *testing.T) {
	ch := &SlackChannel{tmpl: tmplmgr.NewTemplateManager()}

	cases := []struct {
		name     string
		content  *types.ReportContent
		expected string
	}{
		{
			name:     "text wins over screenshot",
			content:  &types.ReportContent{Name: "Daily KPI", Text: "boom", Screenshot: &types.ReportScreenshot{URL: "http://s/1"}},
			expected: "*Daily KPI*\n\nError: boom\n",
		},
		{
			name:     "screenshot only",
			content:  &types.ReportContent{Name: "Daily KPI", Screenshot: &types.ReportScreenshot{URL: "http://s/1"}},
			expected: "*Daily KPI*\n\n<http://s/1|Explore in Superset>\n",
		},
		{
			name:     "neither",
			content:  &types.ReportContent{Name: "Daily KPI"},
			expected: "*Daily KPI*\n\nError: Unexpected missing screenshot\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			body, err := ch.Body(c.content)
			require.NoError(t, err)
			assert.Equal(t, c.expected, body)
		})
	}
}

func TestSlackChannel_Send_PostMessage(t *testing.T) {
	svc := mockclient.NewMockSlackService(t)
	ch, tokens := newTestChannel(t, svc)

	svc.EXPECT().PostMessage(mock.Anything, "C123", "*Daily KPI*\n\nError: boom\n").Return(nil)

	err := ch.Send(context.Background(), newRequest("C123", &types.ReportContent{Name: "Daily KPI", Text: "boom"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"xoxb-test"}, *tokens)
	svc.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSlackChannel_Send_UploadFile(t *testing.T) {
	svc := mockclient.NewMockSlackService(t)
	ch, _ := newTestChannel(t, svc)

	img := []byte("\x89PNG\r\n\x1a\n")
	svc.EXPECT().UploadFile(mock.Anything, "C123", img, "*Daily KPI*\n\n<http://s/1|Explore in Superset>\n", "subject").Return(nil)

	err := ch.Send(context.Background(), newRequest("C123", &types.ReportContent{
		Name:       "Daily KPI",
		Screenshot: &types.ReportScreenshot{URL: "http://s/1", Image: img},
	}))
	require.NoError(t, err)
	svc.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestSlackChannel_Send_ScreenshotWithoutBytes(t *testing.T) {
	svc := mockclient.NewMockSlackService(t)
	ch, _ := newTestChannel(t, svc)

	svc.EXPECT().PostMessage(mock.Anything, "C123", "*Daily KPI*\n\n<http://s/1|Explore in Superset>\n").Return(nil)

	err := ch.Send(context.Background(), newRequest("C123", &types.ReportContent{
		Name:       "Daily KPI",
		Screenshot: &types.ReportScreenshot{URL: "http://s/1"},
	}))
	require.NoError(t, err)
}

func TestSlackChannel_Send_ClientError(t *testing.T) {
	svc := mockclient.NewMockSlackService(t)
	ch, _ := newTestChannel(t, svc)

	svc.EXPECT().PostMessage(mock.Anything, "C123", mock.Anything).Return(errors.New("channel_not_found"))

	err := ch.Send(context.Background(), newRequest("C123", &types.ReportContent{Name: "Daily KPI", Text: "boom"}))
	require.Error(t, err)
	assert.True(t, utils.IsNotificationError(err))
	assert.True(t, errors.Is(err, errorx.ErrChatDeliveryFailed))
	assert.Contains(t, err.Error(), "channel_not_found")
}

func TestSlackChannel_Send_UploadError(t *testing.T) {
	svc := mockclient.NewMockSlackService(t)
	ch, _ := newTestChannel(t, svc)

	svc.EXPECT().UploadFile(mock.Anything, "C123", mock.Anything, mock.Anything, "subject").Return(errors.New("not_in_channel"))

	err := ch.Send(context.Background(), newRequest("C123", &types.ReportContent{
		Name:       "Daily KPI",
		Screenshot: &types.ReportScreenshot{URL: "http://s/1", Image: []byte{1}},
	}))
	require.Error(t, err)
	assert.True(t, utils.IsNotificationError(err))
	assert.Contains(t, err.Error(), "not_in_channel")
}

func TestSlackChannel_Send_TokenProvider(t *testing.T) {
	svc := mockclient.NewMockSlackService(t)
	var tokens []string
	calls := 0
	provider := config.Provider[string](func(ctx context.Context) (string, error) {
		calls++
		if calls == 2 {
			return "", errors.New("vault sealed")
		}
		return "xoxb-rotated", nil
	})
	builder := func(token string) (client.SlackService, error) {
		tokens = append(tokens, token)
		return svc, nil
	}
	ch := NewChannel(provider, builder, tmplmgr.NewTemplateManager())
	req := newRequest("C123", &types.ReportContent{Name: "r", Text: "t"})

	svc.EXPECT().PostMessage(mock.Anything, "C123", mock.Anything).Return(nil).Once()
	require.NoError(t, ch.Send(context.Background(), req))
	assert.Equal(t, []string{"xoxb-rotated"}, tokens)

	err := ch.Send(context.Background(), req)
	require.Error(t, err)
	assert.True(t, utils.IsNotificationError(err))
	assert.Contains(t, err.Error(), "vault sealed")
}

func TestSlackChannel_Send_BuilderError(t *testing.T) {
	builder := func(token string) (client.SlackService, error) {
		return nil, errors.New("slack api token is empty")
	}
	ch := NewChannel(config.Static[string]{}, builder, tmplmgr.NewTemplateManager())

	err := ch.Send(context.Background(), newRequest("C123", &types.ReportContent{Name: "r"}))
	require.Error(t, err)
	assert.True(t, utils.IsNotificationError(err))
}

func TestSlackChannel_Send_InvalidRequest(t *testing.T) {
	svc := mockclient.NewMockSlackService(t)
	ch, tokens := newTestChannel(t, svc)

	err := ch.Send(context.Background(), newRequest("", &types.ReportContent{Name: "r"}))
	require.Error(t, err)
	assert.True(t, utils.IsNotificationError(err))
	assert.True(t, errors.Is(err, errorx.ErrInvalidRecipient))
	assert.Empty(t, *tokens)
}
