package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks3 "opencsg.com/report-notifier/_mocks/opencsg.com/report-notifier/builder/store/s3"
	"opencsg.com/report-notifier/builder/rpc"
	"opencsg.com/report-notifier/common/errorx"
	"opencsg.com/report-notifier/common/types"
	"opencsg.com/report-notifier/notification/notifychannel"
)

const presigned = "https://reports.s3.amazonaws.com/abc?X-Amz-Expires=3600"

func TestMain(m *testing.M) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	os.Exit(m.Run())
}

func newRequest(target string) *notifychannel.NotifyRequest {
	return &notifychannel.NotifyRequest{
		Recipient: &types.ReportRecipient{Type: types.ReportRecipientTypeSlack},
		Config:    types.RecipientConfig{Target: target},
		Content: &types.ReportContent{
			Name:       "Weekly sales",
			Screenshot: &types.ReportScreenshot{URL: "http://superset/r/7", Image: []byte("png-bytes")},
		},
	}
}

func newTestChannel(t *testing.T) (*WebhookChannel, *mocks3.MockAssetStore) {
	assets := mocks3.NewMockAssetStore(t)
	poster := rpc.NewHttpClient(time.Second).WithRetry(6)
	return NewChannel(assets, poster).(*WebhookChannel), assets
}

func recordPayloads(t *testing.T, url string, statuses ...int) *[]types.RelayPayload {
	var payloads []types.RelayPayload
	i := 0
	httpmock.RegisterResponder("POST", url, func(req *http.Request) (*http.Response, error) {
		raw, err := io.ReadAll(req.Body)
		assert.NoError(t, err)
		var p types.RelayPayload
		assert.NoError(t, json.Unmarshal(raw, &p))
		payloads = append(payloads, p)
		status := statuses[len(statuses)-1]
		if i < len(statuses) {
			status = statuses[i]
		}
		i++
		return httpmock.NewStringResponse(status, ""), nil
	})
	return &payloads
}

func TestWebhookChannel_Deliver_TwoRelays(t *testing.T) {
	httpmock.Reset()
	ch, assets := newTestChannel(t)
	assets.EXPECT().UploadAndPresign(mock.Anything, []byte("png-bytes")).Return(presigned, nil).Once()

	a := recordPayloads(t, "https://x/a", 200)
	b := recordPayloads(t, "https://x/b", 200)

	results, err := ch.Deliver(context.Background(), newRequest("webhook:https://x/a,https://x/b"))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, types.RelayResult{URL: "https://x/a", Attempts: 1, Delivered: true}, results[0])
	assert.Equal(t, types.RelayResult{URL: "https://x/b", Attempts: 1, Delivered: true}, results[1])

	require.Len(t, *a, 1)
	require.Len(t, *b, 1)
	assert.Equal(t, (*a)[0], (*b)[0])

	p := (*a)[0]
	assert.Equal(t, "http://superset/r/7|Explore More in SuperSet", p.Text)
	require.Len(t, p.Attachments, 1)
	assert.Equal(t, "Weekly sales", p.Attachments[0].Title)
	assert.Equal(t, presigned, p.Attachments[0].Views.Image.Original.Src)
	assert.Equal(t, 400, p.Attachments[0].Views.Image.Original.Width)
	assert.Equal(t, 400, p.Attachments[0].Views.Image.Original.Height)
}

func TestWebhookChannel_Deliver_RetryThenDelivered(t *testing.T) {
	httpmock.Reset()
	ch, assets := newTestChannel(t)
	assets.EXPECT().UploadAndPresign(mock.Anything, mock.Anything).Return(presigned, nil)

	payloads := recordPayloads(t, "https://x/flaky", 500, 500, 502, 404, 500, 200)

	results, err := ch.Deliver(context.Background(), newRequest("webhook:https://x/flaky"))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Delivered)
	assert.Equal(t, uint(6), results[0].Attempts)
	assert.Len(t, *payloads, 6)
}

func TestWebhookChannel_Deliver_Abandoned(t *testing.T) {
	httpmock.Reset()
	ch, assets := newTestChannel(t)
	assets.EXPECT().UploadAndPresign(mock.Anything, mock.Anything).Return(presigned, nil)

	down := recordPayloads(t, "https://x/down", 500)
	up := recordPayloads(t, "https://x/up", 200)

	results, err := ch.Deliver(context.Background(), newRequest("webhook:https://x/down,https://x/up"))
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.False(t, results[0].Delivered)
	assert.Equal(t, uint(6), results[0].Attempts)
	assert.True(t, errors.Is(results[0].Err, errorx.ErrRelayDeliveryFailed))
	assert.Len(t, *down, 6)

	assert.True(t, results[1].Delivered)
	assert.Len(t, *up, 1)
}

func TestWebhookChannel_Deliver_TransportErrorNotRetried(t *testing.T) {
	httpmock.Reset()
	ch, assets := newTestChannel(t)
	assets.EXPECT().UploadAndPresign(mock.Anything, mock.Anything).Return(presigned, nil)
	httpmock.RegisterResponder("POST", "https://x/dead", httpmock.NewErrorResponder(errors.New("connection refused")))
	up := recordPayloads(t, "https://x/up", 200)

	results, err := ch.Deliver(context.Background(), newRequest("webhook:https://x/dead,https://x/up"))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].Delivered)
	assert.Equal(t, uint(1), results[0].Attempts)
	assert.True(t, errors.Is(results[0].Err, errorx.ErrRelayDeliveryFailed))
	assert.True(t, results[1].Delivered)
	assert.Len(t, *up, 1)
}

func TestWebhookChannel_Send_NeverFails(t *testing.T) {
	t.Run("relays down", func(t *testing.T) {
		httpmock.Reset()
		ch, assets := newTestChannel(t)
		assets.EXPECT().UploadAndPresign(mock.Anything, mock.Anything).Return(presigned, nil)
		httpmock.RegisterResponder("POST", "https://x/a", httpmock.NewStringResponder(500, ""))
		httpmock.RegisterResponder("POST", "https://x/b", httpmock.NewErrorResponder(errors.New("connection refused")))

		err := ch.Send(context.Background(), newRequest("webhook:https://x/a,https://x/b"))
		assert.NoError(t, err)
		assert.Equal(t, 7, httpmock.GetTotalCallCount())
		info := httpmock.GetCallCountInfo()
		assert.Equal(t, 6, info["POST https://x/a"])
		assert.Equal(t, 1, info["POST https://x/b"])
	})

	t.Run("upload failed", func(t *testing.T) {
		httpmock.Reset()
		ch, assets := newTestChannel(t)
		assets.EXPECT().UploadAndPresign(mock.Anything, mock.Anything).Return("", errors.New("access denied"))

		err := ch.Send(context.Background(), newRequest("webhook:https://x/a"))
		assert.NoError(t, err)
		assert.Equal(t, 0, httpmock.GetTotalCallCount())

		_, err = ch.Deliver(context.Background(), newRequest("webhook:https://x/a"))
		assert.True(t, errors.Is(err, errorx.ErrAssetStorageFailed))
	})

	t.Run("missing screenshot", func(t *testing.T) {
		httpmock.Reset()
		ch, _ := newTestChannel(t)
		req := newRequest("webhook:https://x/a")
		req.Content.Screenshot = nil

		err := ch.Send(context.Background(), req)
		assert.NoError(t, err)

		_, err = ch.Deliver(context.Background(), req)
		assert.True(t, errors.Is(err, errorx.ErrMissingScreenshot))
		assert.Equal(t, 0, httpmock.GetTotalCallCount())
	})

	t.Run("no relay url", func(t *testing.T) {
		httpmock.Reset()
		ch, assets := newTestChannel(t)
		assets.EXPECT().UploadAndPresign(mock.Anything, mock.Anything).Return(presigned, nil)

		results, err := ch.Deliver(context.Background(), newRequest("webhook:"))
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
