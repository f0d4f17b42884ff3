package webhook

import (
	"context"
	"log/slog"

	"opencsg.com/report-notifier/builder/prometheus"
	"opencsg.com/report-notifier/builder/store/s3"
	"opencsg.com/report-notifier/common/errorx"
	"opencsg.com/report-notifier/common/types"
	"opencsg.com/report-notifier/notification/notifychannel"
)

// RelayPoster posts a payload to one relay and reports how many attempts it took.
type RelayPoster interface {
	PostJSON(ctx context.Context, endpoint string, data any) (uint, error)
}

// WebhookChannel fans a screenshot out to webhook relays. Delivery is best effort:
// Send never fails, the outcome of every relay is logged instead.
type WebhookChannel struct {
	assets s3.AssetStore
	poster RelayPoster
}

func NewChannel(assets s3.AssetStore, poster RelayPoster) notifychannel.Notifier {
	return &WebhookChannel{
		assets: assets,
		poster: poster,
	}
}

var _ notifychannel.Notifier = (*WebhookChannel)(nil)

func (w *WebhookChannel) Send(ctx context.Context, req *notifychannel.NotifyRequest) error {
	results, err := w.Deliver(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to prepare webhook payload", slog.Any("error", err))
		return nil
	}
	if len(results) == 0 {
		slog.WarnContext(ctx, "webhook target has no relay url", slog.String("target", req.Config.Target))
	}
	for _, r := range results {
		prometheus.ObserveRelay(r.Delivered, r.Attempts)
		if r.Delivered {
			slog.InfoContext(ctx, "report sent to webhook relay", slog.String("relay", r.URL), slog.Uint64("attempts", uint64(r.Attempts)))
			continue
		}
		slog.ErrorContext(ctx, "report abandoned for webhook relay", slog.String("relay", r.URL),
			slog.Uint64("attempts", uint64(r.Attempts)), slog.Any("error", r.Err))
	}
	return nil
}

// Deliver publishes the screenshot and posts the payload to each relay in turn.
// An error means nothing was posted; relay failures are reported in the results.
func (w *WebhookChannel) Deliver(ctx context.Context, req *notifychannel.NotifyRequest) ([]types.RelayResult, error) {
	if err := req.Validate(); err != nil {
		return nil, errorx.InvalidRecipient(err, nil)
	}
	image := req.Content.InlineImage()
	if image == nil {
		return nil, errorx.MissingScreenshot(errorx.Ctx().Set("report", req.Content.Name))
	}

	src, err := w.assets.UploadAndPresign(ctx, image)
	if err != nil {
		return nil, errorx.AssetStorageFailed(err, errorx.Ctx().Set("report", req.Content.Name))
	}
	payload := types.NewRelayPayload(req.Content.Screenshot.URL, req.Content.Name, src)

	urls := req.Config.RelayURLs()
	results := make([]types.RelayResult, 0, len(urls))
	for _, u := range urls {
		attempts, err := w.poster.PostJSON(ctx, u, payload)
		r := types.RelayResult{URL: u, Attempts: attempts, Delivered: err == nil}
		if err != nil {
			r.Err = errorx.RelayDeliveryFailed(err, errorx.Ctx().Set("relay", u))
		}
		results = append(results, r)
	}
	return results, nil
}
