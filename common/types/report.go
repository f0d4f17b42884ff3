package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

type ReportRecipientType string

const (
	ReportRecipientTypeSlack ReportRecipientType = "slack"
)

// WebhookTargetPrefix marks a recipient target as a comma separated list of relay urls.
const WebhookTargetPrefix = "webhook:"

// ReportRecipient is the destination of a report, as stored by the recipient store.
type ReportRecipient struct {
	Type ReportRecipientType `json:"type"`
	// raw recipient configuration, decodes into RecipientConfig
	ConfigJSON string `json:"config"`
}

type RecipientConfig struct {
	Target string `json:"target"`
}

func (r *ReportRecipient) Config() (RecipientConfig, error) {
	var cfg RecipientConfig
	if r == nil {
		return cfg, fmt.Errorf("recipient cannot be nil")
	}
	if err := json.Unmarshal([]byte(r.ConfigJSON), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode recipient config: %w", err)
	}
	return cfg, nil
}

func (c RecipientConfig) IsWebhook() bool {
	return strings.HasPrefix(c.Target, WebhookTargetPrefix)
}

// RelayURLs returns the relay endpoints of a webhook target, empty entries dropped.
func (c RecipientConfig) RelayURLs() []string {
	if !c.IsWebhook() {
		return nil
	}
	var urls []string
	for _, u := range strings.Split(c.Target[len(WebhookTargetPrefix):], ",") {
		if u == "" {
			continue
		}
		urls = append(urls, u)
	}
	return urls
}

type ReportScreenshot struct {
	URL   string `json:"url"`
	Image []byte `json:"image,omitempty"`
}

// ReportContent is the rendered artifact produced by the report executor.
type ReportContent struct {
	Name       string            `json:"name"`
	Text       string            `json:"text,omitempty"`
	Screenshot *ReportScreenshot `json:"screenshot,omitempty"`
}

func (c *ReportContent) HasText() bool {
	return c != nil && c.Text != ""
}

func (c *ReportContent) HasScreenshot() bool {
	return c != nil && c.Screenshot != nil
}

// InlineImage returns the screenshot bytes, nil when there is nothing to attach.
func (c *ReportContent) InlineImage() []byte {
	if !c.HasScreenshot() || len(c.Screenshot.Image) == 0 {
		return nil
	}
	return c.Screenshot.Image
}

const (
	RelayImageWidth  = 400
	RelayImageHeight = 400
	RelayTextSuffix  = "|Explore More in SuperSet"
)

// RelayPayload is the body posted to every webhook relay.
type RelayPayload struct {
	Text        string            `json:"text"`
	Attachments []RelayAttachment `json:"attachments"`
}

type RelayAttachment struct {
	Title string     `json:"title"`
	Views RelayViews `json:"views"`
}

type RelayViews struct {
	Image RelayImageView `json:"image"`
}

type RelayImageView struct {
	Original RelayImage `json:"original"`
}

type RelayImage struct {
	Src    string `json:"src"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func NewRelayPayload(screenshotURL, title, imageSrc string) RelayPayload {
	return RelayPayload{
		Text: screenshotURL + RelayTextSuffix,
		Attachments: []RelayAttachment{{
			Title: title,
			Views: RelayViews{
				Image: RelayImageView{
					Original: RelayImage{
						Src:    imageSrc,
						Width:  RelayImageWidth,
						Height: RelayImageHeight,
					},
				},
			},
		}},
	}
}

// RelayResult is the outcome of delivering one payload to one relay.
type RelayResult struct {
	URL       string
	Attempts  uint
	Delivered bool
	Err       error
}

// NotifyReportReq is the body of the report notify api.
type NotifyReportReq struct {
	Recipient ReportRecipient `json:"recipient"`
	Content   ReportContent   `json:"content"`
}
