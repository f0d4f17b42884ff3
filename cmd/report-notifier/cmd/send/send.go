package send

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"opencsg.com/report-notifier/common/config"
	"opencsg.com/report-notifier/common/types"
	"opencsg.com/report-notifier/notification/component"
)

type sendOptions struct {
	recipientType string
	target        string
	name          string
	text          string
	screenshotURL string
	imageFile     string
}

var opts sendOptions

func init() {
	Cmd.Flags().StringVar(&opts.recipientType, "type", string(types.ReportRecipientTypeSlack), "recipient type")
	Cmd.Flags().StringVar(&opts.target, "target", "", `slack channel, or "webhook:" followed by comma separated relay urls`)
	Cmd.Flags().StringVar(&opts.name, "name", "", "report name")
	Cmd.Flags().StringVar(&opts.text, "text", "", "error text, takes precedence over the screenshot in slack")
	Cmd.Flags().StringVar(&opts.screenshotURL, "screenshot-url", "", "link to the rendered dashboard")
	Cmd.Flags().StringVar(&opts.imageFile, "image", "", "png file attached to the report")
	_ = Cmd.MarkFlagRequired("target")
	_ = Cmd.MarkFlagRequired("name")
}

var Cmd = &cobra.Command{
	Use:     "send",
	Short:   "Send one report and exit",
	Example: sendExample(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		recipient, content, err := opts.build()
		if err != nil {
			return err
		}
		notifier, err := component.NewReportNotifierComponent(cfg)
		if err != nil {
			return err
		}
		if err := notifier.Send(cmd.Context(), recipient, content); err != nil {
			return err
		}
		slog.Info("report sent", slog.String("target", opts.target), slog.String("name", opts.name))
		return nil
	},
}

func (o sendOptions) build() (*types.ReportRecipient, *types.ReportContent, error) {
	raw, err := json.Marshal(types.RecipientConfig{Target: o.target})
	if err != nil {
		return nil, nil, err
	}
	recipient := &types.ReportRecipient{
		Type:       types.ReportRecipientType(o.recipientType),
		ConfigJSON: string(raw),
	}
	content := &types.ReportContent{
		Name: o.name,
		Text: o.text,
	}
	if o.screenshotURL != "" || o.imageFile != "" {
		content.Screenshot = &types.ReportScreenshot{URL: o.screenshotURL}
	}
	if o.imageFile != "" {
		image, err := os.ReadFile(o.imageFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read image: %w", err)
		}
		content.Screenshot.Image = image
	}
	return recipient, content, nil
}

func sendExample() string {
	return `
# post an error to a slack channel
report-notifier send --target C0123456 --name "Daily KPI" --text "query timed out"

# attach a screenshot and fan out to two relays
report-notifier send --target "webhook:https://relay-a/hook,https://relay-b/hook" \
  --name "Daily KPI" --screenshot-url https://superset/r/7 --image ./kpi.png
`
}
