package notifychannel

import (
	"context"
	"fmt"

	"opencsg.com/report-notifier/common/types"
)

type NotifyRequest struct {
	// target recipient
	Recipient *types.ReportRecipient
	// decoded recipient configuration
	Config types.RecipientConfig
	// rendered report to deliver
	Content *types.ReportContent
}

type Notifier interface {
	Send(ctx context.Context, req *NotifyRequest) error
}

func (r *NotifyRequest) Validate() error {
	if r == nil {
		return fmt.Errorf("notify request cannot be nil")
	}
	if r.Content == nil {
		return fmt.Errorf("report content cannot be nil")
	}
	if r.Config.Target == "" {
		return fmt.Errorf("recipient target cannot be empty")
	}
	return nil
}
