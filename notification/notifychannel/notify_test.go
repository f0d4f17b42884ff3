package notifychannel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"opencsg.com/report-notifier/common/types"
)

func TestNotifyRequest_Validate(t *testing.T) {
	var nilReq *NotifyRequest
	assert.Error(t, nilReq.Validate())

	req := &NotifyRequest{Config: types.RecipientConfig{Target: "C123"}}
	assert.ErrorContains(t, req.Validate(), "report content cannot be nil")

	req = &NotifyRequest{Content: &types.ReportContent{Name: "r"}}
	assert.ErrorContains(t, req.Validate(), "recipient target cannot be empty")

	req.Config.Target = "C123"
	assert.NoError(t, req.Validate())
}
