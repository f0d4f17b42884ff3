package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"opencsg.com/report-notifier/api/httpbase"
	"opencsg.com/report-notifier/common/config"
	"opencsg.com/report-notifier/common/errorx"
	"opencsg.com/report-notifier/common/types"
	"opencsg.com/report-notifier/notification/component"
	"opencsg.com/report-notifier/notification/utils"
)

type ReportHandler struct {
	notifier component.ReportNotifierComponent
}

func NewReportHandler(conf *config.Config) (*ReportHandler, error) {
	notifier, err := component.NewReportNotifierComponent(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create report notifier: %w", err)
	}
	return NewReportHandlerWithComponent(notifier), nil
}

func NewReportHandlerWithComponent(notifier component.ReportNotifierComponent) *ReportHandler {
	return &ReportHandler{notifier: notifier}
}

// Notify godoc
// @Summary      Deliver a rendered report to one recipient
// @Tags         Report
// @Accept       json
// @Produce      json
// @Param        body body types.NotifyReportReq true "recipient and report content"
// @Success      200  {object}  httpbase.R
// @Failure      400  {object}  httpbase.R "Bad request"
// @Failure      502  {object}  httpbase.R "Slack rejected the message"
// @Router       /api/v1/reports/notify [post]
func (h *ReportHandler) Notify(ctx *gin.Context) {
	var req types.NotifyReportReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		slog.ErrorContext(ctx.Request.Context(), "failed to bind notify report request", slog.Any("error", err))
		httpbase.BadRequest(ctx, err.Error())
		return
	}

	err := h.notifier.Send(ctx.Request.Context(), &req.Recipient, &req.Content)
	if err != nil {
		switch {
		case errors.Is(err, errorx.ErrInvalidRecipient):
			httpbase.Error(ctx, http.StatusBadRequest, err)
		case utils.IsNotificationError(err):
			httpbase.BadGateway(ctx, err)
		default:
			httpbase.ServerError(ctx, err)
		}
		return
	}
	httpbase.OK(ctx, nil)
}
