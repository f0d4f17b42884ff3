package router

import (
	"log/slog"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"opencsg.com/report-notifier/api/middleware"
	"opencsg.com/report-notifier/builder/instrumentation"
	"opencsg.com/report-notifier/common/config"
	"opencsg.com/report-notifier/notification/handler"
)

func NewNotifierRouter(conf *config.Config) (*gin.Engine, error) {
	reportHandler, err := handler.NewReportHandler(conf)
	if err != nil {
		slog.Error("failed to create report handler", "error", err)
		return nil, err
	}
	return NewNotifierRouterWithHandler(conf, reportHandler), nil
}

func NewNotifierRouterWithHandler(conf *config.Config, reportHandler *handler.ReportHandler) *gin.Engine {
	r := gin.New()
	instrumentation.SetupOtelMiddleware(r, conf, instrumentation.ServiceName)
	r.Use(middleware.Request())
	r.Use(middleware.Recovery())
	r.Use(middleware.Log())

	r.GET("/healthz", handler.NewHealthHandler().Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	needAPIKey := middleware.NeedAPIKey(conf)
	debugGroup := r.Group("/debug", needAPIKey)
	pprof.RouteRegister(debugGroup, "pprof")

	reportsGroup := r.Group("/api/v1/reports", needAPIKey)
	{
		reportsGroup.POST("/notify", reportHandler.Notify)
	}
	return r
}
