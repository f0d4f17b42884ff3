package launch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"opencsg.com/report-notifier/api/httpbase"
	"opencsg.com/report-notifier/builder/instrumentation"
	"opencsg.com/report-notifier/builder/prometheus"
	"opencsg.com/report-notifier/common/config"
	"opencsg.com/report-notifier/notification/router"
)

var Cmd = &cobra.Command{
	Use:     "launch",
	Short:   "Launch report notifier http server",
	Example: serverExample(),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		stopOtel, err := instrumentation.SetupOTelSDK(ctx, cfg, instrumentation.ServiceName)
		if err != nil {
			return fmt.Errorf("failed to setup otel sdk: %w", err)
		}
		defer func() {
			if err := stopOtel(context.Background()); err != nil {
				slog.Error("failed to stop otel sdk", slog.Any("error", err))
			}
		}()
		prometheus.InitMetrics()

		r, err := router.NewNotifierRouter(cfg)
		if err != nil {
			return fmt.Errorf("failed to init router: %w", err)
		}

		slog.Info("http server is running", slog.Int("port", cfg.Notifier.Port))
		server := httpbase.NewGracefulServer(
			httpbase.GraceServerOpt{
				Port: cfg.Notifier.Port,
			},
			r,
		)
		return server.Run(ctx)
	},
}

func serverExample() string {
	return `
# for development
report-notifier launch --config ./config.toml
`
}
