package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
	"opencsg.com/report-notifier/cmd/report-notifier/cmd/launch"
	"opencsg.com/report-notifier/cmd/report-notifier/cmd/send"
	"opencsg.com/report-notifier/common/config"
	rnlog "opencsg.com/report-notifier/common/log"
)

var (
	logLevel   string
	logFormat  string
	logFile    string
	configFile string
)

var RootCmd = &cobra.Command{
	Use:          "report-notifier",
	Short:        "Deliver rendered dashboard reports to slack channels and webhook relays.",
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "set log level to debug, info, warn or error (case-insensitive). default is INFO")
	RootCmd.PersistentFlags().StringVarP(&logFormat, "log-format", "f", "json", "set log format to json or text. default is json")
	RootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also append logs to this file")
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "toml config file, environment variables take precedence")
	RootCmd.DisableAutoGenTag = true

	cobra.OnInitialize(func() {
		if err := setupLog(logLevel, logFormat, logFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		}
		config.SetConfigFile(configFile)
	})

	RootCmd.AddCommand(
		launch.Cmd,
		send.Cmd,
	)
}

func setupLog(lvl, format, file string) error {
	logLevel := slog.LevelInfo.Level()
	if len(lvl) > 0 {
		// logLevel not change if unmarshall failed
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Println("input invalid log level, use default log level INFO")
		}
	}
	opt := &slog.HandlerOptions{AddSource: false, Level: logLevel}

	handlers := []slog.Handler{newHandler(os.Stdout, format, opt)}
	var openErr error
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			openErr = err
		} else {
			handlers = append(handlers, newHandler(f, format, opt))
		}
	}

	fmt.Printf("init logger, level: %s, format: %s\n", logLevel.String(), format)
	slog.SetDefault(slog.New(&rnlog.ContextHandler{Handler: slogmulti.Fanout(handlers...)}))
	return openErr
}

func newHandler(w io.Writer, format string, opt *slog.HandlerOptions) slog.Handler {
	switch format {
	case "json":
		return slog.NewJSONHandler(w, opt)
	default:
		return slog.NewTextHandler(w, opt)
	}
}
