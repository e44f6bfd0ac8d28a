package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const skipWireAnnotation = "careerbot/skip-wire"

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	app := &app{}
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "careerbot",
		Short: "Career advice for high-school learners",
		Long: "careerbot is a conversational career advisor for Grade 10-12 learners. " +
			"It remembers your grade, career interest and activities as you chat, " +
			"and answers through a hosted language model or an offline keyword advisor.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			app.logger = logger

			if cmd.Annotations[skipWireAnnotation] != "" {
				return nil
			}
			return app.wire()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newChatCmd(app),
		newAdviseCmd(),
		newIndustriesCmd(app),
		newAccountCmd(app),
		newHistoryCmd(app),
		newServeCmd(app),
		newKeyCmd(app),
	)

	return rootCmd
}

// newLogger builds a production zap logger on stderr. Only warnings are shown
// unless verbose is set, so logs do not interleave with the conversation.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return logger, nil
}
