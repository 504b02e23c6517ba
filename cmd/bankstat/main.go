package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yurifrl/bankstat/pkg/config"
	"github.com/yurifrl/bankstat/pkg/service"
)

const usage = "Usage: bankstat <path-to-csv>"

var errUsage = errors.New("missing input file")

func newRootCmd(stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "bankstat <path-to-csv>",
		Short: "Categorize bank transactions and summarize them by category and month",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}

			logger := log.NewWithOptions(stderr, log.Options{
				ReportTimestamp: true,
				Prefix:          "bankstat",
				Level:           cfg.LogLevel(),
			})
			logger.Debug("loaded config", "file", cfg.File(), "config", cfg.String())

			processor := service.NewProcessor(cfg, logger, cmd.OutOrStdout())
			_, err = processor.Run(args[0])
			return err
		},
	}
}

func execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	rootCmd := newRootCmd(stderr)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, usage)
		} else {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
