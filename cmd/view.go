package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/checksyntax/internal/domain"
	m "gooze.dev/pkg/checksyntax/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously saved check report",
		Long:  "Render a report written by a previous run with --report.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			reportPath := m.Path(viper.GetString(reportConfigKey))
			if reportPath == "" {
				return errors.New("no report to view: pass --report or set " + reportConfigKey)
			}

			return workflow.View(context.Background(), domain.ViewArgs{Report: reportPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
