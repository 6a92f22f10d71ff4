// Package cmd provides the root command and CLI setup for checksyntax.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/checksyntax/internal/adapter"
	"gooze.dev/pkg/checksyntax/internal/controller"
	"gooze.dev/pkg/checksyntax/internal/domain"
	m "gooze.dev/pkg/checksyntax/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

var reportFlag string
var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout) && !viper.GetBool(plainConfigKey))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		domain.NewBalanceChecker(),
		domain.NewSignatureExtractor(),
	)
}

const rootLongDescription = `checksyntax is a fast pre-compile gate for C source trees. It walks the
tree (default: the directory the binary is deployed in), flags unbalanced
brackets, braces and parentheses and #include of .c files, and lists the
function signatures it recognises.

Directories named .git, build and __pycache__ are skipped, as are files whose
name starts with "` + domain.SelfPrefix + `" or "` + domain.LegacySelfPrefix + `". The exit status is 0 when no errors were found.`

// rootCmd represents the base command; running it performs the check.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "checksyntax [root]",
		Short:        "Heuristic bracket balance and function inventory check for C trees",
		Long:         rootLongDescription,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configErr != nil {
				return configErr
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}

			report, err := workflow.Check(context.Background(), domain.CheckArgs{
				Root:   root,
				Report: m.Path(viper.GetString(reportConfigKey)),
			})
			if err != nil {
				return err
			}

			if !report.Passed() {
				return fmt.Errorf("%w: %d error(s)", domain.ErrCheckFailed, len(report.Errors))
			}

			return nil
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&reportFlag, reportFlagName, "r", defaultReportPath, "write the run report as YAML to this file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// resolveRoot picks the positional argument, then check.root, then the
// executable's directory.
func resolveRoot(args []string) (m.Path, error) {
	if len(args) > 0 && args[0] != "" {
		return m.Path(args[0]), nil
	}

	if root := viper.GetString(rootConfigKey); root != "" {
		return m.Path(root), nil
	}

	root, err := fsAdapter.ExecutableDir()
	if err != nil {
		return "", fmt.Errorf("resolve default root: %w", err)
	}

	return root, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
