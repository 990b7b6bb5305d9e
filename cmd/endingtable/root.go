package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/endingtable-go/pkg/endingtable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// configName is the config file looked up in the working directory.
const configName = "endingtable"

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "endingtable [input.xlsx] [output.json]",
		Short: "Convert the ending table spreadsheet to JSON",
		Long: `endingtable reads the narrative ending table (xlsx or csv) and writes
the endings JSON document loaded by the game at runtime.

Rows with invalid numbers are skipped with a warning; a missing required
column aborts the run without writing anything.`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
	}

	flags := rootCmd.Flags()
	flags.String("config", "", "config file (default: ./endingtable.yaml if present)")
	flags.StringP("input", "i", endingtable.DefaultInput, "input spreadsheet (xlsx or csv)")
	flags.StringP("output", "o", endingtable.DefaultOutput, "output JSON file")
	flags.String("sheet", "", "sheet to read (default: first sheet)")
	flags.Bool("dry-run", false, "validate the input without writing output")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	return rootCmd
}

// loadConfig binds flags to viper and reads the optional config file.
// Flags set on the command line take precedence over the file.
func loadConfig(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	return nil
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))
	defer func() { _ = logger.Sync() }()

	inputPath := v.GetString("input")
	outputPath := v.GetString("output")
	if len(args) > 0 {
		inputPath = args[0]
	}
	if len(args) > 1 {
		outputPath = args[1]
	}

	opts := endingtable.DefaultOptions()
	opts.Sheet = v.GetString("sheet")
	opts.DryRun = v.GetBool("dry-run")
	opts.Logger = logger

	report, err := endingtable.Convert(inputPath, outputPath, opts)
	if err != nil {
		// cobra prints the returned error
		return fmt.Errorf("conversion failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Input:  %s\n", report.Input)
	fmt.Fprintf(out, "Output: %s\n", report.Output)
	if opts.DryRun {
		fmt.Fprintf(out, "Dry run: %d endings validated, %d rows skipped, %d warnings\n",
			report.Written, len(report.Skipped), len(report.Warnings))
		return nil
	}
	fmt.Fprintf(out, "Wrote %d endings (%d rows skipped, %d warnings)\n",
		report.Written, len(report.Skipped), len(report.Warnings))
	return nil
}

// newLogger builds a console logger writing to w.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core)
}
