package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/filereader"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/logging"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/reportconfig"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/reporter/actionoutput"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/reporting"
)

// Flag names match the action input names.
const (
	flagCheckstyle            = "checkstyle-result-xml"
	flagJacoco                = "jacoco-html-report"
	flagMetrics               = "metrics-xml"
	flagCK                    = "ck-main-class-csv"
	flagDesigniteDesign       = "designite-design-result-csv"
	flagDesigniteImpl         = "designite-implementation-result-csv"
	flagOutput                = "output"
	flagTitle                 = "title"
	flagDocumentationURL      = "documentation-url"
	flagVerbosity             = "verbosity"
	flagDesignFilters         = "design-smell-filters"
	flagImplementationFilters = "implementation-smell-filters"
	flagConfig                = "config"
)

// envPrefix is the prefix GitHub Actions gives step inputs.
const envPrefix = "INPUT"

// filterSeparator splits filter lists; smell names contain spaces.
const filterSeparator = ";"

var boundKeys = []string{
	flagCheckstyle,
	flagJacoco,
	flagMetrics,
	flagCK,
	flagDesigniteDesign,
	flagDesigniteImpl,
	flagOutput,
	flagTitle,
	flagDocumentationURL,
	flagVerbosity,
	flagDesignFilters,
	flagImplementationFilters,
}

// newRootCmd builds the command. stderr receives log output.
func newRootCmd(stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "quality-report",
		Short: "Aggregate Java quality tool exports into a Markdown report",
		Long: `quality-report reads the exports of Checkstyle, JaCoCo, JaSoMe, CK and Designite
and renders them as one Markdown report, suitable for a pull request comment.

Every flag can also be given as an environment variable named after the action
input, for example INPUT_CHECKSTYLE-RESULT-XML or INPUT_CHECKSTYLE_RESULT_XML.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configFile, err := cmd.Flags().GetString(flagConfig)
			if err != nil {
				return err
			}
			if err := initConfig(v, configFile); err != nil {
				return err
			}
			return run(cmd.Context(), v, cmd.OutOrStdout(), stderr)
		},
	}

	flags := cmd.Flags()
	flags.String(flagCheckstyle, "", "Checkstyle XML result file")
	flags.String(flagJacoco, "", "JaCoCo HTML report index file")
	flags.String(flagMetrics, "", "JaSoMe XML metrics file")
	flags.String(flagCK, "", "CK class-level CSV file")
	flags.String(flagDesigniteDesign, "", "Designite design smells CSV file")
	flags.String(flagDesigniteImpl, "", "Designite implementation smells CSV file")
	flags.StringP(flagOutput, "o", "", "Write the report to this file instead of stdout")
	flags.String(flagTitle, "", "Report title (default \"Report\")")
	flags.String(flagDocumentationURL, "", "Documentation link placed under the title")
	flags.String(flagVerbosity, "Info", "Logging verbosity level (Verbose, Info, Warning, Error, Off)")
	flags.String(flagDesignFilters, "", "Design smell filters, ';'-separated (+include, -exclude, wildcards * and ?)")
	flags.String(flagImplementationFilters, "", "Implementation smell filters, ';'-separated, applied after \"-Abstract Function Call From Constructor\"")
	flags.String(flagConfig, "", "YAML config file with the same keys as the flags")

	for _, key := range boundKeys {
		initBindFlag(v, flags, key)
	}
	return cmd
}

func initBindFlag(v *viper.Viper, flags *pflag.FlagSet, key string) {
	if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
		slog.Warn("Unable to bind flag.", "flag", key, "error", err)
	}
	upper := strings.ToUpper(key)
	// The runner keeps the dashes of input names; shells cannot export those.
	if err := v.BindEnv(key, envPrefix+"_"+upper, envPrefix+"_"+strings.ReplaceAll(upper, "-", "_")); err != nil {
		slog.Warn("Unable to bind environment variable.", "flag", key, "error", err)
	}
}

// initConfig reads the optional config file.
func initConfig(v *viper.Viper, configFile string) error {
	if configFile == "" {
		return nil
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", configFile, err)
	}
	return nil
}

func run(ctx context.Context, v *viper.Viper, stdout, stderr io.Writer) error {
	verbosity, err := logging.ParseVerbosity(v.GetString(flagVerbosity))
	if err != nil {
		return err
	}
	logging.Configure(stderr, verbosity)

	cfg, err := configurationFrom(v, verbosity)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	report, err := reporting.Generate(ctx, reporting.NewReportContext(cfg, filereader.New(nil)))
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}

	if err := writeReport(cfg.OutputFile(), report, stdout); err != nil {
		return err
	}
	published, err := actionoutput.Publish(report)
	if err != nil {
		return err
	}
	if published {
		slog.Info("Report published as step output.", "output", actionoutput.ReportCommentOutput)
	}
	return nil
}

func configurationFrom(v *viper.Viper, verbosity logging.VerbosityLevel) (*reportconfig.ReportConfiguration, error) {
	files := reportconfig.InputFiles{
		CheckstyleXML:              v.GetString(flagCheckstyle),
		JacocoHTML:                 v.GetString(flagJacoco),
		MetricsXML:                 v.GetString(flagMetrics),
		CKClassCSV:                 v.GetString(flagCK),
		DesigniteDesignCSV:         v.GetString(flagDesigniteDesign),
		DesigniteImplementationCSV: v.GetString(flagDesigniteImpl),
	}
	return reportconfig.NewReportConfiguration(
		files,
		v.GetString(flagOutput),
		v.GetString(flagTitle),
		v.GetString(flagDocumentationURL),
		verbosity,
		filterList(v, flagDesignFilters),
		filterList(v, flagImplementationFilters),
	)
}

func filterList(v *viper.Viper, key string) []string {
	var filters []string
	for _, f := range strings.Split(v.GetString(key), filterSeparator) {
		if f = strings.TrimSpace(f); f != "" {
			filters = append(filters, f)
		}
	}
	return filters
}

func writeReport(path, report string, stdout io.Writer) error {
	if path == "" {
		_, err := io.WriteString(stdout, report)
		return err
	}
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return fmt.Errorf("write report to %s: %w", path, err)
	}
	slog.Info("Report written.", "path", path)
	return nil
}
