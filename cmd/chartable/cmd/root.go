// Package cmd contains the CLI command for chartable.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/chartable/internal/config"
	"github.com/f3rmion/chartable/internal/content"
	"github.com/f3rmion/chartable/internal/extract"
	"github.com/f3rmion/chartable/internal/ui"
)

// EnvPrefix prefixes every environment variable read by chartable.
const EnvPrefix = "CHARTABLE"

// NewRootCmd builds the chartable command writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "chartable --docx <file>",
		Short: "Extract a hanzi/pinyin char table from a .docx into curriculum JSON",
		Long: `chartable reads the tables of a .docx document, picks the table holding
the most (hanzi, pinyin, words) entries and writes them as a char_table
section of a schema v1 curriculum JSON file.

Environment:
  CHARTABLE_UNIT     unit id when --unit is not given
  CHARTABLE_OUT      output path when --out is not given
  CHARTABLE_VERBOSE  debug logging and an item preview on stderr
  CHARTABLE_PROFILE  YAML file overriding subject, grade, term and section title

Example:
  chartable --docx lesson.docx --unit u3 --out src/content/content.v1.json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			return runExtract(cfg, ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr()), cmd.ErrOrStderr())
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().String("docx", "", "path to .docx file (required)")
	rootCmd.Flags().String("unit", config.DefaultUnit, "unit id")
	rootCmd.Flags().String("out", config.DefaultOut, "output json path")
	rootCmd.MarkFlagRequired("docx")

	v.BindPFlag("unit", rootCmd.Flags().Lookup("unit"))
	v.BindPFlag("out", rootCmd.Flags().Lookup("out"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	return rootCmd
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	rootCmd := NewRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		ui.New(os.Stdout, os.Stderr).Error(err)
		return err
	}
	return nil
}

// loadConfig merges flags, environment and the optional profile file.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (config.Config, error) {
	docx, err := cmd.Flags().GetString("docx")
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Config{
		Docx:    docx,
		Unit:    v.GetString("unit"),
		Out:     v.GetString("out"),
		Verbose: v.GetBool("verbose"),
		Profile: config.DefaultProfile(),
	}

	if path := v.GetString("profile"); path != "" {
		profile, err := config.LoadProfile(path)
		if err != nil {
			return cfg, fmt.Errorf("loading profile: %w", err)
		}
		cfg.Profile = profile
	}

	return cfg, nil
}

// runExtract extracts the best table, writes the document and prints the
// summary. Nothing is written unless extraction succeeded.
func runExtract(cfg config.Config, out *ui.UI, logw io.Writer) error {
	logger := config.NewLogger(logw, cfg.Verbose)

	res, err := extract.New(logger).FromFile(cfg.Docx)
	if err != nil {
		return err
	}

	doc := content.Build(res.Items, res.TableIndex, cfg.Docx, cfg.Unit, cfg.Profile)
	if cfg.Verbose {
		out.Preview(doc.Units[0].Sections[0].Items)
	}

	if err := content.Write(cfg.Out, doc); err != nil {
		return err
	}

	logger.Debug("document written",
		slog.String("out", cfg.Out),
		slog.Int("items", len(res.Items)),
		slog.Any("table_counts", res.TableCounts))

	out.Summary(len(res.Items), res.TableIndex, cfg.Out)
	return nil
}
