package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Baydnn/telemetry-pipeline/internal/telemetry"
	"github.com/Baydnn/telemetry-pipeline/internal/utils"
	"github.com/spf13/cobra"
)

var (
	anaOutputPath string
	anaDelimiter  string
	anaSheetName  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a telemetry capture and write a Markdown report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("input file not found: %s", path)
			}
			return fmt.Errorf("stat input: %w", err)
		}

		opts := telemetry.LoadOptions{Sheet: anaSheetName}
		if anaDelimiter != "" {
			switch anaDelimiter {
			case ",":
				opts.Delimiter = ','
			case "\t", "tab":
				opts.Delimiter = '\t'
			case ";":
				opts.Delimiter = ';'
			default:
				return fmt.Errorf("unsupported --delimiter: %s", anaDelimiter)
			}
		}

		rep, err := telemetry.NewAnalyzer(nil, logger).AnalyzeFile(path, opts)
		if err != nil {
			return err
		}

		out := anaOutputPath
		if out == "" {
			out = defaultReportPath(path)
		}
		if err := utils.EnsureDir(filepath.Dir(out)); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := utils.SafeWriteFile(out, []byte(rep.Markdown())); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("✓ Report written to %s\n", out)
		return nil
	},
}

// defaultReportPath derives the report location from the input path: same
// directory (or the configured output_dir), basename with the extension
// replaced by "_report.md".
func defaultReportPath(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dir := filepath.Dir(path)
	if cfg != nil && cfg.OutputDir != "" {
		dir = cfg.OutputDir
	}
	return filepath.Join(dir, stem+"_report.md")
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "path to write the report (default: <input>_report.md next to the input)")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	analyzeCmd.Flags().StringVar(&anaSheetName, "sheet", "", "XLSX: sheet name to analyze (default: first sheet)")
}
