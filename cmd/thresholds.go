package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Baydnn/telemetry-pipeline/internal/telemetry"
	"github.com/Baydnn/telemetry-pipeline/internal/utils"
	"github.com/spf13/cobra"
)

var thresholdsJSON bool

var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Show the threshold limits checked during analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := telemetry.DefaultSchema()
		if thresholdsJSON {
			b, err := utils.PrettyJSON(s.Thresholds)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}
		for _, th := range s.Thresholds {
			var limits []string
			if th.Max != nil {
				limits = append(limits, "max="+strconv.FormatFloat(*th.Max, 'f', -1, 64))
			}
			if th.Min != nil {
				limits = append(limits, "min="+strconv.FormatFloat(*th.Min, 'f', -1, 64))
			}
			fmt.Printf("- %s: %s\n", th.Column, strings.Join(limits, " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(thresholdsCmd)
	thresholdsCmd.Flags().BoolVar(&thresholdsJSON, "json", false, "print the thresholds as JSON")
}
