package cmd

import (
	"fmt"
	"sort"

	"github.com/Baydnn/telemetry-pipeline/internal/telemetry"
	"github.com/Baydnn/telemetry-pipeline/internal/utils"
	"github.com/spf13/cobra"
)

var schemaJSON bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the required capture columns and accepted header aliases",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := telemetry.DefaultSchema()
		if schemaJSON {
			b, err := utils.PrettyJSON(s)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}
		fmt.Println("Required columns:")
		for _, col := range s.Required {
			kind := "text"
			if s.IsNumeric(col) {
				kind = "numeric"
			}
			fmt.Printf("- %s (%s)\n", col, kind)
		}
		if len(s.Aliases) == 0 {
			return nil
		}
		aliases := make([]string, 0, len(s.Aliases))
		for a := range s.Aliases {
			aliases = append(aliases, a)
		}
		sort.Strings(aliases)
		fmt.Println("Accepted aliases:")
		for _, a := range aliases {
			fmt.Printf("- %s -> %s\n", a, s.Aliases[a])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaJSON, "json", false, "print the schema as JSON")
}
