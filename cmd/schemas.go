package cmd

import (
	"fmt"
	"sort"
	"strings"

	"roster-manager/feature/records/schemas"

	"github.com/spf13/cobra"
)

// schemasCmd lists the built-in schemas.
var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List the known record schemas and their column aliases",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range schemas.NewRegistry().All() {
			def := s.Definition()

			fmt.Printf("\n--- %s ---\n", def.BaseName)
			fmt.Printf("Keys:           %s\n", strings.Join(def.Keys, ", "))
			fmt.Printf("Primary Key:    %s\n", def.PrimaryKey)
			fmt.Printf("Required:       %s\n", strings.Join(def.RequiredKeys, ", "))
			if len(def.DateColumns) > 0 {
				fmt.Printf("Date Columns:   %s\n", strings.Join(def.DateColumns, ", "))
			}

			aliases := make([]string, 0, len(def.KeyMap))
			for a := range def.KeyMap {
				aliases = append(aliases, a)
			}
			sort.Strings(aliases)
			for _, a := range aliases {
				fmt.Printf("  %-22s -> %s\n", a, def.KeyMap[a])
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(schemasCmd)
}
