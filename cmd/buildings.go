package cmd

import (
	"fmt"
	"strings"

	"roomctl/pkg/catalog"
	"roomctl/pkg/config"
	"roomctl/pkg/roommeta"

	"github.com/spf13/cobra"
)

var buildingsCmd = &cobra.Command{
	Use:   "buildings",
	Short: "List the buildings and floors with converted timetables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		cat, err := catalog.Scan(cfg.ResolveDataDir(), roommeta.NewExtractor(cfg.Tokens()), cfg.Columns())
		if err != nil {
			return err
		}

		buildings := cat.Buildings()
		if len(buildings) == 0 {
			fmt.Printf("No converted timetables in %s. Run: roomctl convert\n", cfg.ResolveDataDir())
			return nil
		}

		for _, b := range buildings {
			floors := cat.Floors(b)
			parts := make([]string, len(floors))
			for i, f := range floors {
				parts[i] = fmt.Sprintf("%d", f)
			}
			rooms := cat.Filter(catalog.Criteria{Building: b})
			fmt.Printf("%s — %d room(s), floors %s\n", b, len(rooms), strings.Join(parts, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildingsCmd)
}
