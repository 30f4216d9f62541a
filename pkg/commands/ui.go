package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/roulette/pkg/runner/ui"
	"tableflip.dev/roulette/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
roulette ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := ui.UI{Persistence: p}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
