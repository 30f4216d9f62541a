package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/roulette/pkg/runner/spin"
	"tableflip.dev/roulette/pkg/store"
)

func addSpin(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "spin",
		Short: "spin the current page's wheel",
		Example: `
roulette spin
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := spin.Spin{Persistence: p}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
