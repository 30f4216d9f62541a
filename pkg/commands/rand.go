package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/roulette/pkg/runner/roll"
	"tableflip.dev/roulette/pkg/store"
)

func addRand(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rand [min max]",
		Short: "draw a uniform integer from a closed range",
		Long: `Draw a uniform integer from [min, max] inclusive. Without arguments the
current page's stored bounds are used; explicit bounds are remembered on the
page.`,
		Example: `
roulette rand
roulette rand 1 6
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := roll.Roll{Persistence: p}
			if len(args) == 2 {
				r.MinText = args[0]
				r.MaxText = args[1]
			}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
