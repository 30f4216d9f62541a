package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/roulette/pkg/runner/item"
	"tableflip.dev/roulette/pkg/store"
)

func addItem(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage the current page's items",
		Example: `
roulette item add Free coffee
roulette item remove 0
roulette item list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addItemAdd(cmd)
	addItemRemove(cmd)
	addItemList(cmd)

	topLevel.AddCommand(cmd)
}

func addItemAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "append an item to the current page",
		Example: `
roulette item add Free coffee
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			a := item.Add{
				Text:        strings.Join(args, " "),
				Persistence: p,
			}
			return a.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addItemRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "remove <index>",
		Short: "remove the item at a 0-based index",
		Example: `
roulette item remove 0
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := item.Remove{
				Index:       index,
				Persistence: p,
			}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addItemList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list the current page's items",
		Example: `
roulette item list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			l := item.List{Persistence: p}
			return l.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
