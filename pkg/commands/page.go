package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/roulette/pkg/commands/options"
	"tableflip.dev/roulette/pkg/runner/pages"
	"tableflip.dev/roulette/pkg/store"
)

func addPage(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Manage pages",
		Example: `
roulette page add "Friday prizes"
roulette page list
roulette page select 2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addPageAdd(cmd)
	addPageList(cmd)
	addPageSelect(cmd)
	addPageSet(cmd)

	topLevel.AddCommand(cmd)
}

func addPageAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "append a new page and select it",
		Example: `
roulette page add
roulette page add Friday prizes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			a := pages.Add{
				Title:       strings.Join(args, " "),
				Persistence: p,
			}
			return a.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addPageList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list all pages",
		Example: `
roulette page list
roulette page list --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			l := pages.List{
				ShowID:      io.ShowID,
				Persistence: p,
			}
			return l.Do(cmd.Context())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addPageSelect(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "select <id|position>",
		Short: "switch the current page",
		Example: `
roulette page select 2
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := pages.Select{
				Ref:         args[0],
				Persistence: p,
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addPageSet(topLevel *cobra.Command) {
	fo := &options.FieldOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "update the current page's title or subtitle",
		Example: `
roulette page set --title "Friday prizes" --subtitle "Team standup"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := pages.Set{
				Title:       fo.Title,
				Subtitle:    fo.Subtitle,
				HasTitle:    cmd.Flags().Changed("title"),
				HasSubtitle: cmd.Flags().Changed("subtitle"),
				Persistence: p,
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddFieldArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
