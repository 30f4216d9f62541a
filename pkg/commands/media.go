package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/roulette/pkg/commands/options"
	"tableflip.dev/roulette/pkg/runner/media"
	"tableflip.dev/roulette/pkg/store"
)

func addMedia(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage the current page's media attachment",
		Example: `
roulette media attach ./poster.png
roulette media url https://example.com/clip.mp4
roulette media clear
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addMediaAttach(cmd)
	addMediaURL(cmd)
	addMediaClear(cmd)
	addMediaOpen(cmd)

	topLevel.AddCommand(cmd)
}

func addMediaAttach(topLevel *cobra.Command) {
	mo := &options.MediaOptions{}

	cmd := &cobra.Command{
		Use:   "attach <file>",
		Short: "embed a local file as the page media",
		Long:  "Reads the file and stores it on the page as a self-contained data URI.",
		Example: `
roulette media attach ./poster.png
roulette media attach ./clip.mp4 --mime video/mp4
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			a := media.Attach{
				Path:        args[0],
				Mime:        mo.Mime,
				Persistence: p,
			}
			return a.Do(cmd.Context())
		},
	}

	options.AddMediaArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}

func addMediaURL(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "url [url]",
		Short: "bind a remote media URL; no URL clears the attachment",
		Example: `
roulette media url https://example.com/clip.mp4
roulette media url
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			u := media.URL{
				URL:         strings.Join(args, " "),
				Persistence: p,
			}
			return u.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addMediaClear(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "detach media from the current page",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			c := media.Clear{Persistence: p}
			return c.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addMediaOpen(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "open the current page's media with the platform opener",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			o := media.Open{Persistence: p}
			return o.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
