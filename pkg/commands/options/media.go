package options

import (
	"github.com/spf13/cobra"
)

// MediaOptions
type MediaOptions struct {
	Mime string
}

func AddMediaArgs(cmd *cobra.Command, o *MediaOptions) {
	cmd.Flags().StringVar(&o.Mime, "mime", "",
		"Declare the MIME type instead of guessing from the file.")
}
