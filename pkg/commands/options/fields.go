package options

import (
	"github.com/spf13/cobra"
)

// FieldOptions carries the editable page fields for `page set`.
type FieldOptions struct {
	Title    string
	Subtitle string
}

func AddFieldArgs(cmd *cobra.Command, o *FieldOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "",
		"Set the page title.")
	cmd.Flags().StringVar(&o.Subtitle, "subtitle", "",
		"Set the page subtitle.")
}
