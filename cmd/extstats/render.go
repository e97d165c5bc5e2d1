package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vango-dev/extstats/internal/errors"
	"github.com/vango-dev/extstats/internal/site"
	"github.com/vango-dev/extstats/pkg/markup"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		data string
		ext  string
		page int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one page to stdout",
		Long: `Render a single list page or extension page and print it.

Examples:
  extstats render --data extensions.json --page 2
  extstats render --data extensions.json --ext aapbdbdomjkkjkaonfhkkikfgjllcleb`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.config)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			archive, err := loadArchive(cfg, data)
			if err != nil {
				return err
			}

			var (
				node *markup.Node
				kind string
				ok   bool
			)
			if ext != "" {
				kind = site.KindExt
				node, ok, err = archive.ExtPage(ext)
				if err != nil {
					return errors.FromError(err, "D002")
				}
				if !ok {
					return errors.New("D003").WithDetail("No extension with id " + ext)
				}
			} else {
				kind = site.KindList
				node, ok = archive.ListPage(page)
				if !ok {
					return errors.New("X003").
						WithDetail("--page " + strconv.Itoa(page) + " is out of range").
						WithSuggestion("The archive has " + strconv.Itoa(archive.PageCount()) + " list pages")
				}
			}

			if err := newRenderer(nil).RenderPage(cmd.Context(), cmd.OutOrStdout(), kind, node); err != nil {
				return errors.FromError(err, "S001")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "Extension data JSON file (default from config)")
	cmd.Flags().StringVarP(&ext, "ext", "e", "", "Render the page of this extension")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Render this list page")

	return cmd
}
