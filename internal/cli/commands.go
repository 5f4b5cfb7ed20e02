package cli

import (
	"fmt"

	"github.com/dmitrijs2005/empdir/internal/buildinfo"
	"github.com/dmitrijs2005/empdir/internal/confirm"
	"github.com/dmitrijs2005/empdir/internal/i18n"
	"github.com/dmitrijs2005/empdir/internal/store"
	"github.com/dmitrijs2005/empdir/internal/viewmodel"
	"github.com/spf13/cobra"
)

// NewListCommand prints one page of the directory.
func NewListCommand(root *RootOptions) *cobra.Command {
	var (
		query string
		page  int
		view  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.openApp(cmd, confirm.Always(false))
			if err != nil {
				return err
			}
			defer a.Close()

			if view != "" {
				m, err := viewmodel.ParseViewMode(view)
				if err != nil {
					return err
				}
				if err := a.list.SetViewMode(m); err != nil {
					return err
				}
			}
			a.list.SetQuery(query)
			a.list.SetPage(page)
			a.render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by name, email, department or position")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	cmd.Flags().StringVar(&view, "view", "", "layout (list|table)")
	return cmd
}

// NewExportCommand writes the (optionally filtered) directory to a file.
func NewExportCommand(root *RootOptions) *cobra.Command {
	var (
		query  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export employees to JSON or PDF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.openApp(cmd, confirm.Always(false))
			if err != nil {
				return err
			}
			defer a.Close()

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			a.list.SetQuery(query)
			return a.Export(cmd.Context(), format, path)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "export only matching employees")
	cmd.Flags().StringVarP(&format, "format", "f", "", "json or pdf (default: from the file extension)")
	return cmd
}

// NewSeedCommand adds demo employees to an empty directory.
func NewSeedCommand(root *RootOptions) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add demo employees to an empty directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root.cfg.Seed = false
			a, err := root.openApp(cmd, confirm.Always(false))
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.store.Seed(cmd.Context(), count)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", a.tr.T(i18n.Seeded), n)
			return err
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", store.DefaultSeedSize, "number of employees")
	return cmd
}

// NewDeleteCommand removes one employee after confirmation.
func NewDeleteCommand(root *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var gate confirm.Gate
			if yes {
				gate = confirm.Always(true)
			}
			a, err := root.openApp(cmd, gate)
			if err != nil {
				return err
			}
			defer a.Close()

			removed, err := a.list.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", a.tr.T(i18n.Delete), args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

// NewVersionCommand prints build information.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
			return nil
		},
	}
}
