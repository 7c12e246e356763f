package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/backwardspy/randnd/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	fetchCmd := newFetchCommand(container)

	root := &cobra.Command{
		Use:   "randnd [category]",
		Short: "randnd - random phrase feed",
		Long:  "randnd fetches random phrases by category from a phrase service and keeps a fading feed of the most recent ones.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fetchCmd.SetArgs(args)
			return fetchCmd.ExecuteContext(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(fetchCmd)
	root.AddCommand(newWatchCommand(container))
	root.AddCommand(newCategoriesCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newLogCommand(container))
	root.AddCommand(newDoctorCommand(container))
	return root, nil
}

func newFetchCommand(container *app.Container) *cobra.Command {
	var (
		category string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "fetch [category]",
		Short: "Fetch one phrase and print it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			override := category
			if len(args) > 0 {
				override = args[0]
			}
			cat, err := container.Config.ResolveCategory(override)
			if err != nil {
				return err
			}

			spinner := NewSpinner(cmd.OutOrStdout())
			spinner.Start()
			phrase, err := container.Controller.Fetch(ctx, cat)
			spinner.Stop()
			if err != nil {
				return err
			}

			container.Controller.AppendPhrase(phrase)
			RenderPhrase(cmd.OutOrStdout(), cat, phrase)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category to fetch (default from config)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Override request timeout (0 = none)")

	return cmd
}
