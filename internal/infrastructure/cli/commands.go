package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/backwardspy/randnd/internal/app"
	"github.com/backwardspy/randnd/internal/domain"
	"github.com/backwardspy/randnd/internal/infrastructure/config"
	"github.com/backwardspy/randnd/internal/infrastructure/tui"
	"github.com/backwardspy/randnd/internal/pkg/logger"
)

func newWatchCommand(container *app.Container) *cobra.Command {
	var (
		category string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the live phrase feed in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := container.Config.ResolveCategory(category)
			if err != nil {
				return err
			}
			tick := interval
			if tick <= 0 {
				tick = container.Config.TickInterval()
			}

			// The watch view owns the terminal; route controller logging
			// into the void while it runs.
			container.Controller.Logger = logger.NewNop()

			model := tui.NewModel(cmd.Context(), container.Controller,
				container.Config.Service.Categories, cat, tick)
			return model.Run()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Starting category (default from config)")
	cmd.Flags().DurationVarP(&interval, "interval", "i", 0, "Auto-regenerate interval (default from config)")
	return cmd
}

func newCategoriesCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List configured phrase categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, cat := range container.Config.Service.Categories {
				marker := " "
				if cat == container.Config.Service.DefaultCategory {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, cat)
			}
			return nil
		},
	}
}

func newConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect randnd configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, container)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show full configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, container)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := lookupConfigKey(container.Config, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value (value accepts YAML syntax)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := strings.Join(args[1:], " ")
			return runConfigSet(container, key, value)
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := container.ConfigLoader.Load(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration valid")
			return nil
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.ConfigLoader.Write(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults")
			return nil
		},
	}

	configCmd.AddCommand(showCmd, getCmd, setCmd, pathCmd, validateCmd, resetCmd)
	return configCmd
}

func runConfigShow(cmd *cobra.Command, container *app.Container) error {
	cfg, err := container.ConfigLoader.Load(cmd.Context())
	if err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(raw))
	return nil
}

func runConfigSet(container *app.Container, key, value string) error {
	tree, err := configTree(container.Config)
	if err != nil {
		return err
	}

	var parsed interface{}
	if err := yaml.Unmarshal([]byte(value), &parsed); err != nil {
		return fmt.Errorf("parse value: %w", err)
	}

	parts := strings.Split(key, ".")
	node := tree
	for _, part := range parts[:len(parts)-1] {
		child, ok := node[part].(map[string]interface{})
		if !ok {
			return fmt.Errorf("unknown config key %s", key)
		}
		node = child
	}
	leaf := parts[len(parts)-1]
	if _, ok := node[leaf]; !ok {
		return fmt.Errorf("unknown config key %s", key)
	}
	node[leaf] = parsed

	raw, err := yaml.Marshal(tree)
	if err != nil {
		return err
	}
	var cfg domain.Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return container.ConfigLoader.Write(cfg)
}

func lookupConfigKey(cfg domain.Config, key string) (string, error) {
	tree, err := configTree(cfg)
	if err != nil {
		return "", err
	}
	var node interface{} = map[string]interface{}(tree)
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]interface{})
		if !ok {
			return "", fmt.Errorf("unknown config key %s", key)
		}
		node, ok = m[part]
		if !ok {
			return "", fmt.Errorf("unknown config key %s", key)
		}
	}
	raw, err := yaml.Marshal(node)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// configTree round-trips the config through YAML so keys match the file
// layout (e.g. service.endpoint).
func configTree(cfg domain.Config) (map[string]interface{}, error) {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var tree map[string]interface{}
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func newLogCommand(container *app.Container) *cobra.Command {
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Inspect the persistent feed log",
	}

	requireStore := func() error {
		if container.FeedStore == nil {
			return fmt.Errorf("feed log disabled in config")
		}
		return nil
	}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent feed log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStore(); err != nil {
				return err
			}
			records, err := container.FeedStore.Records(limit, "")
			if err != nil {
				return err
			}
			RenderFeedRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "n", domain.DefaultLogLimit, "Number of entries to show")

	var searchLimit int
	searchCmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search feed log entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStore(); err != nil {
				return err
			}
			records, err := container.FeedStore.Records(searchLimit, args[0])
			if err != nil {
				return err
			}
			RenderFeedRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultLogSearchLimit, "Max results")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all feed log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStore(); err != nil {
				return err
			}
			if err := container.FeedStore.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Feed log cleared")
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export <dest>",
		Short: "Export the feed log as jsonl",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStore(); err != nil {
				return err
			}
			if err := container.FeedStore.ExportJSON(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", args[0])
			return nil
		},
	}

	var days int
	pruneCmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove feed log entries older than N days",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStore(); err != nil {
				return err
			}
			if err := container.FeedStore.PruneOlderThan(days); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pruned entries older than %d days\n", days)
			return nil
		},
	}
	pruneCmd.Flags().IntVar(&days, "days", domain.DefaultLogRetainDays, "Retention in days")

	logCmd.AddCommand(listCmd, searchCmd, clearCmd, exportCmd, pruneCmd)
	return logCmd
}

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration and phrase service reachability",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService.Run(cmd.Context())
			RenderDoctorReport(cmd.OutOrStdout(), report)
			if err != nil {
				return err
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found problems")
			}
			return nil
		},
	}
}
