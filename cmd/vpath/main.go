package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"vpath-go/internal/app"
	"vpath-go/internal/config"
	"vpath-go/internal/vpath"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file, falling back to defaults when none exists.
func loadConfig() (*app.Defaults, *config.Config, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadOrDefault(defaults.ConfigPath, defaults.BaseDir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}
	return defaults, cfg, nil
}

// newApp reads the config and creates a VPathApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "Normalize", "AddMount").
// Optional adjust funcs apply command-line overrides before the app starts.
func newApp(operation string, adjust ...func(*config.Config)) (*app.VPathApp, error) {
	_, cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	for _, fn := range adjust {
		fn(cfg)
	}

	a, err := app.NewVPathApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	return a, nil
}

// newTable returns a writer for tab-separated rows. On a terminal the
// columns are aligned; otherwise rows pass through unchanged for scripts.
func newTable(w io.Writer) (io.Writer, func() error) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		return tw, tw.Flush
	}
	return w, func() error { return nil }
}

var rootCmd = &cobra.Command{
	Use:           "vpath",
	Short:         "Lexical virtual path toolkit",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize PATH...",
	Short: "Print the normalized form of each path",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Normalize")
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		for _, p := range a.Normalize(args) {
			fmt.Fprintln(out, a.Display(p))
		}
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect PATH",
	Short: "Show every derived property of a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Inspect")
		if err != nil {
			return err
		}
		defer a.Close()

		in := a.Inspect(args[0])
		w, flush := newTable(cmd.OutOrStdout())
		fmt.Fprintf(w, "origin\t%s\n", in.Origin)
		fmt.Fprintf(w, "normalized\t%s\n", a.Display(vpath.New(in.Origin)))
		fmt.Fprintf(w, "relative\t%t\n", in.Relative)
		fmt.Fprintf(w, "root\t%t\n", in.Root)
		for i, s := range in.Segments {
			fmt.Fprintf(w, "segment[%d]\t%s\n", i, s)
		}
		return flush()
	},
}

var joinCmd = &cobra.Command{
	Use:   "join BASE ELEM...",
	Short: "Join elements onto a base path",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Join")
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintln(cmd.OutOrStdout(), a.Display(a.Join(args[0], args[1:])))
		return nil
	},
}

var commonCmd = &cobra.Command{
	Use:   "common PATH PATH",
	Short: "Print the common path of two absolute paths",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("CommonPath")
		if err != nil {
			return err
		}
		defer a.Close()

		// An empty line means the common path is undefined.
		common := a.CommonPath(args[0], args[1])
		if common != "" {
			common = a.Display(vpath.New(common))
		}
		fmt.Fprintln(cmd.OutOrStdout(), common)
		return nil
	},
}

var segmentCmd = &cobra.Command{
	Use:   "segment PATH DEPTH",
	Short: "Print the segment at a zero-based depth",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		depth, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid depth %q: %w", args[1], err)
		}

		a, err := newApp("SegmentAt")
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintln(cmd.OutOrStdout(), a.SegmentAt(args[0], depth))
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve PATH",
	Short: "Rewrite an absolute path through the mount table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Resolve")
		if err != nil {
			return err
		}
		defer a.Close()

		resolved, _, err := a.Resolve(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Display(resolved))
		return nil
	},
}

// mount command
var mountCmd = &cobra.Command{
	Use:   "mount",
	Short: "Manage the mount table",
}

var mountAddCmd = &cobra.Command{
	Use:   "add VIRTUAL TARGET",
	Short: "Mount a virtual prefix onto a target prefix",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddMount")
		if err != nil {
			return err
		}
		defer a.Close()

		m, err := a.AddMount(args[0], args[1])
		if err != nil {
			return fmt.Errorf("adding mount: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Mounted %s -> %s\n", a.Display(m.Virtual), a.Display(m.Target))
		return nil
	},
}

var mountRemoveCmd = &cobra.Command{
	Use:     "rm VIRTUAL",
	Aliases: []string{"remove"},
	Short:   "Remove a mount",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemoveMount")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.RemoveMount(args[0]); err != nil {
			return fmt.Errorf("removing mount: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Unmounted %s\n", args[0])
		return nil
	},
}

var mountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListMounts")
		if err != nil {
			return err
		}
		defer a.Close()

		mounts, err := a.ListMounts()
		if err != nil {
			return err
		}
		if len(mounts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No mounts.")
			return nil
		}

		w, flush := newTable(cmd.OutOrStdout())
		for _, m := range mounts {
			source := "stored"
			if m.Static {
				source = "config"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", a.Display(m.Virtual), a.Display(m.Target), source)
		}
		return flush()
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Read paths from stdin and print those not ignored",
	RunE: func(cmd *cobra.Command, args []string) error {
		ignoreFile, _ := cmd.Flags().GetString("ignore-file")

		a, err := newApp("Filter", func(cfg *config.Config) {
			if ignoreFile != "" {
				cfg.Filter.IgnoreFile = ignoreFile
			}
		})
		if err != nil {
			return err
		}
		defer a.Close()

		var raw []string
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			raw = append(raw, line)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading paths: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, p := range a.Filter(raw) {
			fmt.Fprintln(out, a.Display(p))
		}
		return nil
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View mount table operation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp("GetHistory")
		if err != nil {
			return err
		}
		defer a.Close()

		ops, err := a.GetHistory(limit)
		if err != nil {
			return err
		}
		if len(ops) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No operations recorded.")
			return nil
		}

		w, flush := newTable(cmd.OutOrStdout())
		for _, op := range ops {
			duration := ""
			if op.FinishedAt.Valid {
				duration = op.FinishedAt.Time.Sub(op.StartedAt).Truncate(time.Millisecond).String()
			}
			fmt.Fprintf(w, "#%d\t%s\t%s\t%s\t%s\t%s\n",
				op.ID,
				op.Operation,
				op.StartedAt.Format("2006-01-02 15:04:05"),
				op.Status,
				duration,
				op.Parameters,
			)
		}
		return flush()
	},
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults.BaseDir)
		if err := config.Init(defaults.ConfigPath, cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", defaults.ConfigPath)
		fmt.Fprintf(cmd.OutOrStdout(), "Base Dir: %s\n", defaults.BaseDir)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Configuration from %s:\n\n", defaults.ConfigPath)
		w, flush := newTable(out)
		fmt.Fprintf(w, "Base Dir:\t%s\n", cfg.BaseDir)
		fmt.Fprintf(w, "Log Dir:\t%s\n", cfg.LogDir)
		fmt.Fprintf(w, "Log Level:\t%s\n", cfg.LogLevel)
		fmt.Fprintf(w, "Separator:\t%s\n", cfg.Separator)
		fmt.Fprintf(w, "Database:\t%s %s\n", cfg.Database.Type, cfg.Database.DataDir)
		fmt.Fprintf(w, "Mounts:\t%d\n", len(cfg.Mounts))
		fmt.Fprintf(w, "Ignore:\t%s\n", strings.Join(cfg.Filter.Ignore, " "))
		return flush()
	},
}

func init() {
	// mount subcommands
	mountCmd.AddCommand(mountAddCmd)
	mountCmd.AddCommand(mountRemoveCmd)
	mountCmd.AddCommand(mountListCmd)

	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// root commands
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(commonCmd)
	rootCmd.AddCommand(segmentCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(filterCmd)
	filterCmd.Flags().String("ignore-file", "", "Pattern file to use instead of the configured one")
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 50, "Maximum number of operations to show")
	rootCmd.AddCommand(configCmd)
}
