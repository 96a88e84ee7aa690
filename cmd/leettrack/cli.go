package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/leettrack/internal/catalog"
	"github.com/sandeepkv93/leettrack/internal/config"
	"github.com/sandeepkv93/leettrack/internal/filter"
	"github.com/sandeepkv93/leettrack/internal/logging"
	"github.com/sandeepkv93/leettrack/internal/model"
	"github.com/sandeepkv93/leettrack/internal/progress"
	"github.com/sandeepkv93/leettrack/internal/stats"
	"github.com/sandeepkv93/leettrack/internal/storage"
	"github.com/sandeepkv93/leettrack/internal/tracker"
	"github.com/sandeepkv93/leettrack/internal/update"
	"github.com/sandeepkv93/leettrack/internal/views"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type streams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	// interactive reports whether in is a terminal that can answer prompts.
	interactive func() bool
}

type rootFlags struct {
	configFile  string
	catalogPath string
	backend     string
	statePath   string
	verbose     bool
}

// app carries what PersistentPreRunE builds for the subcommands.
type app struct {
	io      streams
	flags   rootFlags
	cfg     config.RuntimeConfig
	logger  *zap.Logger
	slot    storage.Slot
	store   *progress.Store
	tracker *tracker.Tracker
	closed  bool
}

func newApp(s streams) *app {
	return &app{io: s, logger: zap.NewNop()}
}

// execute runs the command line in args. Storage and the logger are released
// on every path, including subcommands that fail.
func (a *app) execute(args []string) error {
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	defer a.close()
	return cmd.Execute()
}

func (a *app) rootCmd() *cobra.Command {
	s := a.io
	rootCmd := &cobra.Command{
		Use:   "leettrack",
		Short: "Track progress through a catalog of LeetCode problems",
		Long: `leettrack keeps a checklist of coding problems grouped by topic and
remembers which ones you have solved.

Run without arguments to open the interactive checklist.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}
	rootCmd.SetIn(s.in)
	rootCmd.SetOut(s.out)
	rootCmd.SetErr(s.errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flags.configFile, "config", "", "config file (default: ~/.config/leettrack/config.yaml)")
	pf.StringVar(&a.flags.catalogPath, "catalog", "", "catalog YAML file (default: built-in catalog)")
	pf.StringVar(&a.flags.backend, "backend", "", "storage backend: sqlite, bolt, file or memory")
	pf.StringVar(&a.flags.statePath, "state", "", "progress database file, or directory for the file backend")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		a.statsCmd(),
		a.listCmd(),
		a.toggleCmd(),
		a.markCmd("done", true),
		a.markCmd("undone", false),
		a.resetCmd(),
		a.reportCmd(),
	)
	return rootCmd
}

func (a *app) overrides() map[string]any {
	out := map[string]any{}
	if a.flags.catalogPath != "" {
		out["catalog_path"] = a.flags.catalogPath
	}
	if a.flags.backend != "" {
		out["storage.backend"] = a.flags.backend
	}
	if a.flags.statePath != "" {
		out["storage.path"] = a.flags.statePath
	}
	if a.flags.verbose {
		out["logging.level"] = "debug"
	}
	return out
}

func (a *app) setup(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(a.flags.configFile, a.overrides())
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Options{File: cfg.Logging.File, Level: cfg.Logging.Level, Verbose: a.flags.verbose})
	if err != nil {
		fmt.Fprintf(a.io.errOut, "warning: logging disabled: %v\n", err)
		logger = zap.NewNop()
	}
	a.logger = logger

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	slot, err := storage.Open(storage.Backend(cfg.Storage.Backend), cfg.StoragePath())
	if err != nil {
		a.logger.Warn("storage unavailable, progress will not be saved", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
		fmt.Fprintf(a.io.errOut, "warning: progress will not be saved: %v\n", err)
		slot = storage.NewMemorySlot()
	}
	a.slot = slot

	a.store = progress.NewStore(slot, cfg.Storage.SlotKey, a.logger)
	a.store.Load(ctx)
	a.tracker = tracker.New(cat, a.store, a.logger)
	a.logger.Debug("tracker ready",
		zap.String("backend", cfg.Storage.Backend),
		zap.Int("categories", len(cat.Categories)),
		zap.Int("items", cat.ItemCount()),
	)
	return nil
}

func loadCatalog(path string) (model.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func (a *app) close() {
	if a.closed {
		return
	}
	a.closed = true
	if a.store != nil {
		a.store.Persist(context.Background())
	}
	if a.slot != nil {
		if err := a.slot.Close(); err != nil {
			a.logger.Warn("close storage", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

func (a *app) runTUI() error {
	program := tea.NewProgram(update.NewModel(a.tracker, a.cfg.UI), tea.WithInput(a.io.in), tea.WithOutput(a.io.out))
	_, err := program.Run()
	return err
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print completion counts per category and difficulty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeSummary(a.io.out, a.tracker.Summary())
			a.writeLastSaved(cmd.Context())
			return nil
		},
	}
}

// writeLastSaved prints when progress was last written, for backends that
// record it.
func (a *app) writeLastSaved(ctx context.Context) {
	ts, ok := a.slot.(storage.Timestamped)
	if !ok {
		return
	}
	at, err := ts.UpdatedAt(ctx, a.cfg.Storage.SlotKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		fmt.Fprintln(a.io.out, "\nLast saved: never")
	case err != nil:
		a.logger.Warn("read last saved time", zap.Error(err))
	default:
		fmt.Fprintf(a.io.out, "\nLast saved: %s\n", at.Local().Format("2006-01-02 15:04"))
	}
}

func writeSummary(w io.Writer, s stats.Summary) {
	fmt.Fprintf(w, "Overall: %d/%d (%s%%)\n", s.Completed, s.Total, stats.FormatPercent(s.Percent))
	fmt.Fprintln(w)
	for _, row := range s.Categories {
		fmt.Fprintf(w, "[%s] %-28s %3d/%-3d %6s%%\n",
			views.CategoryMarker(row.Name, row.Complete), row.Name, row.Completed, row.Total, stats.FormatPercent(row.Percent))
	}
	fmt.Fprintln(w)
	for _, row := range s.Difficulties {
		fmt.Fprintf(w, "%-8s %3d/%-3d %6s%%\n", row.Difficulty, row.Completed, row.Total, stats.FormatPercent(row.Percent))
	}
	if s.Orphans > 0 {
		fmt.Fprintf(w, "\n%d stored ids are not in the catalog\n", s.Orphans)
	}
}

func (a *app) listCmd() *cobra.Command {
	var search, difficulty, status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List problems, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := filter.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			st, err := filter.ParseStatus(status)
			if err != nil {
				return err
			}
			criteria := filter.Criteria{SearchTerm: search, Difficulty: d, Status: st}
			filtered := a.tracker.Filtered(criteria)
			if len(filtered.Categories) == 0 {
				fmt.Fprintln(a.io.out, "no items match the current filters")
				return nil
			}
			done := a.tracker.Progress()
			for _, cat := range a.tracker.Catalog().Categories {
				shown, ok := filtered.Category(cat.ID)
				if !ok {
					continue
				}
				fmt.Fprintln(a.io.out, views.RenderCategoryRow(views.CategoryRowData{
					Name:      cat.Name,
					Completed: stats.CompletedCount(cat, done),
					Total:     stats.TotalCount(cat),
					Percent:   stats.CategoryPercent(cat, done),
					Complete:  stats.IsCategoryComplete(cat, done),
					Expanded:  true,
				}))
				for i, item := range shown.Items {
					fmt.Fprintln(a.io.out, views.RenderItemRow(views.ItemRowData{
						Index:      i + 1,
						Name:       item.Name,
						Difficulty: item.Difficulty,
						Done:       done.Done(item.ID),
					}))
				}
			}
			if !criteria.IsZero() {
				fmt.Fprintf(a.io.out, "\nshowing %d of %d problems\n", filtered.ItemCount(), a.tracker.Catalog().ItemCount())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive substring of the problem name")
	cmd.Flags().StringVar(&difficulty, "difficulty", "all", "all, easy, medium or hard")
	cmd.Flags().StringVar(&status, "status", "all", "all, done or undone")
	return cmd
}

func (a *app) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [problem]",
		Short: "Flip a problem between done and not done",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.tracker.ResolveItem(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if a.tracker.Toggle(cmd.Context(), item.ID).Done(item.ID) {
				fmt.Fprintf(a.io.out, "done: %s\n", item.Name)
			} else {
				fmt.Fprintf(a.io.out, "not done: %s\n", item.Name)
			}
			return nil
		},
	}
}

func (a *app) markCmd(use string, done bool) *cobra.Command {
	short := "Mark every problem in a category as done"
	if !done {
		short = "Mark every problem in a category as not done"
	}
	return &cobra.Command{
		Use:   use + " [category]",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.tracker.ResolveCategory(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if done {
				err = a.tracker.MarkAllDone(cmd.Context(), cat.ID)
			} else {
				err = a.tracker.MarkAllUndone(cmd.Context(), cat.ID)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.io.out, "%s: %s (%d problems)\n", use, cat.Name, len(cat.Items))
			return nil
		},
	}
}

func (a *app) resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all recorded progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var confirm tracker.Confirmer
			switch {
			case yes:
				confirm = tracker.ConfirmFunc(func(string) bool { return true })
			case a.io.interactive != nil && a.io.interactive():
				confirm = a.promptConfirmer()
			default:
				return errors.New("reset needs --yes when stdin is not a terminal")
			}
			if !a.tracker.ResetAll(cmd.Context(), confirm) {
				fmt.Fprintln(a.io.out, "reset cancelled")
				return nil
			}
			fmt.Fprintln(a.io.out, "progress reset")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func (a *app) promptConfirmer() tracker.Confirmer {
	return tracker.ConfirmFunc(func(prompt string) bool {
		fmt.Fprint(a.io.out, views.RenderConfirmPrompt(prompt)+" ")
		line, err := bufio.NewReader(a.io.in).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		default:
			return false
		}
	})
}

func (a *app) reportCmd() *cobra.Command {
	var raw bool
	var style string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a markdown progress report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			md := views.BuildReport(a.tracker.Summary())
			if raw {
				fmt.Fprint(a.io.out, md)
				return nil
			}
			if style == "" {
				style = a.cfg.UI.GlamourStyle
			}
			fmt.Fprintln(a.io.out, views.RenderMarkdown(md, style))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	cmd.Flags().StringVar(&style, "style", "", "glamour style (default from config)")
	return cmd
}
