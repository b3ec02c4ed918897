package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"fleet-overtime/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	app     *App
	config  *config.Config
	cleanup func() error
}

// NewRootCommand creates the root cobra command with global flags. When app
// is nil the store and service stack are built lazily after flag overrides
// have been applied, so --db-backend and friends affect the store that gets
// opened.
func NewRootCommand(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    app,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "fot",
		Short: "Fleet overtime tracking for workshop mechanics",
		Long: `Fleet Overtime Tracker (fot) records overtime worked by workshop
mechanics, rolls it up into monthly buckets and enforces a rolling
two-month retention window.

EXAMPLES:
  fot mechanic add "Dana Flores" --code MEC-01     # Onboard a mechanic
  fot mechanic list                                # List mechanics and rollups
  fot log <id> --date 2026-08-10 --window 18:00-20:30 \
      --detail "hydraulic pump swap" --equipment EXC-004
  fot report <id>                                  # Every retained month
  fot report <id> --month 8 --year 2026            # One month
  fot sweep                                        # Sweep all mechanics
  fot mechanic remove <id>                         # Delete a mechanic

CONFIGURATION:
  Priority order: command-line flags > environment variables > .env > defaults

  FOT_DB_BACKEND           Storage backend, sqlite or buntdb (default: sqlite)
  FOT_DB_DIR               Database directory (default: ~/.fot)
  FOT_DB_FILENAME          Database filename (default: fot.db)
  FOT_DB_QUERY_TIMEOUT     Query timeout (default: 10s)
  FOT_DB_WRITE_TIMEOUT     Write timeout (default: 5s)
  FOT_SWEEP_SAMPLE_RATE    Chance a log triggers a sweep (default: 0.05)
  FOT_SWEEP_INTERVAL       Scheduled sweep interval (default: 24h)
  FOT_LOG_LEVEL            Log level (default: info)
  FOT_APP_TIMEOUT          Command timeout (default: 60s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			root.applyFlagOverrides()
			if root.app != nil {
				return nil
			}
			app, cleanup, err := NewAppWithDefaultStore(root.config)
			if err != nil {
				return err
			}
			root.app = app
			root.cleanup = cleanup
			return nil
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	defer func() {
		if r.cleanup != nil {
			_ = r.cleanup()
		}
	}()
	return r.cmd.Execute()
}

// applyFlagOverrides updates the configuration with values from global flags
func (r *RootCommand) applyFlagOverrides() {
	flags := r.cmd.PersistentFlags()

	if backend, _ := flags.GetString("db-backend"); backend != "" {
		r.config.Database.Backend = backend
	}
	if dir, _ := flags.GetString("db-dir"); dir != "" {
		r.config.Database.Dir = dir
	}
	if filename, _ := flags.GetString("db-filename"); filename != "" {
		r.config.Database.Filename = filename
	}
	if level, _ := flags.GetString("log-level"); level != "" {
		r.config.Logging.Level = level
	}
	if timeout, _ := flags.GetDuration("app-timeout"); timeout > 0 {
		r.config.Application.Timeout = timeout
	}
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-backend", "", "Storage backend (overrides FOT_DB_BACKEND)")
	flags.String("db-dir", "", "Database directory (overrides FOT_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides FOT_DB_FILENAME)")
	flags.String("log-level", "", "Log level (overrides FOT_LOG_LEVEL)")
	flags.Duration("app-timeout", 0, "Command timeout (overrides FOT_APP_TIMEOUT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Mechanic lifecycle commands
	mechanicCmd := &cobra.Command{
		Use:   "mechanic",
		Short: "Manage mechanics",
	}

	var mechanicCode string
	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Onboard a new mechanic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewMechanicCommand(r.app).Add(ctx, args[0], mechanicCode)
		},
	}
	addCmd.Flags().StringVar(&mechanicCode, "code", "", "Workshop code for the mechanic")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List mechanics with their overtime rollups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewMechanicCommand(r.app).List(ctx)
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove [id]",
		Short: "Delete a mechanic and all recorded overtime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewMechanicCommand(r.app).Remove(ctx, args[0])
		},
	}
	mechanicCmd.AddCommand(addCmd, listCmd, removeCmd)

	// Log command
	var (
		logDate      string
		logWindows   []string
		logDetails   []string
		logEquipment []string
	)
	logCmd := &cobra.Command{
		Use:   "log [mechanic-id]",
		Short: "Log overtime for a mechanic",
		Long: `Log an overtime submission for a mechanic. Submissions on the same
calendar day merge into one entry; repeated windows accumulate.

Examples:
  fot log <id> --date 2026-08-10 --window 18:00-20:30
  fot log <id> --date 2026-08-10 --window 06:00-08:00 --window 18:00- \
      --detail "brake rebuild" --equipment LDR-002`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewLogCommand(r.app).Execute(ctx, args[0], logDate, logWindows, logDetails, logEquipment)
		},
	}
	logCmd.Flags().StringVar(&logDate, "date", "", "Calendar day of the overtime (YYYY-MM-DD)")
	logCmd.Flags().StringArrayVar(&logWindows, "window", nil, "Time window HH:MM-HH:MM, repeatable")
	logCmd.Flags().StringArrayVar(&logDetails, "detail", nil, "Work detail, repeatable")
	logCmd.Flags().StringArrayVar(&logEquipment, "equipment", nil, "Equipment reference, repeatable")
	_ = logCmd.MarkFlagRequired("date")
	_ = logCmd.MarkFlagRequired("window")

	// Report command
	var (
		reportMonth int
		reportYear  int
	)
	reportCmd := &cobra.Command{
		Use:   "report [mechanic-id]",
		Short: "Show a mechanic's monthly overtime report",
		Long: `Show a mechanic's overtime by month. Without --month and --year the
report covers every retained bucket.

Examples:
  fot report <id>
  fot report <id> --month 8 --year 2026`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewReportCommand(r.app).Execute(ctx, args[0], reportMonth, reportYear)
		},
	}
	reportCmd.Flags().IntVar(&reportMonth, "month", 0, "Month to report on (1-12)")
	reportCmd.Flags().IntVar(&reportYear, "year", 0, "Year to report on")

	// Sweep command
	var sweepDaemon bool
	sweepCmd := &cobra.Command{
		Use:   "sweep [mechanic-id]",
		Short: "Remove overtime buckets outside the retention window",
		Long: `Remove monthly buckets older than the rolling retention window
(the current month and the month before it stay). Without an id the
sweep covers every mechanic. With --daemon the sweep repeats on the
configured interval until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sweepDaemon {
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				r.app.sweeper.RunScheduled(ctx, r.config.Sweep.Interval)
				return nil
			}

			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			mechanicID := ""
			if len(args) == 1 {
				mechanicID = args[0]
			}
			return NewSweepCommand(r.app).Execute(ctx, mechanicID)
		},
	}
	sweepCmd.Flags().BoolVar(&sweepDaemon, "daemon", false, "Keep sweeping on the configured interval")

	r.cmd.AddCommand(mechanicCmd, logCmd, reportCmd, sweepCmd)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}
