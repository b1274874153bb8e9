package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/batch-dashboard/internal/app"
	"github.com/heartmarshall/batch-dashboard/internal/client/account"
	"github.com/heartmarshall/batch-dashboard/internal/client/api"
	"github.com/heartmarshall/batch-dashboard/internal/client/batch"
	"github.com/heartmarshall/batch-dashboard/internal/client/guard"
	"github.com/heartmarshall/batch-dashboard/internal/client/session"
	"github.com/heartmarshall/batch-dashboard/internal/config"
)

var errNotSignedIn = errors.New("not signed in, run `dashboard login` first")

// cli holds what every subcommand needs. It is filled by the root
// command's PersistentPreRunE.
type cli struct {
	apiURL      string
	sessionFile string

	cfg     *config.ClientConfig
	log     *slog.Logger
	logFile io.Closer

	session *session.Store
	account *account.Client
	batch   *batch.Client
	guard   *guard.Guard
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Batch dashboard client",
		Long:          "Sign in to the batch API, inspect settings and start or stop the master batch.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return c.close()
		},
	}

	root.PersistentFlags().StringVar(&c.apiURL, "api-url", "", "batch API base URL (overrides DASHBOARD_API_URL)")
	root.PersistentFlags().StringVar(&c.sessionFile, "session-file", "", "session file path (overrides DASHBOARD_SESSION_FILE)")

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.settingsCmd(),
		c.startCmd(),
		c.stopCmd(),
		c.authURLCmd(),
		c.tuiCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}
	if c.apiURL != "" {
		cfg.APIURL = c.apiURL
	}
	if c.sessionFile != "" {
		cfg.SessionFile = c.sessionFile
	}
	c.cfg = cfg

	// Logs go to a file when one is configured so they never interleave
	// with command output or the terminal UI.
	var logOut io.Writer = cmd.ErrOrStderr()
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o700); err != nil {
			return fmt.Errorf("dashboard: create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("dashboard: open log file: %w", err)
		}
		c.logFile = f
		logOut = f
	}
	c.log = app.NewLoggerTo(logOut, cfg.Log.LogConfig())

	c.session = session.NewStore(session.NewFileBackend(cfg.SessionFile), c.log)

	apiClient, err := api.NewClient(cfg.APIURL, c.session, api.WithLogger(c.log))
	if err != nil {
		return err
	}
	c.account = account.NewClient(apiClient, c.session, c.log)
	c.batch = batch.NewClient(apiClient, c.log)
	c.guard = guard.New(c.session)
	return nil
}

func (c *cli) close() error {
	if c.logFile == nil {
		return nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	return err
}

// requireSession applies the dashboard guard to a protected command.
func (c *cli) requireSession() error {
	if d := c.guard.Check(guard.PathDashboard); !d.Render {
		return errNotSignedIn
	}
	return nil
}
