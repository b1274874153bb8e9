package main

import (
	"bufio"
	"errors"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/batch-dashboard/internal/client/form"
	"github.com/heartmarshall/batch-dashboard/internal/client/tui"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

func (c *cli) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Long: `Sign in with email and password. The password is read from stdin
when --password is not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			user, err := c.account.Login(cmd.Context(), domain.LoginCredentials{Email: email, Password: password})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", user.Email)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.account.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			user, err := c.account.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), user.Email)
			return nil
		},
	}
}

func (c *cli) settingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Show the saved batch settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			s, err := c.batch.GetSettings(cmd.Context())
			if err != nil {
				return err
			}
			printInput(cmd, form.InputFrom(s))
			return nil
		},
	}
}

func (c *cli) startCmd() *cobra.Command {
	var in form.Input
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the master batch",
		Long: `Start the master batch. Settings not given as flags are taken from
the saved settings on the server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("target-percentage") || !flags.Changed("import-setup-id") || !flags.Changed("hourly-batch-count") {
				saved, err := c.batch.GetSettings(cmd.Context())
				if err != nil {
					return err
				}
				def := form.InputFrom(saved)
				if !flags.Changed("target-percentage") {
					in.TargetPercentage = def.TargetPercentage
				}
				if !flags.Changed("import-setup-id") {
					in.ImportSetupID = def.ImportSetupID
				}
				if !flags.Changed("hourly-batch-count") {
					in.HourlyBatchCount = def.HourlyBatchCount
				}
			}

			ctrl := form.NewController(c.batch, c.log, form.WithSuccessDisplay(c.cfg.SuccessDisplay))
			defer ctrl.Close()

			st, err := ctrl.Submit(cmd.Context(), in)
			if err != nil {
				return err
			}
			return reportState(cmd, st)
		},
	}
	cmd.Flags().StringVar(&in.TargetPercentage, "target-percentage", "", "target percentage (0-100)")
	cmd.Flags().StringVar(&in.ImportSetupID, "import-setup-id", "", "import setup ID (positive integer)")
	cmd.Flags().StringVar(&in.HourlyBatchCount, "hourly-batch-count", "", "hourly batch count (1-100)")
	return cmd
}

func (c *cli) stopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running master batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			data, err := c.batch.StopMasterBatch(cmd.Context())
			if err != nil {
				return err
			}
			message, _ := data["message"].(string)
			if message == "" {
				message = "Batch stopped"
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
}

func (c *cli) authURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth-url",
		Short: "Print the calendar authorization URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			u, err := c.batch.GetAuthURL(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}
}

func (c *cli) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl := form.NewController(c.batch, c.log, form.WithSuccessDisplay(c.cfg.SuccessDisplay))
			defer ctrl.Close()

			m := tui.New(cmd.Context(), c.account, c.batch, ctrl, c.guard, c.log)
			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
}

func reportState(cmd *cobra.Command, st form.State) error {
	switch st := st.(type) {
	case form.SuccessDisplayed:
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, st.Message)
		if st.Result != nil && st.Result.TaskID != "" {
			fmt.Fprintf(out, "Task ID: %s\n", st.Result.TaskID)
		}
		return nil
	case form.Idle:
		return fieldError("invalid settings", st.FieldErrors)
	case form.ErrorDisplayed:
		if len(st.FieldErrors) > 0 {
			return fieldError(st.Message, st.FieldErrors)
		}
		return errors.New(st.Message)
	default:
		return fmt.Errorf("unexpected form state %T", st)
	}
}

func fieldError(message string, fe form.FieldErrors) error {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString(message)
	for _, f := range fields {
		label := form.Labels[f]
		if label == "" {
			label = f
		}
		fmt.Fprintf(&b, "\n  %s: %s", label, fe[f])
	}
	return errors.New(b.String())
}

func printInput(cmd *cobra.Command, in form.Input) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-20s %s\n", form.Labels[domain.FieldTargetPercentage]+":", in.TargetPercentage)
	fmt.Fprintf(out, "%-20s %s\n", form.Labels[domain.FieldImportSetupID]+":", in.ImportSetupID)
	fmt.Fprintf(out, "%-20s %s\n", form.Labels[domain.FieldHourlyBatchCount]+":", in.HourlyBatchCount)
}
