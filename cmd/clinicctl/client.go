package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/infrastructure/fixtures"
	"github.com/imagehealth/clinic-dashboard/internal/pkg/config"
	"github.com/imagehealth/clinic-dashboard/internal/tui"
	"github.com/imagehealth/clinic-dashboard/internal/ui/client"
	"github.com/imagehealth/clinic-dashboard/internal/ui/login"
	"github.com/imagehealth/clinic-dashboard/internal/ui/session"
	"github.com/imagehealth/clinic-dashboard/internal/ui/view"
	"github.com/imagehealth/clinic-dashboard/pkg/logger"
)

// clientEnv is everything a client command needs.
type clientEnv struct {
	cfg   *config.ClientConfig
	api   *client.Client
	store *session.StorageProvider
	log   zerolog.Logger
}

func newClientEnv(ctx context.Context) (*clientEnv, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Init(logger.Options{Level: logLevel(cfg.LogLevel)})
	return &clientEnv{
		cfg:   cfg,
		api:   client.New(cfg.BaseURL, cfg.Timeout),
		store: session.NewStorageProvider(session.NewFileStorage(cfg.StoragePath)),
		log:   logger.Component("client"),
	}, nil
}

var (
	loginUsername      string
	loginPassword      string
	loginPasswordStdin bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		env, err := newClientEnv(ctx)
		if err != nil {
			return err
		}

		password := loginPassword
		if loginPasswordStdin {
			password, err = readLine(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
		}

		// One-shot: the form's delayed effects have nothing to animate.
		noDelay := login.SchedulerFunc(func(time.Duration, func()) {})
		page := view.NewLoginPage()
		flow := login.NewFlow(page, env.api, env.store, noDelay, env.log)
		if err := flow.Submit(ctx, login.Credentials{Username: loginUsername, Password: password}); err != nil {
			return err
		}

		st := page.State()
		if st.ErrorVisible {
			return errors.New(st.Error)
		}
		id, err := env.store.Identity(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Signed in as %s, %s\n", st.Label, id.DisplayName(), id.ClinicName)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newClientEnv(cmd.Context())
		if err != nil {
			return err
		}
		if err := session.NewContext(env.store, env.log).End(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the identity the server sees for the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		env, err := newClientEnv(ctx)
		if err != nil {
			return err
		}
		token, err := env.store.Token(ctx)
		if err != nil {
			return err
		}
		id, err := env.api.Me(ctx, token)
		if errors.Is(err, client.ErrUnauthorized) {
			return errors.New("not signed in")
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\nclinic: %s\nemoc: %t\n", id.DisplayName(), id.ClinicName, id.HasEmoc)
		return nil
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive terminal dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		env, err := newClientEnv(ctx)
		if err != nil {
			return err
		}
		demo, err := demoAccounts()
		if err != nil {
			return err
		}
		return tui.Run(ctx, tui.Options{
			Auth:  env.api,
			Fetch: env.fetchDashboard,
			Store: env.store,
			Demo:  demo,
			Log:   env.log,
		})
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "staff username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password")
	loginCmd.Flags().BoolVar(&loginPasswordStdin, "password-stdin", false, "read the password from stdin")
}

func (e *clientEnv) fetchDashboard(ctx context.Context) (*domain.Dataset, error) {
	token, err := e.store.Token(ctx)
	if err != nil {
		return nil, err
	}
	return e.api.Dashboard(ctx, token)
}

var roleLabels = map[string]string{
	domain.RoleAdmin:     "Admin",
	domain.RoleManager:   "Manager",
	domain.RoleEmocStaff: "EMOC Staff",
	domain.RoleCounselor: "Counselor",
}

// demoAccounts lists the seeded accounts in shortcut order.
func demoAccounts() ([]tui.DemoAccount, error) {
	dir, err := fixtures.DemoAccounts()
	if err != nil {
		return nil, err
	}
	out := make([]tui.DemoAccount, 0, len(dir.Accounts))
	for _, a := range dir.Accounts {
		out = append(out, tui.DemoAccount{Label: roleLabels[a.Role], Username: a.Username, Password: a.Password})
	}
	return out, nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
