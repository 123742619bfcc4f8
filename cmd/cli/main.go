package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sundialcare/careadmin/cmd/cli/commands"
	"github.com/sundialcare/careadmin/internal/config"
	"github.com/sundialcare/careadmin/pkg/clients/careapi"
	"github.com/sundialcare/careadmin/pkg/clients/gmailclient"
	"github.com/sundialcare/careadmin/pkg/clients/sheetsclient"
	"github.com/sundialcare/careadmin/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "careadmin",
		Short: "Care admin CLI - Manage caregiver availability and visit matching",
		Long:  `A CLI tool for managing caregiver availability, ranking candidates for visits, and publishing schedules.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.ListCaregiversCmd(appRef()))
	rootCmd.AddCommand(commands.ShowAvailabilityCmd(appRef()))
	rootCmd.AddCommand(commands.EditAvailabilityCmd(appRef()))
	rootCmd.AddCommand(commands.AddTimeOffCmd(appRef()))
	rootCmd.AddCommand(commands.RemoveTimeOffCmd(appRef()))
	rootCmd.AddCommand(commands.ListVisitsCmd(appRef()))
	rootCmd.AddCommand(commands.MatchCaregiversCmd(appRef()))
	rootCmd.AddCommand(commands.PreviewScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.PublishScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.SendScheduleNoticeCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, allocating it so command constructors
// can capture the pointer before initApp fills it in
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, and clients
func initApp() error {
	var err error
	appRef().Ctx = context.Background()

	// Initialize logger
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	// Initialize scheduling backend client
	app.Logger.Info("Initializing care API client")
	app.CareClient = careapi.NewClient(app.Ctx, app.Cfg)
	app.Logger.Debug("Care API client initialized successfully")

	// Load OAuth client configuration for Google services
	app.Logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load OAuth client config: %w", err)
	}
	app.Logger.Debug("OAuth configuration loaded successfully")

	// Initialize sheets client
	app.Logger.Info("Initializing sheets client")
	app.SheetsClient, err = sheetsclient.NewClient(app.Ctx, oauthCfg)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}
	app.Logger.Debug("Sheets client initialized successfully")

	// Initialize gmail client (uses same OAuth token from sheets client)
	app.Logger.Info("Initializing gmail client")
	app.GmailClient, err = gmailclient.NewClient(app.Ctx, oauthCfg, app.SheetsClient.Token(),
		app.Cfg.GmailUserID, app.Cfg.GmailSender)
	if err != nil {
		return fmt.Errorf("failed to create gmail client: %w", err)
	}
	app.Logger.Debug("Gmail client initialized successfully")

	return nil
}
