package cmd

import (
	"context"
	"fmt"
	"os"

	"carnet-backend/lib/configutil"
	configlibsql "carnet-backend/lib/configutil/libsql"
	"carnet-backend/lib/telemetry"

	ignoredb "carnet-backend/lib/ignorestore/db"
	keychaindb "carnet-backend/lib/keychain/db"
	"carnet-backend/lib/scrapers/semflo"
	"carnet-backend/services/carnet"

	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl  string              `json:"base_url"`
	Database configlibsql.Struct `json:"database"`
}

var (
	flagEmail    string
	flagPassword string
	flagRemember bool
)

var service *carnet.Service
var tel telemetry.Telemetry

var rootCmd = &cobra.Command{
	Use:   "carnet",
	Short: "carnet is a CLI for the school portal gradebook: course list, grades, statistics and reports.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		tel.Shutdown(context.Background())
	},
}

func setup(ctx context.Context) error {
	var err error
	tel, err = telemetry.SetupFromEnv(ctx, "carnet")
	if err != nil {
		return err
	}
	telemetry.InstrumentPerfStats(ctx)

	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if config.BaseUrl == "" {
		config.BaseUrl = "https://appsemflo.be"
	}
	if config.Database.File == "" {
		config.Database.File = "carnet.db"
	}

	database, err := config.Database.OpenDB()
	if err != nil {
		return err
	}
	for _, schema := range []string{ignoredb.Schema, keychaindb.Schema} {
		_, err = database.Exec(schema)
		if err != nil {
			return err
		}
	}

	client, err := semflo.NewClient(ctx, semflo.ClientOptions{
		BaseUrl: config.BaseUrl,
	})
	if err != nil {
		return err
	}

	service = carnet.NewService(carnet.Options{
		Client:   client,
		Database: database,
	})

	return login(ctx)
}

func login(ctx context.Context) error {
	email := flagEmail
	password := flagPassword
	remember := flagRemember

	if email == "" || password == "" {
		key, err := service.RememberedCredentials(ctx)
		if err != nil {
			return err
		}
		if key.Username == "" {
			return fmt.Errorf("no credentials: pass --email and --password, or run once with --remember")
		}
		email = key.Username
		password = key.Password
		remember = true
	}

	return service.Login(ctx, email, password, remember)
}

func Execute() {
	rootCmd.PersistentFlags().StringVar(&flagEmail, "email", "", "portal login email")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "portal login password")
	rootCmd.PersistentFlags().BoolVar(&flagRemember, "remember", false, "remember the credentials for future runs")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
