package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecoquest/internal/config"
	"ecoquest/internal/domain"
	"ecoquest/internal/identity"
	"ecoquest/internal/infra"
	"ecoquest/internal/repositories"
	"ecoquest/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ecoquestctl",
		Short:         "Maintenance commands for the EcoQuest admin API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newMigrateCmd(), newCreateSuperAdminCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			sqlDB, err := infra.OpenPostgres(cfg.Postgres.URL)
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			if err := infra.Migrate(sqlDB); err != nil {
				return err
			}
			log.Info("migrations applied")
			return nil
		},
	}
}

func newCreateSuperAdminCmd() *cobra.Command {
	var in identity.NewIdentity

	cmd := &cobra.Command{
		Use:   "create-super-admin",
		Short: "Create the first super admin account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := infra.InitPostgresql(cfg.Postgres.URL, true, log)
			if err != nil {
				return err
			}
			defer infra.ClosePostgresql(db, log)

			in.Role = domain.RoleSuperAdmin
			id, err := createIdentity(cmd.Context(), db, in)
			if err != nil {
				return err
			}

			log.Info("super admin created", zap.String("account_id", id), zap.String("email", in.Email))
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&in.Email, "email", "", "sign-in email")
	cmd.Flags().StringVar(&in.Password, "password", "", "initial password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func createIdentity(ctx context.Context, db *gorm.DB, in identity.NewIdentity) (string, error) {
	accounts := repositories.NewAccountRepository(db)
	provisioner := identity.NewProvisioner(repositories.NewTransactionManager(db), accounts)

	var id string
	err := provisioner.WithSecondaryIdentity(ctx, func(si *identity.SecondaryIdentity) error {
		account, err := si.CreateAccount(ctx, in)
		if err != nil {
			return err
		}
		id = account.ID
		return nil
	})
	return id, err
}

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
