package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/serranotex/serrano-tex-ims/internal/application/auth"
	"github.com/serranotex/serrano-tex-ims/internal/application/dto"
	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/access"
	"github.com/serranotex/serrano-tex-ims/internal/infrastructure/postgres"
	"github.com/serranotex/serrano-tex-ims/pkg/config"
	"github.com/serranotex/serrano-tex-ims/pkg/logger"
)

func connect(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return cfg, pool, nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones SQL pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			log.Info().Strs("migrations", applied).Int("count", len(applied)).Msg("migraciones aplicadas")
			return nil
		},
	}
}

func newSeedAdminCmd() *cobra.Command {
	var email, password, name string
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Crea un usuario admin (primer arranque)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
				Secret:     cfg.JWT.Secret,
				ExpMinutes: cfg.JWT.Expiration,
				Issuer:     cfg.JWT.Issuer,
			}, passwordPolicy(cfg.Security))
			u, err := uc.Register(ctx, dto.RegisterRequest{
				Email:    email,
				Password: password,
				Name:     name,
				Role:     access.RoleAdmin.String(),
			})
			if err != nil {
				printFieldErrors(cmd, err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin creado: %s (%s)\n", u.Email, u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email del admin")
	cmd.Flags().StringVar(&password, "password", "", "contraseña del admin")
	cmd.Flags().StringVar(&name, "name", "Administrador", "nombre visible")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// printFieldErrors vuelca los mensajes de un domain.ValidationError, campo por campo.
func printFieldErrors(cmd *cobra.Command, err error) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	out := cmd.ErrOrStderr()
	for _, e := range verr.Errors {
		fmt.Fprintf(out, "- %s\n", e)
	}
	fields := make([]string, 0, len(verr.Fields))
	for f := range verr.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		for _, e := range verr.Fields[f] {
			fmt.Fprintf(out, "- %s: %s\n", f, e)
		}
	}
}
