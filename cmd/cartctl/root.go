package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/sessioncart/internal/cart"
	"github.com/nikolayk812/sessioncart/internal/config"
	"github.com/nikolayk812/sessioncart/internal/domain"
	"github.com/nikolayk812/sessioncart/internal/logger"
	"github.com/nikolayk812/sessioncart/internal/repository"
	"github.com/nikolayk812/sessioncart/internal/session"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	cfg    config.Config
	logger zerolog.Logger
	pool   *pgxpool.Pool

	envFile    string
	sessionKey string
	userID     string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "cartctl",
		Short:         "Inspect and modify a session cart",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file read before the environment")
	root.PersistentFlags().StringVarP(&a.sessionKey, "session", "s", "", "session key, a new session is created when empty")
	root.PersistentFlags().StringVarP(&a.userID, "user", "u", "", "authenticated user id, the cart is mirrored to its profile")

	root.AddCommand(
		newAddCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
		newShowCmd(a),
		newProductsCmd(a),
		newProfilesCmd(a),
		newSessionsCmd(a),
	)

	return root
}

func (a *app) init(ctx context.Context) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is empty")
	}

	a.cfg = cfg
	a.logger = logger.New(logger.Options{
		Service: "cartctl",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	a.pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}

	return nil
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// withCart opens the session, runs fn against its cart and commits the
// session whether or not fn mutated it.
func (a *app) withCart(ctx context.Context, fn func(c *cart.Cart) error) (*session.Session, error) {
	store := repository.NewSession(a.pool)

	sess, err := session.Open(ctx, store, a.sessionKey, a.cfg.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("session.Open: %w", err)
	}

	c, err := cart.New(sess, domain.User{ID: a.userID},
		repository.NewProfile(a.pool),
		repository.NewProduct(a.pool),
		cart.WithLogger(a.logger.With().Str("session", sess.Key()).Logger()),
	)
	if err != nil {
		return nil, fmt.Errorf("cart.New: %w", err)
	}

	if err := fn(c); err != nil {
		return nil, err
	}

	if err := session.Commit(ctx, store, sess); err != nil {
		return nil, fmt.Errorf("session.Commit: %w", err)
	}

	a.logger.Debug().Str("session", sess.Key()).Int("items", c.Len()).Msg("session committed")

	return sess, nil
}
