package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"freelancernow/internal/domain/user"
	"freelancernow/internal/infrastructure/crypto"
	"freelancernow/internal/infrastructure/postgres"
	"freelancernow/internal/shared/auth"
	"freelancernow/internal/shared/config"
)

// store bundles what database-backed commands need.
type store struct {
	cfg   *config.Config
	db    *postgres.DB
	users *postgres.UserRepository
}

func openStore(ctx context.Context, log *zap.Logger) (*store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	log.Info("connected to database", zap.String("host", cfg.Database.Host))

	encryptor, err := crypto.NewEncryptor(cfg.Encryption.Key)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create encryptor: %w", err)
	}

	return &store{cfg: cfg, db: db, users: postgres.NewUserRepository(db, encryptor)}, nil
}

func (s *store) Close() {
	s.db.Close()
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := opts.logger()
			defer log.Sync()

			env, err := openStore(cmd.Context(), log)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.db.Migrate(cmd.Context()); err != nil {
				return err
			}
			log.Info("schema applied")
			return nil
		},
	}
}

func newUserCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage profiles",
	}
	cmd.AddCommand(newUserCreateCmd(opts), newUserTokenCmd(opts))
	return cmd
}

func newUserCreateCmd(opts *rootOptions) *cobra.Command {
	var params user.CreateParams
	var userType string

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a profile",
		Example: "  admin user create --email ana@example.com --name Ana --type freelancer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := opts.logger()
			defer log.Sync()

			env, err := openStore(cmd.Context(), log)
			if err != nil {
				return err
			}
			defer env.Close()

			params.UserType = user.Type(userType)
			u, err := user.NewService(env.users, log).CreateUser(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s)\n", u.ID, u.UserType)
			return nil
		},
	}
	cmd.Flags().StringVar(&params.Email, "email", "", "email address")
	cmd.Flags().StringVar(&params.Name, "name", "", "display name")
	cmd.Flags().StringVar(&userType, "type", string(user.TypeFreelancer), "freelancer or company")
	cmd.MarkFlagRequired("email")
	return cmd
}

func newUserTokenCmd(opts *rootOptions) *cobra.Command {
	var (
		userID int64
		email  string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for an existing profile",
		Example: "  admin user token --user-id 42\n" +
			"  admin user token --email ana@example.com",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := opts.logger()
			defer log.Sync()

			env, err := openStore(cmd.Context(), log)
			if err != nil {
				return err
			}
			defer env.Close()

			svc := user.NewService(env.users, log)
			var u *user.User
			if cmd.Flags().Changed("email") {
				u, err = svc.GetProfileByEmail(cmd.Context(), email)
			} else {
				u, err = svc.GetProfile(cmd.Context(), userID)
			}
			if err != nil {
				return err
			}

			token, err := auth.NewJWT(env.cfg.JWT.Secret).Generate(u.ID, u.Email)
			if err != nil {
				return err
			}
			log.Info("issued token", zap.Int64("user_id", u.ID))
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user-id", 0, "profile ID")
	cmd.Flags().StringVar(&email, "email", "", "registered email address")
	cmd.MarkFlagsOneRequired("user-id", "email")
	cmd.MarkFlagsMutuallyExclusive("user-id", "email")
	return cmd
}
