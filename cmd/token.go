package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/frahmantamala/budget-tracker/pkg/logger"
	"github.com/spf13/cobra"
)

var tokenUserID int64

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for an existing user",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if tokenUserID <= 0 {
			return fmt.Errorf("--user is required")
		}

		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		gdb, sdb, err := initDB(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer sdb.Close()

		svc, err := NewServices(cfg, gdb, sdb, logger.L())
		if err != nil {
			return err
		}

		u, err := svc.Users.GetByID(ctx, tokenUserID)
		if err != nil {
			return fmt.Errorf("failed to find user %d: %w", tokenUserID, err)
		}

		token, expiresAt, err := svc.Tokens.Issue(u.ID)
		if err != nil {
			return fmt.Errorf("failed to issue token: %w", err)
		}

		fmt.Println(token)
		fmt.Println("expires:", expiresAt.Format(time.RFC3339))
		return nil
	},
}

func init() {
	tokenCmd.Flags().Int64VarP(&tokenUserID, "user", "u", 0, "user id the token is issued for")
}
