package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/auth"
	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	seedEmail    string
	seedPassword string
)

// defaultCategories are created for the demo user.
var defaultCategories = []category.CreateCategoryDTO{
	{Name: "Food", Color: "#EF4444"},
	{Name: "Transport", Color: "#F59E0B"},
	{Name: "Housing", Color: "#10B981"},
	{Name: "Entertainment", Color: "#8B5CF6"},
	{Name: "Other"},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Create a demo user and its default categories. Existing rows are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		lg := logger.L()

		gdb, sdb, err := initDB(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer sdb.Close()

		svc, err := NewServices(cfg, gdb, sdb, lg)
		if err != nil {
			return err
		}
		return seed(ctx, svc)
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedEmail, "email", "demo@example.com", "demo user email")
	seedCmd.Flags().StringVar(&seedPassword, "password", "demo1234", "demo user password")
}

func seed(ctx context.Context, svc *Services) error {
	var userID int64
	resp, err := svc.Auth.Register(ctx, auth.RegisterDTO{Email: seedEmail, Password: seedPassword})
	switch {
	case err == nil:
		userID = resp.User.ID
		fmt.Println("Seeded demo user:", resp.User.Email)
	case errors.Is(err, internal.ErrEmailTaken):
		existing, err := svc.Users.GetByEmail(ctx, seedEmail)
		if err != nil {
			return fmt.Errorf("failed to look up demo user: %w", err)
		}
		userID = existing.ID
		fmt.Println("demo user already exists:", existing.Email)
	default:
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	for _, dto := range defaultCategories {
		c, err := svc.Categories.Create(ctx, userID, dto)
		if errors.Is(err, internal.ErrCategoryNameTaken) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", dto.Name, err)
		}
		fmt.Println("Seeded category:", c.Name)
	}
	return nil
}
