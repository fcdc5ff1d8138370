package main

import (
	"context"
	"fmt"

	"github.com/samber/do"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/marsestates/brokerage-api/internal/bootstrap"
	"github.com/marsestates/brokerage-api/internal/modules/model"
	"github.com/marsestates/brokerage-api/internal/modules/repo"
)

// Admin accounts are provisioned here, there is no signup endpoint.
func newAdminCmd() *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage back-office accounts",
	}

	var username, password string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return fmt.Errorf("both --username and --password are required")
			}

			inj := bootstrap.BuildContainer()
			do.MustInvoke[*gorm.DB](inj) // runs migrations
			admins := do.MustInvoke[repo.AdminRepo](inj)

			ctx := context.Background()
			if existing, err := admins.GetByUsername(ctx, username); err != nil {
				return err
			} else if existing != nil {
				return fmt.Errorf("admin %q already exists", username)
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			if err := admins.Create(ctx, &model.AdminUser{
				Username:     username,
				PasswordHash: string(hash),
			}); err != nil {
				return err
			}
			fmt.Printf("admin %q created\n", username)
			return nil
		},
	}
	createCmd.Flags().StringVar(&username, "username", "", "admin username")
	createCmd.Flags().StringVar(&password, "password", "", "admin password")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether an admin account exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				return fmt.Errorf("--username is required")
			}

			inj := bootstrap.BuildContainer()
			do.MustInvoke[*gorm.DB](inj)
			admins := do.MustInvoke[repo.AdminRepo](inj)

			admin, err := admins.GetByUsername(context.Background(), username)
			if err != nil {
				return err
			}
			if admin == nil {
				fmt.Printf("admin %q not found\n", username)
				return nil
			}
			fmt.Printf("admin %q exists (id=%d)\n", admin.Username, admin.ID)
			return nil
		},
	}
	checkCmd.Flags().StringVar(&username, "username", "", "admin username")

	adminCmd.AddCommand(createCmd)
	adminCmd.AddCommand(checkCmd)
	return adminCmd
}
