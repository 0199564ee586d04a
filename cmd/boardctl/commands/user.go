package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	userrepo "github.com/binharademo/trelloclone/internal/adapter/postgres/user"
	"github.com/binharademo/trelloclone/internal/auth"
	authsvc "github.com/binharademo/trelloclone/internal/service/auth"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userCreateFlags struct {
	email    string
	username string
	password string
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a user and print an access token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		jwt := auth.NewJWTManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer, e.cfg.Auth.AccessTokenTTL)
		svc := authsvc.NewService(e.logger, userrepo.New(e.pool), jwt, e.cfg.Auth)

		result, err := svc.Register(ctx, authsvc.RegisterInput{
			Email:    userCreateFlags.email,
			Username: userCreateFlags.username,
			Password: userCreateFlags.password,
		})
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}

		printSuccess("created user %s (%s)", result.User.Username, result.User.ID)
		fmt.Println(result.AccessToken)
		return nil
	},
}

func init() {
	f := userCreateCmd.Flags()
	f.StringVar(&userCreateFlags.email, "email", "", "email address")
	f.StringVar(&userCreateFlags.username, "username", "", "display name")
	f.StringVar(&userCreateFlags.password, "password", "", "password (8 to 72 characters)")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("username")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
}
