package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/auth"
)

func newTokenCmd(opts *options) *cobra.Command {
	var (
		secret string
		user   internal.User
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a JWT for a user, for servers running with AUTH_MODE=jwt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				secret = os.Getenv("JWT_SECRET")
			}
			if secret == "" {
				return errors.New("--secret or JWT_SECRET is required")
			}
			now, err := opts.reference()
			if err != nil {
				return err
			}
			p := auth.NewJWTAuthProvider(secret, ttl, internal.NewNopLogger())
			token, err := p.GenerateToken(&user, now)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "HMAC secret, defaults to $JWT_SECRET")
	cmd.Flags().StringVar(&user.ID, "user-id", "", "User id to embed")
	cmd.Flags().StringVar(&user.Name, "name", "", "Display name to embed")
	cmd.Flags().Float64Var(&user.WeightKg, "weight", 0, "Body weight in kg to embed")
	cmd.Flags().DurationVar(&ttl, "ttl", auth.DefaultTokenTTL, "Token lifetime")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}
