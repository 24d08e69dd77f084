package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"studenthome_backend/internals/configs"
	"studenthome_backend/internals/constants"
)

type TokenParams struct {
	GoogleID string
	Roles    []string
	Timezone string
	TTL      time.Duration
}

// MintToken signs an HS256 access token carrying the claims AuthJWT reads.
func MintToken(secret string, p TokenParams, now time.Time) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", fmt.Errorf("JWT_SECRET is not set")
	}
	if strings.TrimSpace(p.GoogleID) == "" {
		return "", fmt.Errorf("google id is required")
	}
	if p.TTL <= 0 {
		return "", fmt.Errorf("ttl must be positive")
	}

	claims := jwt.MapClaims{
		"google_id": p.GoogleID,
		"sub":       p.GoogleID,
		"jti":       uuid.NewString(),
		"iat":       now.Unix(),
		"exp":       now.Add(p.TTL).Unix(),
	}
	if len(p.Roles) > 0 {
		claims["roles"] = p.Roles
	}
	if p.Timezone != "" {
		claims["timezone"] = p.Timezone
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func NewTokenCommand() *cobra.Command {
	var p TokenParams
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if p.Timezone != "" {
				if _, err := time.LoadLocation(p.Timezone); err != nil {
					return fmt.Errorf("invalid --timezone: %w", err)
				}
			}
			tok, err := MintToken(configs.JWTSecret, p, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&p.GoogleID, "google-id", "", "Account google id")
	cmd.Flags().StringSliceVar(&p.Roles, "roles", []string{constants.RoleStudent}, "Roles claim")
	cmd.Flags().StringVar(&p.Timezone, "timezone", "", "Timezone claim")
	cmd.Flags().DurationVar(&p.TTL, "ttl", 24*time.Hour, "Token lifetime")
	return cmd
}
