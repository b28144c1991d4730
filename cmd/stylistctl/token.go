package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/yanqian/closet-stylist/internal/domain/auth"
	"github.com/yanqian/closet-stylist/internal/infra/config"
)

type tokenOptions struct {
	userID string
	email  string
	secret string
	issuer string
	ttl    time.Duration
}

func newTokenCmd() *cobra.Command {
	opts := &tokenOptions{}
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token",
		Long:  "Signs an HS256 token for a user id with the service secret. The secret comes from --secret or the service configuration.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToken(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.userID, "user", "u", "", "User id placed in the sub claim (required)")
	cmd.Flags().StringVar(&opts.email, "email", "", "Optional email claim")
	cmd.Flags().StringVar(&opts.secret, "secret", "", "Signing secret; defaults to auth.jwtSecret from config")
	cmd.Flags().StringVar(&opts.issuer, "issuer", "closet-stylist", "Issuer claim; defaults to auth.issuer when the secret comes from config")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", 0, "Token lifetime; defaults to auth.tokenTtl")
	if err := cmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}
	return cmd
}

func runToken(cmd *cobra.Command, opts *tokenOptions) error {
	authCfg := auth.Config{Secret: opts.secret, Issuer: opts.issuer, TokenTTL: opts.ttl}
	if authCfg.Secret == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		authCfg.Secret = cfg.Auth.JWTSecret
		if !cmd.Flags().Changed("issuer") {
			authCfg.Issuer = cfg.Auth.Issuer
		}
		if authCfg.TokenTTL == 0 {
			authCfg.TokenTTL = cfg.Auth.TokenTTL
		}
	}
	if authCfg.TokenTTL == 0 {
		authCfg.TokenTTL = time.Hour
	}

	svc := auth.NewService(authCfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	token, err := svc.IssueToken(cmd.Context(), opts.userID, opts.email)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
