package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/showcase/internal/api"
	"github.com/llehouerou/showcase/internal/errmsg"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the content API",
	Long: `Serves published content under /api/{kind} and the admin surface under
/api/admin. Admin routes require the configured bearer token.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc, s, err := openService(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	sc := cfg.GetServerConfig()
	if serveAddr != "" {
		sc.Addr = serveAddr
	}
	if !cfg.HasAdminToken() && !sc.AllowUnauthenticated {
		logger.Warn("no admin token configured, admin API is disabled")
	}

	srv := api.NewServer(svc, logger, api.Options{
		Addr:                 sc.Addr,
		AdminToken:           sc.AdminToken,
		AllowUnauthenticated: sc.AllowUnauthenticated,
		ShutdownTimeout:      sc.ShutdownTimeout(),
	})
	logger.Info("listening", zap.String("addr", sc.Addr))
	if err := srv.ListenAndServe(ctx); err != nil {
		return errmsg.Wrap(errmsg.OpServe, err)
	}
	return nil
}
