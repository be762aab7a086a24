package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/harsh2b/WellMate/pkg/cli/config"
	server "github.com/harsh2b/WellMate/pkg/controller/http"
	"github.com/harsh2b/WellMate/pkg/domain/interfaces"
	"github.com/harsh2b/WellMate/pkg/repository/memory"
	"github.com/harsh2b/WellMate/pkg/usecase"
	"github.com/harsh2b/WellMate/pkg/utils/logging"
	"github.com/harsh2b/WellMate/pkg/utils/safe"
)

// selectRepository picks the session store for the serve command. Missing
// Firestore credentials are fatal; the in-memory store must be requested
// explicitly since it loses every record on restart.
func selectRepository(ctx context.Context, firestoreCfg *config.Firestore, memoryStore bool) (interfaces.Repository, error) {
	if firestoreCfg.IsConfigured() {
		return firestoreCfg.Configure(ctx)
	}

	if !memoryStore {
		return nil, goerr.New("Firestore is not configured; set --firestore-project-id or run with --memory-store")
	}

	logging.From(ctx).Warn("running with the in-memory store; all session data is lost on restart")
	return memory.New(), nil
}

func cmdServe() *cli.Command {
	var (
		memoryStore  bool
		webCfg       config.Web
		sentryCfg    config.Sentry
		openaiCfg    config.OpenAI
		firestoreCfg config.Firestore
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "memory-store",
				Usage:       "Use the volatile in-memory store instead of Firestore (development only)",
				Category:    "Firestore",
				Sources:     cli.EnvVars("WELLMATE_MEMORY_STORE"),
				Destination: &memoryStore,
			},
		},
		webCfg.Flags(),
		sentryCfg.Flags(),
		openaiCfg.Flags(),
		firestoreCfg.Flags(),
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.Default().Info("starting server",
				"web", webCfg,
				"sentry", sentryCfg,
				"openai", openaiCfg,
				"firestore", firestoreCfg,
				"memory_store", memoryStore,
			)

			if err := webCfg.Validate(); err != nil {
				return err
			}

			if err := sentryCfg.Configure(); err != nil {
				return err
			}

			gateway, err := openaiCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := selectRepository(ctx, &firestoreCfg, memoryStore)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(
				usecase.WithRepository(repo),
				usecase.WithResponseGateway(gateway),
			)

			httpServer := http.Server{
				Addr: webCfg.Addr(),
				Handler: server.New(uc,
					server.WithCookieSecret(webCfg.SecretKey()),
					server.WithCORSOrigins(webCfg.CORSOrigins()),
				),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.From(ctx).Info("shutting down", "signal", sig.String())

				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(ctx)
			}
		},
	}
}
