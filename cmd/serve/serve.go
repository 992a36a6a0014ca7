// Package serve handles the HTTP webhook command
package serve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"fjacquet/financas/cmd/root"
	"fjacquet/financas/internal/logging"
)

const (
	// maxConnections keeps webhook traffic strictly sequential.
	maxConnections  = 1
	shutdownTimeout = 10 * time.Second
)

// Port overrides server.port when set.
var Port int

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the WhatsApp webhook server",
	Long: `Run an HTTP server that answers Twilio WhatsApp webhooks with TwiML on
server.path (default /whatsapp). POST /teste accepts {"mensagem": "..."} and
answers {"resposta": "..."} for manual testing.`,
	Args: cobra.NoArgs,
	RunE: serveFunc,
}

func init() {
	Cmd.Flags().IntVarP(&Port, "port", "p", 0, "Listen port (default: server.port)")
}

func serveFunc(cmd *cobra.Command, args []string) error {
	app, err := root.App()
	if err != nil {
		return err
	}
	cfg := app.GetConfig()
	port := cfg.Server.Port
	if Port != 0 {
		port = Port
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", port, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := app.GetLogger()
	log.Info("Starting webhook server",
		logging.F(logging.FieldPort, port),
		logging.F(logging.FieldPath, cfg.Server.Path),
		logging.F(logging.FieldStore, cfg.Data.Backend))

	return Run(ctx, ln, NewHandler(app.GetService(), cfg.Server.Path, log), log)
}

// Run serves handler on ln until ctx is done, then shuts the server down
// gracefully. ln is wrapped so only one connection is served at a time.
func Run(ctx context.Context, ln net.Listener, handler http.Handler, log logging.Logger) error {
	if log == nil {
		log = logging.Discard()
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		// idle keep-alive connections would hold the only slot
		IdleTimeout:    2 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(netutil.LimitListener(ln, maxConnections)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down webhook server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
