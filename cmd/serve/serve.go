// Package serve runs the upload server
package serve

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fjacquet/stmt-ledger/cmd/root"
	"fjacquet/stmt-ledger/internal/api"
	"fjacquet/stmt-ledger/internal/parser"
)

var address string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve statement conversion over HTTP",
	Long: `Start an HTTP server converting uploaded statement PDFs.

Endpoints:
  GET  /api/health    liveness
  POST /upload        multipart field "pdf" (optional "mode"), returns a CSV attachment
  POST /api/convert   same input, returns the ledger as JSON

Example:
  stmt-ledger serve --address :8080`,
	RunE: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&address, "address", "", "Listen address (default from server.address)")
}

func serveFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}
	logger := appContainer.GetLogger()
	cfg := appContainer.GetConfig()

	p, err := appContainer.GetParser(parser.PDF)
	if err != nil {
		return err
	}

	addr := address
	if addr == "" {
		addr = cfg.Server.Address
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := api.NewApp(api.NewHandler(p, appContainer.CSVOptions(), logger), cfg.Server.BodyLimitMB)
	return api.Serve(ctx, app, addr, logger)
}
