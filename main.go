package main

import (
	"context"
	"fmt"
	"os"

	"fjacquet/stmt-ledger/cmd/batch"
	"fjacquet/stmt-ledger/cmd/convert"
	"fjacquet/stmt-ledger/cmd/root"
	"fjacquet/stmt-ledger/cmd/serve"
	"fjacquet/stmt-ledger/internal/config"
	"fjacquet/stmt-ledger/internal/logging"
)

func init() {
	// .env must be loaded before the flags read LOG_LEVEL.
	config.LoadEnv(logging.NewDiscardLogger())

	root.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
}

func main() {
	if err := root.Cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
