// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"oss/internal/config"
	"oss/internal/lsp"
)

const lsName = "oss" // Name identifier for the language server

var (
	version = "0.1.0"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)

	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:           "oss-lsp",
	Short:         "Language server for OSS rule files",
	Long:          `Serve diagnostics, highlighting, completion and document outlines for OSS files over stdio.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServer,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "configuration file (default "+config.DefaultFile+" if present)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadOrDefault(config.DefaultFile)
	}
	if err != nil {
		return err
	}

	// stdout carries the protocol, so logs go to stderr or the configured file
	var logPath *string
	if cfg.Log.File != "" {
		logPath = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, logPath)
	log := commonlog.GetLogger("oss.lsp")

	ossHandler := lsp.NewOSSHandler(version, cfg.LSP.MaxDiagnostics)

	handler = protocol.Handler{
		Initialize:                     ossHandler.Initialize,
		Initialized:                    ossHandler.Initialized,
		Shutdown:                       ossHandler.Shutdown,
		SetTrace:                       ossHandler.SetTrace,
		TextDocumentDidOpen:            ossHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           ossHandler.TextDocumentDidClose,
		TextDocumentDidChange:          ossHandler.TextDocumentDidChange,
		TextDocumentCompletion:         ossHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: ossHandler.TextDocumentSemanticTokensFull,
		TextDocumentDocumentSymbol:     ossHandler.TextDocumentDocumentSymbol,
	}

	// - handler: the protocol handler struct
	// - name: the language server name (shown to clients)
	// - debug: whether to enable internal GLSP debug logs
	s := server.NewServer(&handler, lsName, cfg.Log.Verbosity >= 2)

	log.Infof("starting OSS language server %s", version)

	if err := s.RunStdio(); err != nil {
		return fmt.Errorf("language server stopped: %w", err)
	}
	return nil
}
