package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"freelancernow/internal/domain/document"
	"freelancernow/internal/domain/user"
	sharedlog "freelancernow/internal/shared/logger"
	"freelancernow/internal/shared/messages"
)

var errInvalidDocument = errors.New("document is not valid")

func newDocumentCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "document",
		Short: "Format, validate and audit CPF/CNPJ documents",
	}
	cmd.AddCommand(
		newDocumentCheckCmd(),
		newDocumentFormatCmd(),
		newDocumentAuditCmd(opts),
	)
	return cmd
}

func newDocumentCheckCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:     "check <value>",
		Short:   "Validate a CPF or CNPJ and print the result",
		Example: "  admin document check 529.982.247-25\n  admin document check --lang pt-BR 11222333000181",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := messages.Default()
			if err != nil {
				return err
			}

			res := catalog.Localize(document.Validate(args[0]), lang)
			docType := string(res.Type)
			if docType == "" {
				docType = "-"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", docType, res.Code, res.Message)

			if !res.Valid {
				return errInvalidDocument
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "message language (Accept-Language syntax)")
	return cmd
}

func newDocumentFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <value>",
		Short: "Print the value with CPF/CNPJ punctuation applied",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), document.Format(args[0]))
		},
	}
}

func newDocumentAuditCmd(opts *rootOptions) *cobra.Command {
	var (
		workers int
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Re-validate the document stored on every profile",
		Example: "  admin document audit\n" +
			"  admin document audit --workers=8 --timeout=1h",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := opts.logger()
			defer log.Sync()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			env, err := openStore(ctx, log)
			if err != nil {
				return err
			}
			defer env.Close()

			workers = auditWorkerCount(cmd.Flags().Changed("workers"), workers, env.cfg.Audit.Workers)
			log.Info("starting document audit", zap.Int("workers", workers))
			start := time.Now()

			result, err := user.NewAuditService(env.users, log, workers).Run(ctx)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			printAudit(cmd, result)
			log.Info("document audit completed", zap.Duration("elapsed", time.Since(start)))
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", user.DefaultAuditWorkers, "number of concurrent workers")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Minute, "timeout for the operation (e.g. 5m, 1h)")
	return cmd
}

// auditWorkerCount prefers an explicit --workers over AUDIT_WORKERS.
func auditWorkerCount(flagSet bool, flagValue, configured int) int {
	if flagSet || configured <= 0 {
		return flagValue
	}
	return configured
}

func printAudit(cmd *cobra.Command, result *user.AuditResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Profiles checked:   %d\n", result.UsersChecked)
	fmt.Fprintf(out, "Without document:   %d\n", result.MissingDocs)
	fmt.Fprintf(out, "Problems found:     %d\n", len(result.Findings))

	for _, f := range result.Findings {
		fmt.Fprintf(out, "  user %d (%s) %s: %v\n", f.UserID, f.UserType, sharedlog.MaskDocument(f.Document), f.Reason)
	}
}
