package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"userregistry/database"
	"userregistry/internal/client"
	"userregistry/internal/export"
	"userregistry/internal/models"
	"userregistry/internal/repository"
)

var (
	exportFormat string
	exportOut    string
	exportAPI    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every registered user to a PDF or CSV file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "pdf", "output format (pdf|csv)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default registered_users.<format>, - for stdout)")
	exportCmd.Flags().StringVar(&exportAPI, "api", "", "read registrations from a running API instead of the database")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	write, defaultName, err := exportWriter(exportFormat)
	if err != nil {
		return err
	}

	registrations, err := loadRegistrations(cmd.Context())
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = defaultName
	}

	var w io.Writer = cmd.OutOrStdout()
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	if err := write(w, registrations); err != nil {
		return fmt.Errorf("write %s export: %w", exportFormat, err)
	}

	log.Info().Int("registrations", len(registrations)).Str("file", out).Msg("Export written")
	return nil
}

func exportWriter(format string) (func(io.Writer, []models.Registration) error, string, error) {
	switch format {
	case "pdf":
		return export.WritePDF, "registered_users.pdf", nil
	case "csv":
		return export.WriteCSV, "registered_users.csv", nil
	default:
		return nil, "", fmt.Errorf("unknown export format %q", format)
	}
}

func loadRegistrations(ctx context.Context) ([]models.Registration, error) {
	if exportAPI != "" {
		return client.New(exportAPI, 0).ListRegistrations(ctx)
	}

	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		return nil, err
	}
	defer database.Close(db)

	return repository.NewRegistrationRepository(db).ListAll(ctx)
}
