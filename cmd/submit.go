package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"userregistry/internal/client"
	"userregistry/internal/form"
	"userregistry/internal/models"
)

var (
	submitFile string
	submitAPI  string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Validate a registration from a JSON file and post it to the API",
	RunE:  runSubmit,
}

func init() {
	submitCmd.Flags().StringVar(&submitFile, "file", "", "JSON file holding one registration form")
	submitCmd.Flags().StringVar(&submitAPI, "api", "http://localhost:5000", "base URL of the registration API")
	_ = submitCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(submitFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", submitFile, err)
	}

	var req models.RegistrationRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("decode %s: %w", submitFile, err)
	}

	api := client.New(submitAPI, 0)
	ctx := cmd.Context()

	state := form.FromRequest(req)
	if name, ok := form.PredictionName(state); ok {
		state = form.Reduce(state, form.AgePredicted{Name: name, Age: api.PredictAge(ctx, name)})
		if state.PredictedAge != nil {
			log.Info().Str("name", name).Int("predicted_age", *state.PredictedAge).Msg("Age preview")
		}
	}

	state = form.Reduce(state, form.Validate{Now: time.Now()})
	if !form.CanSubmit(state) {
		printFieldErrors(cmd, state.Errors)
		return errors.New("registration form has invalid fields")
	}

	state = form.Reduce(state, form.SubmitStarted{})
	registration, err := api.CreateRegistration(ctx, state.Values)

	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		state = form.Reduce(state, form.SubmitFinished{Fields: apiErr.Fields, Err: err})
	case err != nil:
		state = form.Reduce(state, form.SubmitFinished{Err: err})
	default:
		state = form.Reduce(state, form.SubmitFinished{})
	}

	if !state.Submitted {
		printFieldErrors(cmd, state.Errors)
		return err
	}

	out, err := json.MarshalIndent(registration, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func printFieldErrors(cmd *cobra.Command, errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, errs[field])
	}
}
