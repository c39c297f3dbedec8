package utils

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"userregistry/internal/repository"
)

// CheckForDuplicateEmails returns the generated test emails in [startIndex, endIndex]
// that are already registered.
func CheckForDuplicateEmails(ctx context.Context, repo repository.RegistrationRepository, startIndex, endIndex int) ([]string, error) {
	log.Info().Int("start", startIndex).Int("end", endIndex).Msg("Checking for duplicate emails")

	var existing []string
	for i := startIndex; i <= endIndex; i++ {
		email := TestEmail(i)

		found, err := repo.EmailExists(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to check for duplicate email %s: %w", email, err)
		}
		if found {
			log.Debug().Str("email", email).Msg("Email already exists")
			existing = append(existing, email)
		}
	}

	log.Info().Int("duplicates", len(existing)).Msg("Email duplicate check completed")
	return existing, nil
}
