package utils

import (
	"context"
	"errors"
	"fmt"
	mathrand "math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"userregistry/internal/models"
	"userregistry/internal/refdata"
	"userregistry/internal/repository"
)

const (
	DefaultNumUsers = 100
	logEvery        = 50
)

// placeholder signature: a 1x1 transparent PNG
const testSignature = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

var (
	firstNames  = []string{"Asha", "Ravi", "Maria", "John", "Priya", "Liam", "Noah", "Emma", "Arjun", "Chloe"}
	lastNames   = []string{"Verma", "Kumar", "Garcia", "Smith", "Patel", "Tremblay", "Brown", "Wilson", "Singh", "Roy"}
	genders     = []string{"Male", "Female", "Other"}
	occupations = []string{"Student", "Engineer", "Doctor", "Other"}
	zips        = map[string]string{"India": "560001", "USA": "94105", "Canada": "M5V2T6"}
)

// TestEmail is the address used for the i-th generated registration.
func TestEmail(i int) string {
	return fmt.Sprintf("testuser%d@example.com", i)
}

// Seeder fills the registration store with generated test users.
type Seeder struct {
	repo repository.RegistrationRepository
	rng  *mathrand.Rand
}

func NewSeeder(repo repository.RegistrationRepository, seed int64) *Seeder {
	return &Seeder{repo: repo, rng: mathrand.New(mathrand.NewSource(seed))}
}

// TestRegistration builds the i-th generated registration. Every generated record
// passes the store schema.
func (s *Seeder) TestRegistration(i int) *models.Registration {
	country := refdata.Table[s.rng.Intn(len(refdata.Table))]
	state := country.States[s.rng.Intn(len(country.States))]
	city := state.Cities[s.rng.Intn(len(state.Cities))]

	r := &models.Registration{
		FullName:   firstNames[s.rng.Intn(len(firstNames))] + " " + lastNames[s.rng.Intn(len(lastNames))],
		Email:      TestEmail(i),
		Phone:      fmt.Sprintf("98%08d", i%100000000),
		DOB:        time.Date(1960+s.rng.Intn(40), time.Month(1+s.rng.Intn(12)), 1+s.rng.Intn(28), 0, 0, 0, 0, time.UTC),
		Gender:     genders[s.rng.Intn(len(genders))],
		Address1:   fmt.Sprintf("%d Test Street", 1+s.rng.Intn(999)),
		Country:    country.Name,
		State:      state.Name,
		City:       city,
		Zip:        zips[country.Name],
		Occupation: occupations[s.rng.Intn(len(occupations))],
		Signature:  testSignature,
	}
	if i%2 == 0 {
		income := float64(20000 + s.rng.Intn(180000))
		r.Income = &income
	}
	return r
}

// SeedUsers creates count test users starting at index start. Users whose email
// is already stored are skipped.
func (s *Seeder) SeedUsers(ctx context.Context, start, count int) (created, skipped int, err error) {
	for i := start; i < start+count; i++ {
		if err := ctx.Err(); err != nil {
			return created, skipped, err
		}

		exists, err := s.repo.EmailExists(ctx, TestEmail(i))
		if err != nil {
			return created, skipped, fmt.Errorf("check %s: %w", TestEmail(i), err)
		}
		if exists {
			skipped++
			continue
		}

		if err := s.repo.Create(ctx, s.TestRegistration(i)); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				skipped++
				continue
			}
			return created, skipped, fmt.Errorf("seed user %d: %w", i, err)
		}
		created++

		if created%logEvery == 0 {
			log.Info().Int("created", created).Int("index", i).Msg("Seeding test users")
		}
	}

	log.Info().Int("created", created).Int("skipped", skipped).Msg("Seeded test users")
	return created, skipped, nil
}
