package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"userregistry/internal/agify"
	"userregistry/internal/models"
	"userregistry/internal/repository"
)

func newPipeline(t *testing.T, agifyHandler http.HandlerFunc, timeout time.Duration) (*SubmissionService, repository.RegistrationRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.Registration{}))

	srv := httptest.NewServer(agifyHandler)
	t.Cleanup(srv.Close)

	repo := repository.NewRegistrationRepository(db)
	return NewSubmissionService(repo, agify.NewClient(srv.URL, timeout, nil), nil), repo
}

func TestPipelineStoresPredictedAge(t *testing.T) {
	svc, repo := newPipeline(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"asha","age":36,"count":10}`))
	}, time.Second)

	created, err := svc.Submit(context.Background(), models.SampleRequest())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].PredictedAge)
	assert.Equal(t, 36, *all[0].PredictedAge)
}

func TestPipelineToleratesBrokenAgeService(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non numeric body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}},
		{"slow service", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(time.Second):
			case <-r.Context().Done():
			}
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newPipeline(t, tt.handler, 50*time.Millisecond)

			created, err := svc.Submit(context.Background(), models.SampleRequest())
			require.NoError(t, err)
			assert.Nil(t, created.PredictedAge)

			all, err := repo.ListAll(context.Background())
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Nil(t, all[0].PredictedAge)
		})
	}
}

func TestPipelineRejectsSecondRegistrationWithSameEmail(t *testing.T) {
	svc, _ := newPipeline(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"age":30}`))
	}, time.Second)
	ctx := context.Background()

	_, err := svc.Submit(ctx, models.SampleRequest())
	require.NoError(t, err)

	again := models.SampleRequest()
	again.Email = "ASHA.VERMA@example.com"
	again.FullName = "Different Person"
	again.Phone = "1231231234"

	_, err = svc.Submit(ctx, again)
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestPipelineHardensLocationConsistency(t *testing.T) {
	svc, _ := newPipeline(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"age":30}`))
	}, time.Second)

	req := models.SampleRequest()
	req.City = "Toronto"

	_, err := svc.Submit(context.Background(), req)
	var schemaErr *models.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Fields, "city")
}

func TestPipelineLooksUpShortFirstName(t *testing.T) {
	var lookups []string
	svc, repo := newPipeline(t, func(w http.ResponseWriter, r *http.Request) {
		lookups = append(lookups, r.URL.Query().Get("name"))
		_, _ = w.Write([]byte(`{"age":40}`))
	}, time.Second)

	req := models.SampleRequest()
	req.FullName = "J Smith"

	created, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"J"}, lookups)
	require.NotNil(t, created.PredictedAge)
	assert.Equal(t, 40, *created.PredictedAge)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].PredictedAge)
	assert.Equal(t, 40, *all[0].PredictedAge)
}

func TestPipelineAgeRuleUsesOneCalendarDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)
	clock := func() time.Time { return time.Date(2026, time.June, 5, 0, 30, 0, 0, ist) }

	tests := []struct {
		name     string
		dob      string
		accepted bool
	}{
		{"eighteenth birthday today", "2008-06-05", true},
		{"eighteenth birthday tomorrow", "2008-06-06", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newPipeline(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"age":18}`))
			}, time.Second)
			svc.WithClock(clock)

			req := models.SampleRequest()
			req.DOB = tt.dob

			_, err := svc.Submit(context.Background(), req)
			if tt.accepted {
				require.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, "dob")
		})
	}
}
