package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"transferbook/internal/submission"
	"transferbook/internal/wizard"
	"transferbook/internal/wizard/validator"
	apperrors "transferbook/pkg/errors"
	"transferbook/pkg/locale"
	"transferbook/pkg/logger"
	"transferbook/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, payload *model.BookingPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

var athens = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Athens")
	if err != nil {
		return time.FixedZone("EET", 2*60*60)
	}
	return loc
}()

func newTestService(t *testing.T, notifier submission.Notifier) (SessionService, *wizard.InMemorySessionStore) {
	t.Helper()
	catalog, err := locale.NewCatalog(locale.LangEnglish)
	require.NoError(t, err)

	store := wizard.NewInMemorySessionStore(time.Hour, time.Hour, logger.Discard())
	t.Cleanup(store.Stop)

	svc := NewSessionService(
		store,
		validator.NewStepValidator(logger.Discard()),
		catalog,
		submission.NewSubmitter(notifier, logger.Discard()),
		athens,
		logger.Discard(),
	)
	return svc, store
}

func strPtr(s string) *string { return &s }

func requireAppError(t *testing.T, err error, status int) *apperrors.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T", err)
	assert.Equal(t, status, appErr.StatusCode())
	return appErr
}

func completeForm(t *testing.T, svc SessionService, id string) {
	t.Helper()
	raw := model.TravelDate{Raw: "2024-06-01"}
	_, err := svc.Update(context.Background(), id, model.FormUpdate{
		FullName:        strPtr("  Jane   Doe "),
		Email:           strPtr("Jane@Example.com"),
		Phone:           strPtr("6912345678"),
		CountryCode:     strPtr("+30"),
		PickupLocation:  &model.Place{PlaceID: "a", Description: "Airport", MainText: "Airport"},
		DropoffLocation: &model.Place{PlaceID: "h", Description: "Hotel", MainText: "Hotel"},
		Date:            &raw,
	})
	require.NoError(t, err)
}

func TestCreate_LanguageFallback(t *testing.T) {
	svc, store := newTestService(t, new(mockNotifier))
	ctx := context.Background()

	explicit, err := svc.Create(ctx, CreateSessionRequest{Language: "el"}, "en")
	require.NoError(t, err)
	assert.Equal(t, "el", explicit.Language)

	header, err := svc.Create(ctx, CreateSessionRequest{}, "el")
	require.NoError(t, err)
	assert.Equal(t, "el", header.Language)

	unknown, err := svc.Create(ctx, CreateSessionRequest{Language: "fr"})
	require.NoError(t, err)
	assert.Equal(t, "en", unknown.Language)

	assert.Equal(t, 3, store.Len())
}

func TestCreate_TourMode(t *testing.T) {
	svc, _ := newTestService(t, new(mockNotifier))

	snapshot, err := svc.Create(context.Background(), CreateSessionRequest{SelectedTour: " Meteora Day Trip "})
	require.NoError(t, err)
	assert.Equal(t, model.ModeTour, snapshot.Mode)
	assert.Equal(t, "Meteora Day Trip", snapshot.Form.SelectedTour)
}

func TestCreate_RejectsMalformedLanguage(t *testing.T) {
	svc, _ := newTestService(t, new(mockNotifier))

	_, err := svc.Create(context.Background(), CreateSessionRequest{Language: "english"})
	requireAppError(t, err, http.StatusUnprocessableEntity)
}

func TestUnknownSession(t *testing.T) {
	svc, _ := newTestService(t, new(mockNotifier))
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	requireAppError(t, err, http.StatusNotFound)

	_, err = svc.Next(ctx, "missing")
	requireAppError(t, err, http.StatusNotFound)

	_, err = svc.Submit(ctx, "missing")
	requireAppError(t, err, http.StatusNotFound)

	err = svc.Delete(ctx, "missing")
	requireAppError(t, err, http.StatusNotFound)
}

func TestUpdate_SanitizesAndParsesDateInBusinessZone(t *testing.T) {
	svc, _ := newTestService(t, new(mockNotifier))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateSessionRequest{})
	require.NoError(t, err)

	raw := model.TravelDate{Raw: "2024-06-01"}
	snapshot, err := svc.Update(ctx, created.ID, model.FormUpdate{
		FullName:   strPtr("  Jane   Doe "),
		Passengers: strPtr("99"),
		Date:       &raw,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", snapshot.Form.FullName)
	assert.Equal(t, "15", snapshot.Form.Passengers)
	require.NotNil(t, snapshot.Form.Date)
	assert.Equal(t, athens, snapshot.Form.Date.Time.Location())
	assert.Equal(t, "2024-06-01", snapshot.Form.Date.String())
}

func TestNext_ValidationFailureIs422WithErrors(t *testing.T) {
	svc, _ := newTestService(t, new(mockNotifier))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateSessionRequest{})
	require.NoError(t, err)

	snapshot, err := svc.Next(ctx, created.ID)
	appErr := requireAppError(t, err, http.StatusUnprocessableEntity)
	assert.Equal(t, "Please correct the highlighted fields", appErr.Message)

	errs, ok := appErr.Details["errors"].(model.ValidationErrors)
	require.True(t, ok)
	assert.Equal(t, "Please enter your full name", errs[model.FieldFullName])
	assert.Equal(t, model.StepPersonalInfo, snapshot.Step)
}

func TestSubmit_FullFlow(t *testing.T) {
	notifier := new(mockNotifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(p *model.BookingPayload) bool {
		return p.FullName == "Jane Doe" && p.BookingType == model.BookingTypeTransfer
	})).Return(nil).Once()

	svc, _ := newTestService(t, notifier)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateSessionRequest{})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, created.ID)
	requireAppError(t, err, http.StatusPreconditionFailed)

	completeForm(t, svc, created.ID)
	_, err = svc.Next(ctx, created.ID)
	require.NoError(t, err)
	last, err := svc.Next(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, last.IsLastStep)

	result, err := svc.Submit(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, result.Notification.Succeeded())
	assert.False(t, result.Session.Submitting)
	notifier.AssertExpectations(t)
}

func TestSubmit_DeliveryFailureIsNotification(t *testing.T) {
	notifier := new(mockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	svc, _ := newTestService(t, notifier)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateSessionRequest{})
	require.NoError(t, err)
	completeForm(t, svc, created.ID)
	_, _ = svc.Next(ctx, created.ID)
	_, _ = svc.Next(ctx, created.ID)

	result, err := svc.Submit(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, submission.NotificationError, result.Notification.Kind)
	assert.Equal(t, "Jane Doe", result.Session.Form.FullName, "form is kept for retry")
}

func TestPrevResetDelete(t *testing.T) {
	svc, store := newTestService(t, new(mockNotifier))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateSessionRequest{SelectedTour: "Delphi"})
	require.NoError(t, err)
	completeForm(t, svc, created.ID)
	_, err = svc.Next(ctx, created.ID)
	require.NoError(t, err)

	prev, err := svc.Prev(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StepPersonalInfo, prev.Step)

	reset, err := svc.Reset(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, reset.Form.FullName)
	assert.Equal(t, "Delphi", reset.Form.SelectedTour)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, 0, store.Len())
}
