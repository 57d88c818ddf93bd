package submission

import (
	"context"
	"errors"
	"testing"
	"time"

	"transferbook/internal/wizard"
	wizarderrors "transferbook/internal/wizard/errors"
	"transferbook/internal/wizard/validator"
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

func newSession(t *testing.T, lang string, opts ...wizard.Option) *wizard.Session {
	t.Helper()
	catalog, err := locale.NewCatalog(locale.LangEnglish)
	require.NoError(t, err)
	return wizard.NewSession(validator.NewStepValidator(logger.Discard()), catalog.Translator(lang), opts...)
}

func readySession(t *testing.T, lang string) *wizard.Session {
	t.Helper()
	s := newSession(t, lang)
	name, email, phone, cc := "Jane Doe", "jane@example.com", "6912345678", "+30"
	date := model.NewTravelDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	s.Update(model.FormUpdate{
		FullName:        &name,
		Email:           &email,
		Phone:           &phone,
		CountryCode:     &cc,
		PickupLocation:  &model.Place{PlaceID: "a", MainText: "Airport"},
		DropoffLocation: &model.Place{PlaceID: "h", MainText: "Hotel"},
		Date:            &date,
	})
	require.True(t, s.NextStep())
	require.True(t, s.NextStep())
	require.True(t, s.IsLastStep())
	return s
}

func TestSubmit_Success(t *testing.T) {
	notifier := new(mockNotifier)
	submitter := NewSubmitter(notifier, logger.Discard())
	session := readySession(t, locale.LangEnglish)

	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(p *model.BookingPayload) bool {
		return p.SessionID == session.ID() && p.FullName == "Jane Doe" && p.BookingType == model.BookingTypeTransfer
	})).Return(nil).Once()

	n, err := submitter.Submit(context.Background(), session)

	require.NoError(t, err)
	assert.True(t, n.Succeeded())
	assert.Equal(t, "Thank you! Your booking request has been sent. We will contact you shortly.", n.Message)
	assert.False(t, session.Submitting())
	assert.Equal(t, "Jane Doe", session.State().FullName, "success must not reset the form")
	notifier.AssertExpectations(t)
}

func TestSubmit_NotifierFailureBecomesNotification(t *testing.T) {
	notifier := new(mockNotifier)
	submitter := NewSubmitter(notifier, logger.Discard())
	session := readySession(t, locale.LangGreek)

	notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	n, err := submitter.Submit(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, NotificationError, n.Kind)
	assert.Equal(t, "Κάτι πήγε στραβά κατά την αποστολή. Παρακαλώ δοκιμάστε ξανά.", n.Message)
	assert.False(t, session.Submitting())
	assert.Equal(t, model.StepTravelPreferences, session.CurrentStep())
	notifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestSubmit_NotReady(t *testing.T) {
	notifier := new(mockNotifier)
	submitter := NewSubmitter(notifier, logger.Discard())
	session := newSession(t, locale.LangEnglish)

	_, err := submitter.Submit(context.Background(), session)

	assert.ErrorIs(t, err, wizarderrors.ErrNotReady)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestSubmit_RejectsConcurrentSubmit(t *testing.T) {
	notifier := new(mockNotifier)
	submitter := NewSubmitter(notifier, logger.Discard())
	session := readySession(t, locale.LangEnglish)

	entered := make(chan struct{})
	release := make(chan struct{})
	notifier.On("Notify", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		close(entered)
		<-release
	}).Return(nil).Once()

	done := make(chan Notification)
	go func() {
		n, _ := submitter.Submit(context.Background(), session)
		done <- n
	}()

	<-entered
	_, err := submitter.Submit(context.Background(), session)
	assert.ErrorIs(t, err, wizarderrors.ErrSubmissionInProgress)

	close(release)
	n := <-done
	assert.True(t, n.Succeeded())
	assert.False(t, session.Submitting())
}
