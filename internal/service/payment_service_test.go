package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/disk/disktest"
	"github.com/provkin/tgbot/internal/model"
	"github.com/provkin/tgbot/internal/repository"
	"github.com/provkin/tgbot/internal/repository/ledger"
)

func newPaymentService(t *testing.T) (*PaymentService, *repository.StudentRepository, *fakeSender) {
	t.Helper()
	fake := disktest.New()
	l := ledger.New(fake, t.TempDir(), zap.NewNop())
	students := repository.NewStudentRepository(l, zap.NewNop())
	sender := &fakeSender{}
	notifier := NewNotifier(sender, 100, zap.NewNop())
	media := NewMediaService(fake, t.TempDir(), zap.NewNop())
	return NewPaymentService(students, media, notifier, zap.NewNop()), students, sender
}

func TestSubmitProofNotifiesAdmin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("proof"))
	}))
	defer srv.Close()

	svc, _, sender := newPaymentService(t)

	student := model.Student{
		Name: "Иван", Surname: "Петров", Course: "intensive", Balance: -34000, UserID: 42,
	}
	require.NoError(t, svc.SubmitProof(context.Background(), student, srv.URL))

	require.Len(t, sender.messages, 1)
	text := sender.messages[0].Text
	assert.Contains(t, text, "Иван Петров")
	assert.Contains(t, text, "intensive")
	assert.Contains(t, text, "-34000")
	assert.Contains(t, text, "ID: 42")
	assert.Contains(t, text, "/Payments/")
}

func TestSubmitProofFetchErrorKeepsLedger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc, students, sender := newPaymentService(t)
	require.NoError(t, students.Append(context.Background(), model.Student{UserID: 42, Balance: -100}))

	err := svc.SubmitProof(context.Background(), model.Student{UserID: 42}, srv.URL)
	assert.Error(t, err)
	assert.Empty(t, sender.messages)

	got, err := students.GetByUserID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, -100, got.Balance)
}

func TestReconcileAppliesDeltaAndNotifiesStudent(t *testing.T) {
	svc, students, sender := newPaymentService(t)
	ctx := context.Background()

	require.NoError(t, students.Append(ctx, model.Student{Name: "Иван", UserID: 42, Balance: -34000}))

	newBalance, err := svc.Reconcile(ctx, ReconcileRequest{UserID: 42, Amount: 5000}, nil)
	require.NoError(t, err)
	assert.Equal(t, -29000, newBalance)

	got, err := students.GetByUserID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, -29000, got.Balance)

	require.Len(t, sender.messages, 1)
	assert.Equal(t, int64(42), sender.messages[0].ChatID)
	assert.Contains(t, sender.messages[0].Text, "5000")
	assert.Contains(t, sender.messages[0].Text, "-29000")
}

func TestReconcileUnknownStudent(t *testing.T) {
	svc, _, sender := newPaymentService(t)

	_, err := svc.Reconcile(context.Background(), ReconcileRequest{UserID: 99, Amount: 5000}, nil)
	assert.ErrorIs(t, err, repository.ErrStudentNotFound)
	assert.Empty(t, sender.messages)
}
