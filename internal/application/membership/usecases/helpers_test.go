package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/infrastructure/database/dbtest"
	"github.com/gymflow/gymflow/internal/infrastructure/lock"
	"github.com/gymflow/gymflow/internal/infrastructure/repository"
	"github.com/gymflow/gymflow/internal/shared/biztime"
	"github.com/gymflow/gymflow/internal/shared/db"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

const testTTL = 15 * time.Minute

type mockPaymentVerifier struct {
	mock.Mock
}

func (m *mockPaymentVerifier) VerifyPayment(ctx context.Context, receipt string, memberID uint, reference string, amount int64) (string, error) {
	args := m.Called(receipt, memberID, reference, amount)
	return args.String(0), args.Error(1)
}

type mockCredentialVerifier struct {
	mock.Mock
}

func (m *mockCredentialVerifier) VerifyCredentials(ctx context.Context, memberID uint, password string) error {
	args := m.Called(memberID, password)
	return args.Error(0)
}

type plainRenderer struct{}

func (plainRenderer) Render(markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}
	return "<p>" + markdown + "</p>", nil
}

// harness wires the use cases to real repositories on an in-memory database.
type harness struct {
	t     *testing.T
	ctx   context.Context
	clock *biztime.FixedClock
	log   logger.Interface

	tx            *db.TransactionManager
	plans         membership.PlanRepository
	records       membership.RecordRepository
	requests      membership.PlanChangeRepository
	cancellations membership.CancellationRepository
	events        membership.EventRepository
	receipts      membership.ReceiptRepository
	members       member.Repository

	writer      *MemberWriter
	payments    *mockPaymentVerifier
	credentials *mockCredentialVerifier
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	gdb := dbtest.Open(t)
	log := logger.NewNopLogger()
	h := &harness{
		t:             t,
		ctx:           context.Background(),
		clock:         biztime.NewFixedClock(testNow),
		log:           log,
		tx:            db.NewTransactionManager(gdb),
		plans:         repository.NewPlanRepository(gdb, log),
		records:       repository.NewMembershipRecordRepository(gdb, log),
		requests:      repository.NewPlanChangeRequestRepository(gdb, log),
		cancellations: repository.NewCancellationRepository(gdb, log),
		events:        repository.NewMembershipEventRepository(gdb, log),
		receipts:      repository.NewReceiptRepository(gdb, log),
		members:       repository.NewMemberRepository(gdb, log),
		payments:      new(mockPaymentVerifier),
		credentials:   new(mockCredentialVerifier),
	}
	h.writer = NewMemberWriter(lock.NewLocalLocker(time.Second), h.tx, h.records, h.requests, h.events, h.receipts, h.clock, log)

	t.Cleanup(func() {
		h.payments.AssertExpectations(t)
		h.credentials.AssertExpectations(t)
	})
	return h
}

func (h *harness) plan(name string, price int64, months int) *membership.Plan {
	h.t.Helper()
	p, err := membership.NewPlan(name, price, months, []string{"gym floor"}, "", "USD")
	require.NoError(h.t, err)
	require.NoError(h.t, h.plans.Create(h.ctx, p))
	return p
}

func (h *harness) member(email string) *member.Member {
	h.t.Helper()
	m, err := member.NewMember(email, "Test Member", "$2a$04$hash")
	require.NoError(h.t, err)
	require.NoError(h.t, h.members.Create(h.ctx, m))
	return m
}

// subscribe stores a first record for memberID on plan whose term started at start.
func (h *harness) subscribe(memberID uint, plan *membership.Plan, start time.Time) *membership.Record {
	h.t.Helper()
	r, err := membership.NewRecord(memberID, plan, true, start)
	require.NoError(h.t, err)
	require.NoError(h.t, h.records.Append(h.ctx, r))
	return r
}

func (h *harness) current(memberID uint) *membership.Record {
	h.t.Helper()
	r, err := h.records.GetCurrent(h.ctx, memberID)
	require.NoError(h.t, err)
	require.NotNil(h.t, r)
	return r
}

func (h *harness) request(requestID string) *membership.PlanChangeRequest {
	h.t.Helper()
	r, err := h.requests.GetByRequestID(h.ctx, requestID)
	require.NoError(h.t, err)
	require.NotNil(h.t, r)
	return r
}

func (h *harness) calculate() *CalculatePlanChangeUseCase {
	return NewCalculatePlanChangeUseCase(h.writer, h.plans, h.requests, testTTL, h.log)
}

func (h *harness) initiate() *InitiatePlanChangeUseCase {
	return NewInitiatePlanChangeUseCase(h.writer, h.requests, h.log)
}

func (h *harness) confirm() *ConfirmPlanChangeUseCase {
	return NewConfirmPlanChangeUseCase(h.writer, h.plans, h.records, h.requests, h.payments, h.credentials, h.log)
}

func (h *harness) pause() *PauseMembershipUseCase {
	return NewPauseMembershipUseCase(h.writer, h.plans, []int{15, 30, 90}, h.log)
}

func (h *harness) resume() *ResumeMembershipUseCase {
	return NewResumeMembershipUseCase(h.writer, h.plans, h.log)
}

func (h *harness) cancel() *CancelMembershipUseCase {
	return NewCancelMembershipUseCase(h.writer, h.plans, h.cancellations, h.log)
}

func (h *harness) reactivate() *ReactivateMembershipUseCase {
	return NewReactivateMembershipUseCase(h.writer, h.plans, h.members, h.payments, h.log)
}

func (h *harness) access() *CheckAccessUseCase {
	return NewCheckAccessUseCase(h.records, h.clock, h.log)
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
