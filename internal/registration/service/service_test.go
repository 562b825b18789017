package service

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"regdesk/internal/registration/store/mocks"
	"regdesk/pkg/platform/audit"
)

// recordingObserver counts saga outcomes so tests can assert that
// compensations and best-effort failures were surfaced to the observer, not
// just that the final state happens to look right.
type recordingObserver struct {
	succeeded           []string
	failed              []string
	compensations       []string
	compensationFailed  []string
	bestEffortFailures  []string
}

func (o *recordingObserver) SagaSucceeded(saga string)             { o.succeeded = append(o.succeeded, saga) }
func (o *recordingObserver) SagaFailed(saga, step string)          { o.failed = append(o.failed, saga+"/"+step) }
func (o *recordingObserver) CompensationRun(saga, step string)     { o.compensations = append(o.compensations, saga+"/"+step) }
func (o *recordingObserver) CompensationFailed(saga, step string)  { o.compensationFailed = append(o.compensationFailed, saga+"/"+step) }
func (o *recordingObserver) BestEffortFailed(saga, step string)    { o.bestEffortFailures = append(o.bestEffortFailures, saga+"/"+step) }

type ServiceSuite struct {
	suite.Suite

	ctrl          *gomock.Controller
	registrations *mocks.MockRegistrationStore
	transactions  *mocks.MockTransactionStore
	prospects     *mocks.MockProspectusFlagStore
	auditSink     *audit.Memory
	observer      *recordingObserver
	service       *Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.registrations = mocks.NewMockRegistrationStore(s.ctrl)
	s.transactions = mocks.NewMockTransactionStore(s.ctrl)
	s.prospects = mocks.NewMockProspectusFlagStore(s.ctrl)
	s.auditSink = audit.NewMemory()
	s.observer = &recordingObserver{}
	s.service = New(
		s.registrations,
		s.transactions,
		s.prospects,
		slog.Default(),
		WithAudit(s.auditSink),
		WithObserver(s.observer),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func ptrInt64(v int64) *int64       { return &v }
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
