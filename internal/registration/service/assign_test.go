package service

import (
	"context"

	"go.uber.org/mock/gomock"

	"regdesk/internal/registration/models"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/audit"
	"regdesk/pkg/platform/sentinel"
)

func (s *ServiceSuite) TestAssign_Succeeds() {
	ctx := context.Background()
	reg := &models.Registration{
		ID:            3,
		Status:        models.StatusRegistered,
		AssignedTo:    ptrInt64(11),
		AdminAssigned: true,
	}

	s.registrations.EXPECT().Assign(gomock.Any(), int64(3), int64(11)).Return(reg, nil)

	got, err := s.service.Assign(ctx, 3, models.AssignRequest{AssignedTo: ptrInt64(11)})
	s.Require().NoError(err)
	s.True(got.AdminAssigned)
	s.Equal(models.StatusRegistered, got.Status)
	s.Len(s.auditSink.ByAction(audit.ActionRegistrationAssigned), 1)
}

func (s *ServiceSuite) TestAssign_RequiresAssignee() {
	ctx := context.Background()

	for name, req := range map[string]models.AssignRequest{
		"nil assignee":  {},
		"zero assignee": {AssignedTo: ptrInt64(0)},
	} {
		s.Run(name, func() {
			_, err := s.service.Assign(ctx, 3, req)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
	s.Empty(s.auditSink.Events())
}

func (s *ServiceSuite) TestAssign_UnknownRegistrationIsNotFound() {
	ctx := context.Background()
	s.registrations.EXPECT().Assign(gomock.Any(), int64(99), int64(11)).
		Return(nil, sentinel.ErrNotFound)

	_, err := s.service.Assign(ctx, 99, models.AssignRequest{AssignedTo: ptrInt64(11)})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
