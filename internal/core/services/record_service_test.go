package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/salesmaster_cloud/internal/apperrors"
	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/SscSPs/salesmaster_cloud/internal/core/services"
	"github.com/SscSPs/salesmaster_cloud/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RecordServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRecordRepository
	service  portssvc.RecordSvcFacade
	ctx      context.Context
	stored   []domain.Record
}

func (suite *RecordServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRecordRepository)
	suite.service = services.NewRecordService(suite.mockRepo)
	suite.ctx = context.Background()
	suite.stored = []domain.Record{
		record("1", "Ana", "Juan Pérez", "$1,000.50", "5512345678"),
		record("2", "Beto", "juan lopez", "250", ""),
		record("3", "Carla", "María", "pendiente", "5599999999"),
	}
}

func (suite *RecordServiceTestSuite) TestListRecords_AdministratorPreview() {
	suite.mockRepo.On("ListRecords", suite.ctx, 50).Return(suite.stored, nil).Once()

	records, err := suite.service.ListRecords(suite.ctx, adminSession(), dto.ListRecordsParams{})

	suite.Require().NoError(err)
	suite.Len(records, 3)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestListRecords_AdministratorExplicitLimit() {
	suite.mockRepo.On("ListRecords", suite.ctx, 0).Return(suite.stored, nil).Once()

	noLimit := 0
	records, err := suite.service.ListRecords(suite.ctx, adminSession(), dto.ListRecordsParams{Limit: &noLimit})

	suite.Require().NoError(err)
	suite.Len(records, 3)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestListRecords_VendorViewIsNotTruncated() {
	stored := make([]domain.Record, 0, 130)
	for i := 0; i < 120; i++ {
		stored = append(stored, record(fmt.Sprintf("j%d", i), fmt.Sprintf("Cliente %d", i), "Juan Pérez", "100", "5512345678"))
	}
	for i := 0; i < 10; i++ {
		stored = append(stored, record(fmt.Sprintf("m%d", i), "Otro", "María", "100", ""))
	}
	suite.mockRepo.On("ListRecords", suite.ctx, 0).Return(stored, nil)

	records, err := suite.service.ListRecords(suite.ctx, vendorSession("juan"), dto.ListRecordsParams{})
	suite.Require().NoError(err)
	suite.Len(records, 120)

	limit := 5
	records, err = suite.service.ListRecords(suite.ctx, vendorSession("juan"), dto.ListRecordsParams{Limit: &limit})
	suite.Require().NoError(err)
	suite.Len(records, 5)
	suite.Equal("j0", records[0].RecordID)
}

func (suite *RecordServiceTestSuite) TestListRecords_VendorSeesOwnRecords() {
	suite.mockRepo.On("ListRecords", suite.ctx, 0).Return(suite.stored, nil)

	records, err := suite.service.ListRecords(suite.ctx, vendorSession("JUAN"), dto.ListRecordsParams{})
	suite.Require().NoError(err)
	suite.Len(records, 2)

	records, err = suite.service.ListRecords(suite.ctx, vendorSession("Juan"), dto.ListRecordsParams{Search: "beto"})
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal("2", records[0].RecordID)

	records, err = suite.service.ListRecords(suite.ctx, vendorSession("Pedro"), dto.ListRecordsParams{})
	suite.Require().NoError(err)
	suite.Empty(records)
}

func (suite *RecordServiceTestSuite) TestListRecords_RepositoryError() {
	suite.mockRepo.On("ListRecords", suite.ctx, 0).Return(nil, errors.New("connection reset")).Once()

	_, err := suite.service.ListRecords(suite.ctx, vendorSession("Juan"), dto.ListRecordsParams{})
	suite.Error(err)
}

func (suite *RecordServiceTestSuite) TestGetRecord_HidesOtherVendors() {
	rec := suite.stored[2]
	suite.mockRepo.On("FindRecordByID", suite.ctx, "3").Return(&rec, nil)

	_, err := suite.service.GetRecord(suite.ctx, vendorSession("Juan"), "3")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	got, err := suite.service.GetRecord(suite.ctx, vendorSession("maría"), "3")
	suite.Require().NoError(err)
	suite.Equal("Carla", got.Value(domain.FieldClient))

	got, err = suite.service.GetRecord(suite.ctx, adminSession(), "3")
	suite.Require().NoError(err)
	suite.Equal("3", got.RecordID)
}

func (suite *RecordServiceTestSuite) TestStats() {
	suite.mockRepo.On("ListRecords", suite.ctx, 0).Return(suite.stored, nil).Once()

	stats, err := suite.service.Stats(suite.ctx, adminSession())

	suite.Require().NoError(err)
	suite.Equal(3, stats.Count)
	suite.Equal(3, stats.Vendors)
	suite.Equal("1250.50", stats.TotalAmount)
	suite.Equal(1, stats.UnparsedAmounts)

	_, err = suite.service.Stats(suite.ctx, vendorSession("Juan"))
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *RecordServiceTestSuite) TestSubscribe_FiltersEverySnapshot() {
	ctx, cancel := context.WithCancel(suite.ctx)
	defer cancel()

	snapshots := make(chan []domain.Record, 2)
	snapshots <- suite.stored[:1]
	snapshots <- suite.stored
	close(snapshots)
	suite.mockRepo.On("SubscribeRecords", mock.Anything).Return((<-chan []domain.Record)(snapshots), nil).Once()

	views, err := suite.service.Subscribe(ctx, vendorSession("juan"), "")
	suite.Require().NoError(err)

	var got [][]domain.Record
	timeout := time.After(time.Second)
	for done := false; !done; {
		select {
		case view, ok := <-views:
			if !ok {
				done = true
				break
			}
			got = append(got, view)
		case <-timeout:
			suite.FailNow("timed out waiting for views")
		}
	}

	suite.Require().Len(got, 2)
	suite.Len(got[0], 1)
	suite.Len(got[1], 2)
}

func TestRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceTestSuite))
}
