package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/harinianandprojects/prioq-vision-dash/internal/models"
	"github.com/harinianandprojects/prioq-vision-dash/internal/repositories/repository_mocks"
	"github.com/harinianandprojects/prioq-vision-dash/internal/services/service_mocks"
)

// DashboardServiceTestSuite is the test suite for DashboardService
type DashboardServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	feed         *service_mocks.MockAlertFeedServiceInterface
	customerRepo *repository_mocks.MockCustomerRepositoryInterface
	service      DashboardServiceInterface
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.feed = service_mocks.NewMockAlertFeedServiceInterface(s.ctrl)
	s.customerRepo = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.service = NewDashboardService(s.feed, s.customerRepo)
}

func (s *DashboardServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (s *DashboardServiceTestSuite) makeDirectory() []models.Customer {
	hnwSlab := "1500000"
	midSlab := "400000"
	return []models.Customer{
		{CustomerID: "CUST001", FirstName: "Asha", LastName: "Kumar", SalarySlab: &hnwSlab},
		{CustomerID: "CUST002", FirstName: "Bina", LastName: "Kumar", SalarySlab: &midSlab},
		{CustomerID: "CUST003", FirstName: "Charu", LastName: "Kumar"},
	}
}

func (s *DashboardServiceTestSuite) TestGetStats() {
	now := time.Now().UTC()
	snapshot := []models.Alert{
		{ID: "a1", Classification: models.ClassificationHNW, Acknowledged: true, DetectionTime: now},
		{ID: "a2", Classification: models.ClassificationHNW, DetectionTime: now},
		{ID: "a3", Classification: models.ClassificationAged, DetectionTime: now},
		{ID: "a4", Classification: models.ClassificationStandard, DetectionTime: now},
	}
	s.feed.EXPECT().Snapshot().Return(snapshot)
	s.customerRepo.EXPECT().Count(gomock.Any()).Return(int64(3), nil)
	s.customerRepo.EXPECT().GetAll(gomock.Any()).Return(s.makeDirectory(), nil)

	stats, err := s.service.GetStats(context.Background())

	s.NoError(err)
	s.Require().NotNil(stats)
	s.Equal(4, stats.TotalAlerts)
	s.Equal(3, stats.Unacknowledged)
	s.Equal(2, stats.ByClassification["HNW"])
	s.Equal(1, stats.ByClassification["Aged"])
	s.Equal(1, stats.ByClassification["Standard"])
	s.Equal(int64(3), stats.TotalCustomers)
	s.Equal(int64(1), stats.HNWCustomers)
}

func (s *DashboardServiceTestSuite) TestGetStats_EmptyFeed() {
	s.feed.EXPECT().Snapshot().Return([]models.Alert{})
	s.customerRepo.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
	s.customerRepo.EXPECT().GetAll(gomock.Any()).Return([]models.Customer{}, nil)

	stats, err := s.service.GetStats(context.Background())

	s.NoError(err)
	s.Equal(0, stats.TotalAlerts)
	s.Equal(0, stats.Unacknowledged)
	s.Empty(stats.ByClassification)
}

func (s *DashboardServiceTestSuite) TestGetStats_CountFailureIsGateway() {
	s.feed.EXPECT().Snapshot().Return([]models.Alert{})
	s.customerRepo.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("connection refused"))

	stats, err := s.service.GetStats(context.Background())

	s.Nil(stats)
	s.ErrorIs(err, ErrGateway)
}

func (s *DashboardServiceTestSuite) TestView_DefaultsToAlerts() {
	s.Equal(ViewAlerts, s.service.GetView())
}

func (s *DashboardServiceTestSuite) TestSetView() {
	s.NoError(s.service.SetView(ViewCustomers))
	s.Equal(ViewCustomers, s.service.GetView())

	s.NoError(s.service.SetView(ViewOverview))
	s.Equal(ViewOverview, s.service.GetView())
}

func (s *DashboardServiceTestSuite) TestSetView_RejectsUnknownView() {
	err := s.service.SetView("reports")
	s.ErrorIs(err, ErrInvalidView)
	s.Equal(ViewAlerts, s.service.GetView())
}
