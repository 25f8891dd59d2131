package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/harinianandprojects/prioq-vision-dash/internal/dto"
	"github.com/harinianandprojects/prioq-vision-dash/internal/services"
	"github.com/harinianandprojects/prioq-vision-dash/internal/services/service_mocks"
)

// DashboardHandlerTestSuite is the test suite for DashboardHandler
type DashboardHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockDashboard *service_mocks.MockDashboardServiceInterface
	handler       *DashboardHandler
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDashboard = service_mocks.NewMockDashboardServiceInterface(s.ctrl)
	s.handler = NewDashboardHandler(s.mockDashboard)
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func (s *DashboardHandlerTestSuite) TestGetStats() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/dashboard/stats", "")

	stats := &dto.DashboardStats{
		TotalAlerts:      4,
		Unacknowledged:   3,
		ByClassification: map[string]int{"HNW": 2, "Aged": 1, "Standard": 1},
		TotalCustomers:   120,
		HNWCustomers:     8,
	}
	s.mockDashboard.EXPECT().GetStats(gomock.Any()).Return(stats, nil)

	s.NoError(s.handler.GetStats(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.DashboardStats
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(4, response.TotalAlerts)
	s.Equal(int64(120), response.TotalCustomers)
}

func (s *DashboardHandlerTestSuite) TestGetStats_GatewayFailure() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/dashboard/stats", "")

	s.mockDashboard.EXPECT().GetStats(gomock.Any()).Return(nil, services.ErrGateway)

	s.NoError(s.handler.GetStats(c))
	s.Equal(http.StatusBadGateway, rec.Code)
}

func (s *DashboardHandlerTestSuite) TestGetView() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/dashboard/view", "")

	s.mockDashboard.EXPECT().GetView().Return(services.ViewAlerts)

	s.NoError(s.handler.GetView(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.DashboardViewResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("alerts", response.View)
}

func (s *DashboardHandlerTestSuite) TestUpdateView() {
	c, rec := s.newContext(http.MethodPut, "/api/v1/dashboard/view", `{"view":"customers"}`)

	s.mockDashboard.EXPECT().SetView("customers").Return(nil)
	s.mockDashboard.EXPECT().GetView().Return(services.ViewCustomers)

	s.NoError(s.handler.UpdateView(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.DashboardViewResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("customers", response.View)
}

func (s *DashboardHandlerTestSuite) TestUpdateView_UnknownView() {
	c, _ := s.newContext(http.MethodPut, "/api/v1/dashboard/view", `{"view":"reports"}`)

	err := s.handler.UpdateView(c)
	s.Error(err) // Validation returns an error through Echo's validator
}

func (s *DashboardHandlerTestSuite) TestUpdateView_MissingView() {
	c, _ := s.newContext(http.MethodPut, "/api/v1/dashboard/view", `{}`)

	err := s.handler.UpdateView(c)
	s.Error(err)
}
