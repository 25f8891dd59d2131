package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/harinianandprojects/prioq-vision-dash/internal/dto"
	"github.com/harinianandprojects/prioq-vision-dash/internal/models"
	"github.com/harinianandprojects/prioq-vision-dash/internal/repositories"
	"github.com/harinianandprojects/prioq-vision-dash/internal/repositories/repository_mocks"
)

// CustomerHandlerTestSuite is the test suite for CustomerHandler
type CustomerHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	customerRepo *repository_mocks.MockCustomerRepositoryInterface
	handler      *CustomerHandler
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.customerRepo = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.handler = NewCustomerHandler(s.customerRepo)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func (s *CustomerHandlerTestSuite) makeDirectory() []models.Customer {
	activeStatus := models.ProfileStatusActive
	hnwSlab := "2500000"
	return []models.Customer{
		{CustomerID: "CUST001", FirstName: "Asha", LastName: "Kumar", ProfileStatus: &activeStatus, SalarySlab: &hnwSlab},
		{CustomerID: "CUST002", FirstName: "Bina", LastName: "Patel"},
	}
}

func (s *CustomerHandlerTestSuite) TestListCustomers() {
	c, rec := s.newContext("/api/v1/customers")

	s.customerRepo.EXPECT().GetAll(gomock.Any()).Return(s.makeDirectory(), nil)

	s.NoError(s.handler.ListCustomers(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CustomerListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(2, response.Total)
	s.Equal("HNW", response.Customers[0].Classification)
	s.Equal(dto.BadgeColorSuccess, response.Customers[0].StatusColor)
	// Missing statuses render as a neutral Unknown badge.
	s.Equal("Unknown", response.Customers[1].ProfileStatus)
	s.Equal(dto.BadgeColorNeutral, response.Customers[1].StatusColor)
}

func (s *CustomerHandlerTestSuite) TestListCustomers_FiltersByQuery() {
	c, rec := s.newContext("/api/v1/customers?q=patel")

	s.customerRepo.EXPECT().GetAll(gomock.Any()).Return(s.makeDirectory(), nil)

	s.NoError(s.handler.ListCustomers(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CustomerListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(1, response.Total)
	s.Equal("CUST002", response.Customers[0].CustomerID)
}

func (s *CustomerHandlerTestSuite) TestListCustomers_GatewayFailure() {
	c, rec := s.newContext("/api/v1/customers")

	s.customerRepo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("connection refused"))

	s.NoError(s.handler.ListCustomers(c))
	s.Equal(http.StatusBadGateway, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("GATEWAY_001", response.Error.Code)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer() {
	c, rec := s.newContext("/api/v1/customers/CUST001")
	c.SetParamNames("id")
	c.SetParamValues("CUST001")

	customer := s.makeDirectory()[0]
	s.customerRepo.EXPECT().GetByCustomerID(gomock.Any(), "CUST001").Return(&customer, nil)

	s.NoError(s.handler.GetCustomer(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CustomerResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("CUST001", response.CustomerID)
	s.Equal("Asha Kumar", response.FullName)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_NotFound() {
	c, rec := s.newContext("/api/v1/customers/GHOST")
	c.SetParamNames("id")
	c.SetParamValues("GHOST")

	s.customerRepo.EXPECT().GetByCustomerID(gomock.Any(), "GHOST").
		Return(nil, repositories.ErrCustomerNotFound)

	s.NoError(s.handler.GetCustomer(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("CUSTOMER_001", response.Error.Code)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_BlankID() {
	c, rec := s.newContext("/api/v1/customers/%20")
	c.SetParamNames("id")
	c.SetParamValues("  ")

	s.NoError(s.handler.GetCustomer(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("CUSTOMER_002", response.Error.Code)
}
