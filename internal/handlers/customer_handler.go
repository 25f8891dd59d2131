package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/harinianandprojects/prioq-vision-dash/internal/dto"
	apierrors "github.com/harinianandprojects/prioq-vision-dash/internal/errors"
	"github.com/harinianandprojects/prioq-vision-dash/internal/repositories"
)

// CustomerHandler serves the customer directory view
type CustomerHandler struct {
	customerRepo repositories.CustomerRepositoryInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerRepo repositories.CustomerRepositoryInterface) *CustomerHandler {
	return &CustomerHandler{customerRepo: customerRepo}
}

// ListCustomers returns the directory, optionally filtered by the q query
// parameter
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.customerRepo.GetAll(c.Request().Context())
	if err != nil {
		return SendGatewayError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCustomerListResponse(customers, c.QueryParam("q")))
}

// GetCustomer returns one directory row by customer id
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customerID := strings.TrimSpace(c.Param("id"))
	if customerID == "" {
		return SendError(c, apierrors.CustomerInvalidID)
	}

	customer, err := h.customerRepo.GetByCustomerID(c.Request().Context(), customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return SendError(c, apierrors.CustomerNotFound)
		}
		return SendGatewayError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCustomerResponse(customer))
}
