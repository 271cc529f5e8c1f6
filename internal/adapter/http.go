package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joycesaquino/customer/internal/config"
	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/internal/utils"
	"github.com/joycesaquino/customer/models"
)

const customersPath = "/api/customers"

type httpCustomerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCustomerAdapter constructs an HTTP/REST implementation of
// [CustomerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL, request timeout and bearer token.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCustomerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CustomerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := utils.NewHTTPClient(baseURL, timeout).WithBearerToken(strings.TrimSpace(adapterCfg.Token))

	return &httpCustomerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func customerPath(id models.CustomerID) string {
	return customersPath + "/" + strconv.FormatInt(int64(id), 10)
}

// ListCustomers implements [CustomerAdapter].
func (h *httpCustomerAdapter) ListCustomers(ctx context.Context) ([]models.CustomerDTO, error) {
	var customers []models.CustomerDTO

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&customers).
		Get(customersPath)
	if err != nil {
		return nil, fmt.Errorf("list customers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return customers, nil
}

// GetCustomerByID implements [CustomerAdapter].
func (h *httpCustomerAdapter) GetCustomerByID(ctx context.Context, id models.CustomerID) (*models.CustomerDTO, error) {
	var customer models.CustomerDTO

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&customer).
		Get(customerPath(id))
	if err != nil {
		return nil, fmt.Errorf("get customer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &customer, nil
}

// GetCustomerByEmail implements [CustomerAdapter]. The email is sent as the
// "email" query parameter.
func (h *httpCustomerAdapter) GetCustomerByEmail(ctx context.Context, email string) (*models.CustomerDTO, error) {
	var customer models.CustomerDTO

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("email", email).
		SetResult(&customer).
		Get(customersPath + "/by-email")
	if err != nil {
		return nil, fmt.Errorf("get customer by email request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &customer, nil
}

// CreateCustomer implements [CustomerAdapter].
func (h *httpCustomerAdapter) CreateCustomer(ctx context.Context, input models.CustomerCreate) (*models.CustomerDTO, error) {
	var customer models.CustomerDTO

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&customer).
		Post(customersPath)
	if err != nil {
		return nil, fmt.Errorf("create customer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Int64("customer_id", int64(customer.ID)).Msg("customer created")
	return &customer, nil
}

// UpdateCustomer implements [CustomerAdapter].
func (h *httpCustomerAdapter) UpdateCustomer(ctx context.Context, id models.CustomerID, input models.CustomerUpdate) (*models.CustomerDTO, error) {
	var customer models.CustomerDTO

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&customer).
		Put(customerPath(id))
	if err != nil {
		return nil, fmt.Errorf("update customer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &customer, nil
}

// DeleteCustomer implements [CustomerAdapter].
func (h *httpCustomerAdapter) DeleteCustomer(ctx context.Context, id models.CustomerID) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(customerPath(id))
	if err != nil {
		return fmt.Errorf("delete customer request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetAppInfo implements [CustomerAdapter].
func (h *httpCustomerAdapter) GetAppInfo(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/actuator/info")
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("app info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfo{}, err
	}

	return info, nil
}
