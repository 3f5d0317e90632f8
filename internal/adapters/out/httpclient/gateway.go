package httpclient

import (
	"context"
	"net/http"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/ports"
	"fooddrone/internal/pkg/errs"
	"fooddrone/internal/pkg/resilience"
)

const gatewayServiceName = "payment_gateway"

// PaymentGatewayClient talks to the external payment provider over HTTP.
type PaymentGatewayClient struct {
	client client
	policy *resilience.Policy
}

// NewPaymentGatewayClient creates a gateway client for the given base URL.
func NewPaymentGatewayClient(baseURL string) *PaymentGatewayClient {
	return &PaymentGatewayClient{
		client: newClient(baseURL),
		policy: resilience.NewPolicy(gatewayServiceName),
	}
}

type createPaymentRequest struct {
	OrderID     string  `json:"orderId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type createPaymentResponse struct {
	RequestID       string `json:"requestId"`
	ExternalOrderID string `json:"externalOrderId"`
	PayURL          string `json:"payUrl"`
	ResultCode      int    `json:"resultCode"`
	Message         string `json:"message"`
}

// CreatePayment initiates a gateway payment. A 4xx from the provider is
// returned as a redirect carrying the provider's result code, not an error:
// the payment aggregate records the rejection.
func (c *PaymentGatewayClient) CreatePayment(
	ctx context.Context,
	orderID kernel.UUID,
	amount float64,
	description string,
) (ports.GatewayRedirect, error) {
	request := createPaymentRequest{
		OrderID:     orderID.String(),
		Amount:      amount,
		Description: description,
	}

	var response createPaymentResponse
	denial, err := c.client.callJSON(ctx, c.policy,
		http.MethodPost, "/api/gateway/payments", request, &response)
	if err != nil {
		return ports.GatewayRedirect{}, errs.NewExternalServiceError(gatewayServiceName, err)
	}
	if denial != nil {
		return ports.GatewayRedirect{}, errs.NewExternalServiceError(gatewayServiceName, denial)
	}

	return ports.GatewayRedirect{
		RequestID:       response.RequestID,
		ExternalOrderID: response.ExternalOrderID,
		PayURL:          response.PayURL,
		ResultCode:      response.ResultCode,
		Message:         response.Message,
	}, nil
}
