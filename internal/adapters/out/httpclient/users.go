package httpclient

import (
	"context"
	"net/http"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/ports"
	"fooddrone/internal/pkg/errs"
	"fooddrone/internal/pkg/resilience"
)

const userServiceName = "users"

// UserClient talks to the account service over HTTP.
type UserClient struct {
	client client
	policy *resilience.Policy
}

// NewUserClient creates an account service client for the given base URL.
func NewUserClient(baseURL string) *UserClient {
	return &UserClient{
		client: newClient(baseURL),
		policy: resilience.NewPolicy(userServiceName),
	}
}

type userResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// GetUser fetches the customer profile. When the account service is down or
// its breaker is open, a placeholder profile is returned instead of an
// error: order placement does not stall on the account service. A 404 is
// the service's verdict, not an outage, and still comes back as not found.
func (c *UserClient) GetUser(ctx context.Context, userID kernel.UUID) (ports.User, error) {
	var response userResponse
	denial, err := c.client.callJSONWithFallback(ctx, c.policy,
		http.MethodGet, "/api/users/"+userID.String(), nil, &response,
		func(_ context.Context, _ error) error {
			response = placeholderUser(userID)
			return nil
		})
	if err != nil {
		return ports.User{}, errs.NewExternalServiceError(userServiceName, err)
	}
	if denial != nil {
		if denial.StatusCode == http.StatusNotFound {
			return ports.User{}, errs.NewObjectNotFoundError("user", userID.String())
		}
		return ports.User{}, errs.NewExternalServiceError(userServiceName, denial)
	}

	id, err := kernel.UUIDFromString(response.ID)
	if err != nil {
		return ports.User{}, errs.NewExternalServiceError(userServiceName, err)
	}

	return ports.User{
		ID:       id,
		FullName: response.FullName,
		Email:    response.Email,
		Phone:    response.Phone,
	}, nil
}

// placeholderUser is the degraded profile served while the account service
// is unavailable.
func placeholderUser(userID kernel.UUID) userResponse {
	return userResponse{
		ID:       userID.String(),
		FullName: "Unknown User",
	}
}
