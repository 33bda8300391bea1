package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// PricingClient computes delivery prices through the pricing service.
type PricingClient struct {
	baseURL string
	client  *http.Client
}

// NewPricingClient creates a client for the pricing service at baseURL.
func NewPricingClient(baseURL string) (*PricingClient, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	return &PricingClient{baseURL: baseURL, client: newHTTPClient()}, nil
}

type priceResponse struct {
	Price float64 `json:"price"`
}

// GetOrderPrice asks the pricing service for the total delivery price.
func (c *PricingClient) GetOrderPrice(
	ctx context.Context, customerID, vehicleID kernel.UUID, deliveryDate time.Time,
) (float64, error) {
	query := url.Values{}
	query.Set("customerId", customerID.String())
	query.Set("vehicleId", vehicleID.String())
	query.Set("deliveryDate", deliveryDate.Format(time.RFC3339))

	requestURL := fmt.Sprintf("%s/price?%s", c.baseURL, query.Encode())

	resp, err := doGet(ctx, c.client, requestURL)
	if err != nil {
		return 0, err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return 0, &errStatus{service: "pricing", status: resp.StatusCode}
	}

	var body priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if body.Price < 0 {
		return 0, errs.NewValueIsOutOfRangeError("price", body.Price, 0.0, nil)
	}
	return body.Price, nil
}
