package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// VehiclesClient fetches vehicles from the vehicles service.
type VehiclesClient struct {
	baseURL string
	client  *http.Client
}

// NewVehiclesClient creates a client for the vehicles service at baseURL.
func NewVehiclesClient(baseURL string) (*VehiclesClient, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	return &VehiclesClient{baseURL: baseURL, client: newHTTPClient()}, nil
}

type vehicleResponse struct {
	ID             string  `json:"id"`
	PricePerWeight float64 `json:"pricePerWeight"`
}

// GetByID fetches one vehicle. An unknown id yields ObjectNotFoundError.
func (c *VehiclesClient) GetByID(ctx context.Context, id kernel.UUID) (ports.Vehicle, error) {
	url := fmt.Sprintf("%s/vehicles/%s", c.baseURL, id.String())

	resp, err := doGet(ctx, c.client, url)
	if err != nil {
		return ports.Vehicle{}, err
	}
	defer closeBody(resp)

	switch resp.StatusCode {
	case http.StatusOK:
		// decoded below
	case http.StatusNotFound:
		return ports.Vehicle{}, errs.NewObjectNotFoundError("vehicle", id)
	default:
		return ports.Vehicle{}, &errStatus{service: "vehicles", status: resp.StatusCode}
	}

	var body vehicleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.Vehicle{}, err
	}

	vehicleID, err := kernel.UUIDFromString(body.ID)
	if err != nil {
		return ports.Vehicle{}, errs.NewValueIsInvalidErrorWithCause("vehicle id", err)
	}
	return ports.Vehicle{ID: vehicleID, PricePerWeight: body.PricePerWeight}, nil
}
