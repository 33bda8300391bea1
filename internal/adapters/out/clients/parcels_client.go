package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// ParcelsClient fetches parcels from the parcels service.
type ParcelsClient struct {
	baseURL string
	client  *http.Client
}

// NewParcelsClient creates a client for the parcels service at baseURL.
func NewParcelsClient(baseURL string) (*ParcelsClient, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	return &ParcelsClient{baseURL: baseURL, client: newHTTPClient()}, nil
}

type parcelResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Variant string `json:"variant"`
	Size    string `json:"size"`
}

// GetByID fetches one parcel. An unknown id yields ObjectNotFoundError.
func (c *ParcelsClient) GetByID(ctx context.Context, id kernel.UUID) (order.Parcel, error) {
	url := fmt.Sprintf("%s/parcels/%s", c.baseURL, id.String())

	resp, err := doGet(ctx, c.client, url)
	if err != nil {
		return order.Parcel{}, err
	}
	defer closeBody(resp)

	switch resp.StatusCode {
	case http.StatusOK:
		// decoded below
	case http.StatusNotFound:
		return order.Parcel{}, errs.NewObjectNotFoundError("parcel", id)
	default:
		return order.Parcel{}, &errStatus{service: "parcels", status: resp.StatusCode}
	}

	var body parcelResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return order.Parcel{}, err
	}

	parcelID, err := kernel.UUIDFromString(body.ID)
	if err != nil {
		return order.Parcel{}, errs.NewValueIsInvalidErrorWithCause("parcel id", err)
	}
	return order.NewParcel(parcelID, body.Name, body.Variant, body.Size)
}
