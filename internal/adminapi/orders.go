package adminapi

import (
	"context"
	"net/http"

	"github.com/SeloLim/naturia/internal/models"
)

type placeOrderResponse struct {
	OrderNumber string `json:"orderNumber"`
}

// PlaceOrder submits the full checkout bundle and returns the order number
// used to fetch the confirmation snapshot.
func (c *Client) PlaceOrder(ctx context.Context, req *models.OrderRequest) (string, error) {
	var resp placeOrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders", "", req, &resp); err != nil {
		return "", err
	}
	return resp.OrderNumber, nil
}

// OrderByNumber fetches the denormalized confirmation view. An unknown or
// foreign order number surfaces as ErrNotFound.
func (c *Client) OrderByNumber(ctx context.Context, orderNumber string) (*models.OrderDetails, error) {
	var details models.OrderDetails
	if err := c.getJSON(ctx, "/api/orders/"+orderNumber, "", &details); err != nil {
		return nil, err
	}
	return &details, nil
}
