package adminapi

import (
	"context"

	"github.com/SeloLim/naturia/internal/models"
)

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/api/products", "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.getJSON(ctx, "/api/categories", "", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) SkinTypes(ctx context.Context) ([]models.SkinType, error) {
	var skinTypes []models.SkinType
	if err := c.getJSON(ctx, "/api/skin-types", "", &skinTypes); err != nil {
		return nil, err
	}
	return skinTypes, nil
}

func (c *Client) Banners(ctx context.Context) ([]models.Banner, error) {
	var banners []models.Banner
	if err := c.getJSON(ctx, "/api/banners", "", &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

func (c *Client) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := c.getJSON(ctx, "/api/payment-methods", "", &methods); err != nil {
		return nil, err
	}
	return methods, nil
}
