package handlers

import (
	"github.com/SeloLim/naturia/internal/catalog"
	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalogs *catalog.Service
}

func NewCatalogHandler(catalogs *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalogs: catalogs}
}

func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	filter := catalog.Filter{
		CategoryID: int64(c.QueryInt("category_id")),
		SkinTypeID: int64(c.QueryInt("skin_type_id")),
		Query:      c.Query("q"),
	}
	products, err := h.catalogs.Products(c.UserContext(), filter)
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(products)
}

func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalogs.Categories(c.UserContext())
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(categories)
}

func (h *CatalogHandler) SkinTypes(c *fiber.Ctx) error {
	skinTypes, err := h.catalogs.SkinTypes(c.UserContext())
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(skinTypes)
}

func (h *CatalogHandler) Banners(c *fiber.Ctx) error {
	banners, err := h.catalogs.Banners(c.UserContext())
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(banners)
}
