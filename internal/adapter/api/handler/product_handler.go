package handler

import (
	"github.com/labstack/echo/v4"

	"artisanmarket/internal/usecase"
	"artisanmarket/pkg/errors"
	"artisanmarket/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type updateProductImageRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
}

// UpdateProductImage points a product at an already-hosted image URL
func (h *ProductHandler) UpdateProductImage(c echo.Context) error {
	var req updateProductImageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	productID := c.Param("id")

	if err := h.productUseCase.UpdateProductImage(c.Request().Context(), productID, req.ImageURL); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"product_id": productID,
		"image_url":  req.ImageURL,
	})
}

// UploadProductImage accepts a multipart image, stores it, and patches the
// product's image reference
func (h *ProductHandler) UploadProductImage(c echo.Context) error {
	productID := c.Param("id")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("An image file is required", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to read uploaded file", err))
	}
	defer file.Close()

	fileType := fileHeader.Header.Get("Content-Type")

	imageURL, err := h.productUseCase.UploadProductImage(c.Request().Context(), productID, file, fileType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"product_id": productID,
		"image_url":  imageURL,
	})
}
