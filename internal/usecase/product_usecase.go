package usecase

import (
	"context"
	"io"

	"artisanmarket/internal/domain/repository"
	"artisanmarket/pkg/errors"
	"artisanmarket/pkg/logger"
)

// FileUploader is the image-storage collaborator; the Cloud Storage client
// satisfies it in production.
type FileUploader interface {
	UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (string, error)
}

type ProductUseCase struct {
	productRepo repository.ProductRepository
	uploader    FileUploader
}

func NewProductUseCase(productRepo repository.ProductRepository, uploader FileUploader) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		uploader:    uploader,
	}
}

// UpdateProductImage points a product at a new image URL. Thin pass-through:
// the existence check plus a scoped patch of the one field.
func (uc *ProductUseCase) UpdateProductImage(ctx context.Context, productID, imageURL string) error {
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return err
	}

	if err := uc.productRepo.UpdateImage(ctx, productID, imageURL); err != nil {
		logger.Error("UpdateProductImage: failed to patch product %s: %v", productID, err)
		return err
	}

	return nil
}

// UploadProductImage streams a new image to object storage, then applies the
// same scoped patch with the resulting URL.
func (uc *ProductUseCase) UploadProductImage(ctx context.Context, productID string, file io.Reader, fileType string) (string, error) {
	if uc.uploader == nil {
		return "", errors.Internal("Image storage is not configured", nil)
	}

	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return "", err
	}

	imageURL, err := uc.uploader.UploadFile(ctx, file, fileType, "products")
	if err != nil {
		return "", errors.Internal("Failed to store product image", err)
	}

	if err := uc.productRepo.UpdateImage(ctx, productID, imageURL); err != nil {
		return "", err
	}

	return imageURL, nil
}
