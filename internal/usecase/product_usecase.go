package usecase

import (
	"log/slog"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 商品はUUIDがキー。作成時にIDが無ければ採番
type ProductUsecase struct {
	*CRUDUsecase[model.Product, uuid.UUID]
}

func NewProductUsecase(r repo.ProductRepository, log *slog.Logger) *ProductUsecase {
	return &ProductUsecase{CRUDUsecase: NewCRUDUsecase[model.Product, uuid.UUID](r, log, "product")}
}

type ProductInput struct {
	ID          *uuid.UUID       `json:"id"`
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Quantity    int64            `json:"quantity" validate:"gte=0"`
	ImageURL    *string          `json:"image_url"`
	Category    string           `json:"category"`
	SubCategory string           `json:"sub_category"`
	Brand       string           `json:"brand"`
	IsActive    *bool            `json:"is_active"`
}

func (in ProductInput) Model() model.Product {
	p := model.Product{
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		SubCategory: in.SubCategory,
		Brand:       in.Brand,
		IsActive:    true,
	}
	if in.ID != nil {
		p.ID = *in.ID
	}
	if in.Price != nil {
		p.Price = model.NewMoney(*in.Price)
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	return p
}

// idは含めない（パスのidのまま）
type ProductPatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int64           `json:"quantity"`
	ImageURL    *string          `json:"image_url"`
	Category    *string          `json:"category"`
	SubCategory *string          `json:"sub_category"`
	Brand       *string          `json:"brand"`
	IsActive    *bool            `json:"is_active"`
}

func (p ProductPatch) Fields() repo.Fields {
	f := repo.Fields{}
	repo.Set(f, "name", p.Name)
	repo.Set(f, "description", p.Description)
	if p.Price != nil {
		f["price"] = model.NewMoney(*p.Price)
	}
	repo.Set(f, "quantity", p.Quantity)
	repo.Set(f, "image_url", p.ImageURL)
	repo.Set(f, "category", p.Category)
	repo.Set(f, "sub_category", p.SubCategory)
	repo.Set(f, "brand", p.Brand)
	repo.Set(f, "is_active", p.IsActive)
	return f
}
