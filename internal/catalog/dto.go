// goudace | 2026
// dto.go

package catalog

import (
	"time"
)

type CreateItemRequest struct {
	Title         string  `json:"title"          validate:"required,min=1,max=255"`
	Description   string  `json:"description"    validate:"required,max=4000"`
	Price         int64   `json:"price"          validate:"required,gte=0"`
	Image         string  `json:"image"          validate:"omitempty,url"`
	LargeImage    string  `json:"large_image"    validate:"omitempty,url"`
	CategoryID    *string `json:"category_id"    validate:"omitempty,uuid"`
	SubcategoryID *string `json:"subcategory_id" validate:"omitempty,uuid"`
}

type UpdateItemRequest struct {
	Title         *string `json:"title,omitempty"          validate:"omitempty,min=1,max=255"`
	Description   *string `json:"description,omitempty"    validate:"omitempty,max=4000"`
	Price         *int64  `json:"price,omitempty"          validate:"omitempty,gte=0"`
	Image         *string `json:"image,omitempty"          validate:"omitempty,url"`
	LargeImage    *string `json:"large_image,omitempty"    validate:"omitempty,url"`
	CategoryID    *string `json:"category_id,omitempty"    validate:"omitempty,uuid"`
	SubcategoryID *string `json:"subcategory_id,omitempty" validate:"omitempty,uuid"`
}

type ItemResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         int64     `json:"price"`
	Image         string    `json:"image"`
	LargeImage    string    `json:"large_image"`
	CategoryID    *string   `json:"category_id,omitempty"`
	SubcategoryID *string   `json:"subcategory_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SubcategoryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
}

func ToItemResponse(i *Item) ItemResponse {
	return ItemResponse{
		ID:            i.ID,
		Title:         i.Title,
		Description:   i.Description,
		Price:         i.Price,
		Image:         i.Image,
		LargeImage:    i.LargeImage,
		CategoryID:    i.CategoryID,
		SubcategoryID: i.SubcategoryID,
		CreatedAt:     i.CreatedAt,
	}
}

func ToItemResponseList(items []Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToItemResponse(&item))
	}
	return responses
}
