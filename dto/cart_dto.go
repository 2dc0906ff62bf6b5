package dto

type AddCartItemDTO struct {
	ID string `json:"id" form:"id" binding:"required"`
}

// UpdateCartItemDTO carries the new quantity. Zero or less removes the item.
type UpdateCartItemDTO struct {
	ID       string `json:"id" form:"id"`
	Quantity *int   `json:"quantity" form:"quantity" binding:"required"`
}

type RemoveCartItemDTO struct {
	ID string `json:"id" form:"id" binding:"required"`
}
