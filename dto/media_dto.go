package dto

type DeleteMediaDTO struct {
	URL string `json:"url" binding:"required"`
}

// DeleteRowDTO is checked by hand so a missing id gets the fixed
// "Missing id" message.
type DeleteRowDTO struct {
	ID string `json:"id"`
}
