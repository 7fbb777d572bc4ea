package request

import (
	"library-backend/internal/usecase/commands"
)

type CreateBookRequest struct {
	Title           string  `json:"title" binding:"required,max=255"`
	Author          string  `json:"author" binding:"required,max=255"`
	PublicationYear int     `json:"publicationYear" binding:"required"`
	PictureURL      *string `json:"pictureUrl,omitempty" binding:"omitempty,url"`
	TotalCopies     *int    `json:"totalCopies" binding:"required,min=0"`
}

// UpdateBookRequest is a partial update; absent fields keep their value.
type UpdateBookRequest struct {
	Title           *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Author          *string `json:"author,omitempty" binding:"omitempty,max=255"`
	PublicationYear *int    `json:"publicationYear,omitempty"`
	PictureURL      *string `json:"pictureUrl,omitempty" binding:"omitempty,url"`
	TotalCopies     *int    `json:"totalCopies,omitempty" binding:"omitempty,min=0"`
}

func (r *CreateBookRequest) ToCommand() commands.CreateBookRequest {
	total := 0
	if r.TotalCopies != nil {
		total = *r.TotalCopies
	}
	return commands.CreateBookRequest{
		Title:           r.Title,
		Author:          r.Author,
		PublicationYear: r.PublicationYear,
		PictureURL:      r.PictureURL,
		TotalCopies:     total,
	}
}

func (r *UpdateBookRequest) ToCommand() commands.UpdateBookRequest {
	return commands.UpdateBookRequest{
		Title:           r.Title,
		Author:          r.Author,
		PublicationYear: r.PublicationYear,
		PictureURL:      r.PictureURL,
		TotalCopies:     r.TotalCopies,
	}
}
