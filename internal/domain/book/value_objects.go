package book

import (
	"strings"
	"unicode/utf8"

	"library-backend/internal/pkg/errs"
)

const (
	maxTextLength  = 255
	minPublication = 1
	maxPublication = 9999
)

var (
	ErrInvalidTitle           = errs.NewKind("title must be 1-255 characters", errs.ErrValidation)
	ErrInvalidAuthor          = errs.NewKind("author must be 1-255 characters", errs.ErrValidation)
	ErrInvalidPublicationYear = errs.NewKind("publication year out of range", errs.ErrValidation)
	ErrNegativeTotalCopies    = errs.NewKind("total copies cannot be negative", errs.ErrValidation)
)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxTextLength {
		return Title{}, ErrInvalidTitle
	}
	return Title{value: s}, nil
}

func (t Title) String() string { return t.value }

type Author struct {
	value string
}

func NewAuthor(s string) (Author, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxTextLength {
		return Author{}, ErrInvalidAuthor
	}
	return Author{value: s}, nil
}

func (a Author) String() string { return a.value }

type PublicationYear struct {
	value int
}

func NewPublicationYear(y int) (PublicationYear, error) {
	if y < minPublication || y > maxPublication {
		return PublicationYear{}, ErrInvalidPublicationYear
	}
	return PublicationYear{value: y}, nil
}

func (p PublicationYear) Int() int { return p.value }

// Details is the editable, descriptive part of a book.
type Details struct {
	Title           Title
	Author          Author
	PublicationYear PublicationYear
	PictureURL      *string
}

func NewDetails(title, author string, year int, pictureURL *string) (Details, error) {
	t, err := NewTitle(title)
	if err != nil {
		return Details{}, err
	}
	a, err := NewAuthor(author)
	if err != nil {
		return Details{}, err
	}
	y, err := NewPublicationYear(year)
	if err != nil {
		return Details{}, err
	}
	if pictureURL != nil {
		trimmed := strings.TrimSpace(*pictureURL)
		if trimmed == "" {
			pictureURL = nil
		} else {
			pictureURL = &trimmed
		}
	}
	return Details{Title: t, Author: a, PublicationYear: y, PictureURL: pictureURL}, nil
}
