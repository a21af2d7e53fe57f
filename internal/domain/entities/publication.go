package entities

import (
	"github.com/volatiletech/null/v8"
)

// Publication is a published paper listed on the publications page.
// Listing order is publication year descending; there is no display order.
type Publication struct {
	Content
	Title   string      `gorm:"type:text;not null" json:"title"`
	Authors string      `gorm:"type:text;not null" json:"authors"`
	Journal string      `gorm:"type:text;not null" json:"journal"`
	Year    int         `gorm:"not null" json:"year"`
	DOI     string      `gorm:"column:doi;type:text;not null" json:"doi"`
	PdfURL  null.String `gorm:"column:pdf_url;type:text" json:"pdfUrl"`
}

func (Publication) TableName() string { return "publications" }

// InsertPublication is the validated create payload for a publication
type InsertPublication struct {
	Title   string      `json:"title" binding:"required"`
	Authors string      `json:"authors" binding:"required"`
	Journal string      `json:"journal" binding:"required"`
	Year    int         `json:"year" binding:"required"`
	DOI     string      `json:"doi" binding:"required"`
	PdfURL  null.String `json:"pdfUrl"`
}

func (in InsertPublication) NewRecord() *Publication {
	return &Publication{
		Content: NewContent(),
		Title:   in.Title,
		Authors: in.Authors,
		Journal: in.Journal,
		Year:    in.Year,
		DOI:     in.DOI,
		PdfURL:  in.PdfURL,
	}
}

// PublicationPatch is a partial update; nil fields are left unchanged
type PublicationPatch struct {
	Title   *string      `json:"title"`
	Authors *string      `json:"authors"`
	Journal *string      `json:"journal"`
	Year    *int         `json:"year"`
	DOI     *string      `json:"doi"`
	PdfURL  *null.String `json:"pdfUrl"`
}

func (p PublicationPatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Authors != nil {
		changes["authors"] = *p.Authors
	}
	if p.Journal != nil {
		changes["journal"] = *p.Journal
	}
	if p.Year != nil {
		changes["year"] = *p.Year
	}
	if p.DOI != nil {
		changes["doi"] = *p.DOI
	}
	if p.PdfURL != nil {
		changes["pdf_url"] = *p.PdfURL
	}
	return changes
}
