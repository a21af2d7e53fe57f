package entities

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"
)

func TestNewContent(t *testing.T) {
	c := NewContent()
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.False(t, c.CreatedAt.IsZero())

	other := NewContent()
	assert.NotEqual(t, c.ID, other.ID)
}

func TestInsertTeamMember_NewRecord(t *testing.T) {
	record := InsertTeamMember{
		Name:  "Alice",
		Role:  "PI",
		Email: "a@u.edu",
		Bio:   "bio",
		Image: "img",
		Order: 3,
	}.NewRecord()

	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.False(t, record.CreatedAt.IsZero())
	assert.Equal(t, "Alice", record.Name)
	assert.Equal(t, 3, record.Order)
}

func TestTeamMemberPatch_Changes(t *testing.T) {
	role := "Postdoc"
	order := 7
	patch := TeamMemberPatch{Role: &role, Order: &order}

	changes := patch.Changes()
	assert.Equal(t, map[string]interface{}{
		"role":          "Postdoc",
		"display_order": 7,
	}, changes)
}

func TestTeamMemberPatch_EmptyChanges(t *testing.T) {
	assert.Empty(t, TeamMemberPatch{}.Changes())
}

func TestPublicationPatch_Changes(t *testing.T) {
	year := 2025
	pdf := null.StringFrom("https://cdn/p.pdf")
	patch := PublicationPatch{Year: &year, PdfURL: &pdf}

	changes := patch.Changes()
	assert.Equal(t, 2025, changes["year"])
	assert.Equal(t, pdf, changes["pdf_url"])
	assert.NotContains(t, changes, "title")
}

// Clearing the optional PDF link is a real change, distinct from omitting it.
func TestPublicationPatch_ClearPdfURL(t *testing.T) {
	cleared := null.String{}
	patch := PublicationPatch{PdfURL: &cleared}

	changes := patch.Changes()
	assert.Contains(t, changes, "pdf_url")
	assert.Equal(t, cleared, changes["pdf_url"])
}

func TestGalleryImagePatch_Changes(t *testing.T) {
	src := "https://img/new.png"
	order := 0
	patch := GalleryImagePatch{Src: &src, Order: &order}

	changes := patch.Changes()
	assert.Equal(t, "https://img/new.png", changes["src"])
	// An explicit zero is still a change.
	assert.Equal(t, 0, changes["display_order"])
}
