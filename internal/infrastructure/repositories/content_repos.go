package repositories

import (
	"gorm.io/gorm"
	"research-nest.backend/internal/domain/entities"
)

// Canonical list orders. Collections with an explicit display order sort by
// it ascending; the rest sort by a domain key descending. Creation time
// breaks ties so listing stays stable.
const (
	orderByDisplayOrder = "display_order ASC, created_at ASC"
	orderByYearDesc     = "year DESC, created_at DESC"
	orderByNewestFirst  = "created_at DESC"
)

func NewTeamMemberRepository(db *gorm.DB) *ContentRepository[entities.TeamMember] {
	return NewContentRepository[entities.TeamMember](db, orderByDisplayOrder)
}

func NewResearchAreaRepository(db *gorm.DB) *ContentRepository[entities.ResearchArea] {
	return NewContentRepository[entities.ResearchArea](db, orderByDisplayOrder)
}

func NewPublicationRepository(db *gorm.DB) *ContentRepository[entities.Publication] {
	return NewContentRepository[entities.Publication](db, orderByYearDesc)
}

func NewProjectRepository(db *gorm.DB) *ContentRepository[entities.Project] {
	return NewContentRepository[entities.Project](db, orderByNewestFirst)
}

func NewActivityRepository(db *gorm.DB) *ContentRepository[entities.Activity] {
	return NewContentRepository[entities.Activity](db, orderByNewestFirst)
}

func NewGalleryImageRepository(db *gorm.DB) *ContentRepository[entities.GalleryImage] {
	return NewContentRepository[entities.GalleryImage](db, orderByDisplayOrder)
}
