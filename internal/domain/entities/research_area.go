package entities

// ResearchArea is a research direction shown on the research page.
type ResearchArea struct {
	Content
	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Image       string `gorm:"type:text;not null" json:"image"`
	Order       int    `gorm:"column:display_order;not null;default:0" json:"order"`
}

func (ResearchArea) TableName() string { return "research_areas" }

// InsertResearchArea is the validated create payload for a research area
type InsertResearchArea struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image" binding:"required"`
	Order       int    `json:"order"`
}

func (in InsertResearchArea) NewRecord() *ResearchArea {
	return &ResearchArea{
		Content:     NewContent(),
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Order:       in.Order,
	}
}

// ResearchAreaPatch is a partial update; nil fields are left unchanged
type ResearchAreaPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Order       *int    `json:"order"`
}

func (p ResearchAreaPatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Image != nil {
		changes["image"] = *p.Image
	}
	if p.Order != nil {
		changes["display_order"] = *p.Order
	}
	return changes
}
