package entities

// Project is a funded research project. Status is free text, typically
// "Ongoing" or "Completed". Listing order is creation time descending.
type Project struct {
	Content
	Title   string `gorm:"type:text;not null" json:"title"`
	Summary string `gorm:"type:text;not null" json:"summary"`
	Funding string `gorm:"type:text;not null" json:"funding"`
	Status  string `gorm:"type:text;not null" json:"status"`
}

func (Project) TableName() string { return "projects" }

// InsertProject is the validated create payload for a project
type InsertProject struct {
	Title   string `json:"title" binding:"required"`
	Summary string `json:"summary" binding:"required"`
	Funding string `json:"funding" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

func (in InsertProject) NewRecord() *Project {
	return &Project{
		Content: NewContent(),
		Title:   in.Title,
		Summary: in.Summary,
		Funding: in.Funding,
		Status:  in.Status,
	}
}

// ProjectPatch is a partial update; nil fields are left unchanged
type ProjectPatch struct {
	Title   *string `json:"title"`
	Summary *string `json:"summary"`
	Funding *string `json:"funding"`
	Status  *string `json:"status"`
}

func (p ProjectPatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Summary != nil {
		changes["summary"] = *p.Summary
	}
	if p.Funding != nil {
		changes["funding"] = *p.Funding
	}
	if p.Status != nil {
		changes["status"] = *p.Status
	}
	return changes
}
