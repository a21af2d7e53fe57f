package entities

// Activity is a group event (talks, workshops, outreach). The date is free
// text as displayed, not a parsed timestamp.
type Activity struct {
	Content
	Title       string `gorm:"type:text;not null" json:"title"`
	Date        string `gorm:"type:text;not null" json:"date"`
	Description string `gorm:"type:text;not null" json:"description"`
	Image       string `gorm:"type:text;not null" json:"image"`
}

func (Activity) TableName() string { return "activities" }

// InsertActivity is the validated create payload for an activity
type InsertActivity struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image" binding:"required"`
}

func (in InsertActivity) NewRecord() *Activity {
	return &Activity{
		Content:     NewContent(),
		Title:       in.Title,
		Date:        in.Date,
		Description: in.Description,
		Image:       in.Image,
	}
}

// ActivityPatch is a partial update; nil fields are left unchanged
type ActivityPatch struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func (p ActivityPatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Date != nil {
		changes["date"] = *p.Date
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Image != nil {
		changes["image"] = *p.Image
	}
	return changes
}
