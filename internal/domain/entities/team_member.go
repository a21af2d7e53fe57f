package entities

// TeamMember is a member of the research group, shown on the team page.
type TeamMember struct {
	Content
	Name  string `gorm:"type:text;not null" json:"name"`
	Role  string `gorm:"type:text;not null" json:"role"`
	Email string `gorm:"type:text;not null" json:"email"`
	Bio   string `gorm:"type:text;not null" json:"bio"`
	Image string `gorm:"type:text;not null" json:"image"`
	Order int    `gorm:"column:display_order;not null;default:0" json:"order"`
}

func (TeamMember) TableName() string { return "team_members" }

// InsertTeamMember is the validated create payload for a team member
type InsertTeamMember struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required"`
	Email string `json:"email" binding:"required"`
	Bio   string `json:"bio" binding:"required"`
	Image string `json:"image" binding:"required"`
	Order int    `json:"order"`
}

func (in InsertTeamMember) NewRecord() *TeamMember {
	return &TeamMember{
		Content: NewContent(),
		Name:    in.Name,
		Role:    in.Role,
		Email:   in.Email,
		Bio:     in.Bio,
		Image:   in.Image,
		Order:   in.Order,
	}
}

// TeamMemberPatch is a partial update; nil fields are left unchanged
type TeamMemberPatch struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Email *string `json:"email"`
	Bio   *string `json:"bio"`
	Image *string `json:"image"`
	Order *int    `json:"order"`
}

func (p TeamMemberPatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Role != nil {
		changes["role"] = *p.Role
	}
	if p.Email != nil {
		changes["email"] = *p.Email
	}
	if p.Bio != nil {
		changes["bio"] = *p.Bio
	}
	if p.Image != nil {
		changes["image"] = *p.Image
	}
	if p.Order != nil {
		changes["display_order"] = *p.Order
	}
	return changes
}
