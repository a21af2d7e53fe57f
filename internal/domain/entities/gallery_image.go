package entities

// GalleryImage is a photo shown on the gallery page.
type GalleryImage struct {
	Content
	Src   string `gorm:"type:text;not null" json:"src"`
	Alt   string `gorm:"type:text;not null" json:"alt"`
	Order int    `gorm:"column:display_order;not null;default:0" json:"order"`
}

func (GalleryImage) TableName() string { return "gallery_images" }

// InsertGalleryImage is the validated create payload for a gallery image
type InsertGalleryImage struct {
	Src   string `json:"src" binding:"required"`
	Alt   string `json:"alt" binding:"required"`
	Order int    `json:"order"`
}

func (in InsertGalleryImage) NewRecord() *GalleryImage {
	return &GalleryImage{
		Content: NewContent(),
		Src:     in.Src,
		Alt:     in.Alt,
		Order:   in.Order,
	}
}

// GalleryImagePatch is a partial update; nil fields are left unchanged
type GalleryImagePatch struct {
	Src   *string `json:"src"`
	Alt   *string `json:"alt"`
	Order *int    `json:"order"`
}

func (p GalleryImagePatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Src != nil {
		changes["src"] = *p.Src
	}
	if p.Alt != nil {
		changes["alt"] = *p.Alt
	}
	if p.Order != nil {
		changes["display_order"] = *p.Order
	}
	return changes
}
