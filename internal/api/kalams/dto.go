package kalams

type CreateKalamRequest struct {
	Title         string `json:"title" binding:"required"`
	Language      string `json:"language" binding:"required"`
	Theme         string `json:"theme" binding:"required"`
	BodyText      string `json:"body_text" binding:"required"`
	Description   string `json:"description" binding:"required"`
	InfluenceTag  string `json:"influence_tag" binding:"required"`
	PreferenceTag string `json:"preference_tag" binding:"required"`

	WriterComments *string `json:"writer_comments"`
}

type UpdateKalamRequest struct {
	Title         *string `json:"title"`
	Language      *string `json:"language"`
	Theme         *string `json:"theme"`
	BodyText      *string `json:"body_text"`
	Description   *string `json:"description"`
	InfluenceTag  *string `json:"influence_tag"`
	PreferenceTag *string `json:"preference_tag"`
}

type AssignVocalistRequest struct {
	VocalistID uint `json:"vocalist_id" binding:"required"`
}

type PublishLinkRequest struct {
	Link string `json:"link" binding:"required"`
}

type UpdateStatusRequest struct {
	NewStatus string  `json:"new_status" binding:"required"`
	Comments  *string `json:"comments"`
}

type WriterResponseRequest struct {
	ApprovalStatus string  `json:"approval_status" binding:"required"`
	WriterComments *string `json:"writer_comments"`
}

type VocalistResponseRequest struct {
	ApprovalStatus string `json:"approval_status" binding:"required"`
}
