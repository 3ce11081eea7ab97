package report

// ContentReportRequest represents a request to flag content for review.
// The reporter's identity is taken from the authenticated context only;
// there is deliberately no reporter field here.
type ContentReportRequest struct {
	Subject            string `json:"subject" validate:"required,max=200"`
	ContentRef         string `json:"content_ref" validate:"required,max=500"`
	ContentOwnerUserID int64  `json:"content_owner_user_id,omitempty" validate:"omitempty,gt=0"`
	Description        string `json:"description,omitempty" validate:"max=4000"`
	UserAgent          string `json:"user_agent,omitempty" validate:"max=500"`
	Page               string `json:"page,omitempty" validate:"max=500"`
}
