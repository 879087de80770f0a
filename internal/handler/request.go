package handler

// AssignRequest represents request body for POST /business-admin/documents/:documentId/review-requests.
type AssignRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required,uuid"`
	Note       string `json:"note"`
}

// ChangeReviewerRequest represents request body for PUT .../review-requests/:requestId/reviewer.
type ChangeReviewerRequest struct {
	ReviewerID string  `json:"reviewer_id" binding:"required,uuid"`
	Note       *string `json:"note"`
}

// RespondRequest represents request body for POST /reviewer/review-requests/:requestId/respond.
type RespondRequest struct {
	Accept *bool  `json:"accept" binding:"required"`
	Reason string `json:"reason"`
}

// SubmitRequest represents request body for POST /reviewer/review-requests/:requestId/results.
type SubmitRequest struct {
	Comment        string `json:"comment" binding:"required"`
	ReportFilePath string `json:"report_file_path" binding:"required"`
	Decision       string `json:"decision" binding:"required,oneof=APPROVED REJECTED"`
}

// RejectResultRequest represents request body for POST /business-admin/review-results/:resultId/reject.
type RejectResultRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListQuery holds the paging and status query parameters of list endpoints.
type ListQuery struct {
	Status string `form:"status"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}
