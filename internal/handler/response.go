package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/service"
)

// ErrorCode is the machine-readable part of an error response.
type ErrorCode string

const (
	ErrorNotFound        ErrorCode = "NOT_FOUND"
	ErrorConflict        ErrorCode = "CONFLICT"
	ErrorInvalidState    ErrorCode = "INVALID_STATE"
	ErrorValidation      ErrorCode = "VALIDATION"
	ErrorUnauthenticated ErrorCode = "UNAUTHENTICATED"
	ErrorInternal        ErrorCode = "INTERNAL"
)

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// ReviewRequestResponse represents a review request in responses.
type ReviewRequestResponse struct {
	ID               string `json:"id"`
	DocumentID       string `json:"document_id"`
	ReviewerID       string `json:"reviewer_id"`
	AssignedByID     string `json:"assigned_by"`
	Status           string `json:"status"`
	ResponseDeadline string `json:"response_deadline"`
	ReviewDeadline   string `json:"review_deadline,omitempty"`
	RespondedAt      string `json:"responded_at,omitempty"`
	RejectionReason  string `json:"rejection_reason,omitempty"`
	Note             string `json:"note,omitempty"`
	CreatedAt        string `json:"created_at"`
}

// ReviewResultResponse represents a review result in responses.
type ReviewResultResponse struct {
	ID              string `json:"id"`
	ReviewRequestID string `json:"review_request_id"`
	DocumentID      string `json:"document_id"`
	ReviewerID      string `json:"reviewer_id"`
	Comment         string `json:"comment"`
	ReportFilePath  string `json:"report_file_path"`
	Decision        string `json:"decision"`
	Status          string `json:"status"`
	SubmittedAt     string `json:"submitted_at"`
	ApprovedByID    string `json:"approved_by,omitempty"`
	ApprovedAt      string `json:"approved_at,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

// ReviewRequestEnvelope wraps a single review request.
type ReviewRequestEnvelope struct {
	ReviewRequest *ReviewRequestResponse `json:"review_request"`
}

// ReviewRequestList wraps a page of review requests.
type ReviewRequestList struct {
	ReviewRequests []ReviewRequestResponse `json:"review_requests"`
	Limit          int                     `json:"limit,omitempty"`
	Offset         int                     `json:"offset"`
}

// ReviewResultEnvelope wraps a single review result.
type ReviewResultEnvelope struct {
	ReviewResult *ReviewResultResponse `json:"review_result"`
}

// ReviewResultList wraps a page of review results.
type ReviewResultList struct {
	ReviewResults []ReviewResultResponse `json:"review_results"`
	Limit         int                    `json:"limit,omitempty"`
	Offset        int                    `json:"offset"`
}

// SweepResponse wraps the outcome of a manual expiration run.
type SweepResponse struct {
	Pending  []service.Transition `json:"pending"`
	Accepted []service.Transition `json:"accepted"`
}

// Error sends error response.
func Error(c *gin.Context, code ErrorCode, message string, statusCode int) {
	c.JSON(statusCode, ErrorResponse{
		Error: struct {
			Code    ErrorCode `json:"code"`
			Message string    `json:"message"`
		}{
			Code:    code,
			Message: message,
		},
	})
}

// NotFound sends 404 error.
func NotFound(c *gin.Context, message string) {
	Error(c, ErrorNotFound, message, http.StatusNotFound)
}

// Conflict sends 409 error.
func Conflict(c *gin.Context, message string) {
	Error(c, ErrorConflict, message, http.StatusConflict)
}

// InvalidState sends 422 error.
func InvalidState(c *gin.Context, message string) {
	Error(c, ErrorInvalidState, message, http.StatusUnprocessableEntity)
}

// BadRequest sends 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, ErrorValidation, message, http.StatusBadRequest)
}

// InternalError sends 500 error.
func InternalError(c *gin.Context, message string) {
	Error(c, ErrorInternal, message, http.StatusInternalServerError)
}

// ServiceError maps a workflow error onto its HTTP status.
func ServiceError(c *gin.Context, err error) {
	switch {
	case service.IsNotFound(err):
		NotFound(c, err.Error())
	case service.IsConflict(err):
		Conflict(c, err.Error())
	case service.IsState(err):
		InvalidState(c, err.Error())
	case service.IsValidation(err):
		BadRequest(c, err.Error())
	default:
		InternalError(c, err.Error())
	}
}

// domainToRequestResponse converts domain.ReviewRequest to ReviewRequestResponse.
func domainToRequestResponse(r *domain.ReviewRequest) *ReviewRequestResponse {
	resp := &ReviewRequestResponse{
		ID:               r.ID.String(),
		DocumentID:       r.DocumentID.String(),
		ReviewerID:       r.ReviewerID.String(),
		AssignedByID:     r.AssignedByID.String(),
		Status:           string(r.Status),
		ResponseDeadline: r.ResponseDeadline.Format(time.RFC3339),
		RejectionReason:  r.RejectionReason,
		Note:             r.Note,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}

	if r.ReviewDeadline != nil {
		resp.ReviewDeadline = r.ReviewDeadline.Format(time.RFC3339)
	}
	if r.RespondedAt != nil {
		resp.RespondedAt = r.RespondedAt.Format(time.RFC3339)
	}

	return resp
}

// domainToResultResponse converts domain.ReviewResult to ReviewResultResponse.
func domainToResultResponse(r *domain.ReviewResult) *ReviewResultResponse {
	resp := &ReviewResultResponse{
		ID:              r.ID.String(),
		ReviewRequestID: r.ReviewRequestID.String(),
		DocumentID:      r.DocumentID.String(),
		ReviewerID:      r.ReviewerID.String(),
		Comment:         r.Comment,
		ReportFilePath:  r.ReportFilePath,
		Decision:        string(r.Decision),
		Status:          string(r.Status),
		SubmittedAt:     r.SubmittedAt.Format(time.RFC3339),
		RejectionReason: r.RejectionReason,
	}

	if r.ApprovedByID != nil {
		resp.ApprovedByID = r.ApprovedByID.String()
	}
	if r.ApprovedAt != nil {
		resp.ApprovedAt = r.ApprovedAt.Format(time.RFC3339)
	}

	return resp
}

func requestList(rows []domain.ReviewRequest) []ReviewRequestResponse {
	out := make([]ReviewRequestResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *domainToRequestResponse(&rows[i]))
	}
	return out
}

func resultList(rows []domain.ReviewResult) []ReviewResultResponse {
	out := make([]ReviewResultResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *domainToResultResponse(&rows[i]))
	}
	return out
}
