package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReviewRequestHandler handles review request HTTP requests for business
// admins and reviewers.
type ReviewRequestHandler struct {
	assignment AssignmentServiceInterface
	response   ResponseServiceInterface
	queries    QueryServiceInterface
}

// NewReviewRequestHandler creates a new review request handler.
func NewReviewRequestHandler(assignment AssignmentServiceInterface, response ResponseServiceInterface, queries QueryServiceInterface) *ReviewRequestHandler {
	return &ReviewRequestHandler{
		assignment: assignment,
		response:   response,
		queries:    queries,
	}
}

// Assign handles POST /business-admin/documents/:documentId/review-requests.
func (h *ReviewRequestHandler) Assign(c *gin.Context) {
	documentID, ok := pathUUID(c, "documentId")
	if !ok {
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	created, err := h.assignment.Assign(c.Request.Context(), callerID(c), documentID, uuid.MustParse(req.ReviewerID), req.Note)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ReviewRequestEnvelope{
		ReviewRequest: domainToRequestResponse(created),
	})
}

// ChangeReviewer handles PUT /business-admin/documents/:documentId/review-requests/:requestId/reviewer.
func (h *ReviewRequestHandler) ChangeReviewer(c *gin.Context) {
	documentID, ok := pathUUID(c, "documentId")
	if !ok {
		return
	}
	requestID, ok := pathUUID(c, "requestId")
	if !ok {
		return
	}

	var req ChangeReviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.assignment.ChangeReviewer(c.Request.Context(), callerID(c), documentID, requestID, uuid.MustParse(req.ReviewerID), req.Note)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReviewRequestEnvelope{
		ReviewRequest: domainToRequestResponse(updated),
	})
}

// ListDocumentRequests handles GET /business-admin/documents/:documentId/review-requests.
func (h *ReviewRequestHandler) ListDocumentRequests(c *gin.Context) {
	documentID, ok := pathUUID(c, "documentId")
	if !ok {
		return
	}
	page, _, ok := bindList(c)
	if !ok {
		return
	}

	rows, err := h.queries.ListDocumentRequests(c.Request.Context(), callerID(c), documentID, page)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReviewRequestList{
		ReviewRequests: requestList(rows),
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
}

// ListRequests handles GET /business-admin/review-requests.
func (h *ReviewRequestHandler) ListRequests(c *gin.Context) {
	page, raw, ok := bindList(c)
	if !ok {
		return
	}
	statuses, ok := parseRequestStatuses(c, raw)
	if !ok {
		return
	}

	rows, err := h.queries.ListRequests(c.Request.Context(), callerID(c), statuses, page)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReviewRequestList{
		ReviewRequests: requestList(rows),
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
}

// ListMine handles GET /reviewer/review-requests.
func (h *ReviewRequestHandler) ListMine(c *gin.Context) {
	page, raw, ok := bindList(c)
	if !ok {
		return
	}
	statuses, ok := parseRequestStatuses(c, raw)
	if !ok {
		return
	}

	rows, err := h.queries.ListReviewerRequests(c.Request.Context(), callerID(c), statuses, page)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReviewRequestList{
		ReviewRequests: requestList(rows),
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
}

// Respond handles POST /reviewer/review-requests/:requestId/respond.
func (h *ReviewRequestHandler) Respond(c *gin.Context) {
	requestID, ok := pathUUID(c, "requestId")
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.response.Respond(c.Request.Context(), callerID(c), requestID, *req.Accept, req.Reason)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReviewRequestEnvelope{
		ReviewRequest: domainToRequestResponse(updated),
	})
}
