package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/service"
)

// ReviewResultHandler handles review result HTTP requests.
type ReviewResultHandler struct {
	submission SubmissionServiceInterface
	approval   ApprovalServiceInterface
	queries    QueryServiceInterface
}

// NewReviewResultHandler creates a new review result handler.
func NewReviewResultHandler(submission SubmissionServiceInterface, approval ApprovalServiceInterface, queries QueryServiceInterface) *ReviewResultHandler {
	return &ReviewResultHandler{
		submission: submission,
		approval:   approval,
		queries:    queries,
	}
}

// Submit handles POST /reviewer/review-requests/:requestId/results.
func (h *ReviewResultHandler) Submit(c *gin.Context) {
	requestID, ok := pathUUID(c, "requestId")
	if !ok {
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	created, err := h.submission.Submit(c.Request.Context(), callerID(c), requestID, service.SubmitInput{
		Comment:        req.Comment,
		ReportFilePath: req.ReportFilePath,
		Decision:       domain.Decision(req.Decision),
	})
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ReviewResultEnvelope{
		ReviewResult: domainToResultResponse(created),
	})
}

// ListRequestResults handles GET /reviewer/review-requests/:requestId/results.
func (h *ReviewResultHandler) ListRequestResults(c *gin.Context) {
	requestID, ok := pathUUID(c, "requestId")
	if !ok {
		return
	}
	page, _, ok := bindList(c)
	if !ok {
		return
	}

	rows, err := h.queries.ListRequestResults(c.Request.Context(), callerID(c), requestID, page)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReviewResultList{
		ReviewResults: resultList(rows),
		Limit:         page.Limit,
		Offset:        page.Offset,
	})
}

// ListMine handles GET /reviewer/review-results.
func (h *ReviewResultHandler) ListMine(c *gin.Context) {
	page, raw, ok := bindList(c)
	if !ok {
		return
	}
	statuses, ok := parseResultStatuses(c, raw)
	if !ok {
		return
	}

	rows, err := h.queries.ListReviewerResults(c.Request.Context(), callerID(c), statuses, page)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReviewResultList{
		ReviewResults: resultList(rows),
		Limit:         page.Limit,
		Offset:        page.Offset,
	})
}

// ListQueue handles GET /business-admin/review-results. Without a status
// filter it lists results awaiting a decision.
func (h *ReviewResultHandler) ListQueue(c *gin.Context) {
	page, raw, ok := bindList(c)
	if !ok {
		return
	}
	statuses, ok := parseResultStatuses(c, raw)
	if !ok {
		return
	}
	if len(statuses) == 0 {
		statuses = []domain.ResultStatus{domain.ResultPending}
	}

	rows, err := h.queries.ListResultsByStatus(c.Request.Context(), callerID(c), statuses, page)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReviewResultList{
		ReviewResults: resultList(rows),
		Limit:         page.Limit,
		Offset:        page.Offset,
	})
}

// Get handles GET /business-admin/review-results/:resultId.
func (h *ReviewResultHandler) Get(c *gin.Context) {
	resultID, ok := pathUUID(c, "resultId")
	if !ok {
		return
	}

	res, err := h.queries.GetResult(c.Request.Context(), callerID(c), resultID)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReviewResultEnvelope{
		ReviewResult: domainToResultResponse(res),
	})
}

// Approve handles POST /business-admin/review-results/:resultId/approve.
func (h *ReviewResultHandler) Approve(c *gin.Context) {
	resultID, ok := pathUUID(c, "resultId")
	if !ok {
		return
	}

	res, err := h.approval.Approve(c.Request.Context(), callerID(c), resultID)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReviewResultEnvelope{
		ReviewResult: domainToResultResponse(res),
	})
}

// Reject handles POST /business-admin/review-results/:resultId/reject.
func (h *ReviewResultHandler) Reject(c *gin.Context) {
	resultID, ok := pathUUID(c, "resultId")
	if !ok {
		return
	}

	var req RejectResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	res, err := h.approval.Reject(c.Request.Context(), callerID(c), resultID, req.Reason)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReviewResultEnvelope{
		ReviewResult: domainToResultResponse(res),
	})
}
