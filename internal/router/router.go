package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/document_review_service/internal/handler"
)

// SetupRoutes configures all API routes.
func SetupRoutes(
	requestHandler *handler.ReviewRequestHandler,
	resultHandler *handler.ReviewResultHandler,
	adminHandler *handler.AdminHandler,
) *gin.Engine {
	r := gin.Default()

	api := r.Group("/", handler.Identity())

	// Business admin endpoints
	ba := api.Group("/business-admin")
	ba.POST("/documents/:documentId/review-requests", requestHandler.Assign)
	ba.GET("/documents/:documentId/review-requests", requestHandler.ListDocumentRequests)
	ba.PUT("/documents/:documentId/review-requests/:requestId/reviewer", requestHandler.ChangeReviewer)
	ba.GET("/review-requests", requestHandler.ListRequests)
	ba.GET("/review-results", resultHandler.ListQueue)
	ba.GET("/review-results/:resultId", resultHandler.Get)
	ba.POST("/review-results/:resultId/approve", resultHandler.Approve)
	ba.POST("/review-results/:resultId/reject", resultHandler.Reject)

	// Reviewer endpoints
	rv := api.Group("/reviewer")
	rv.GET("/review-requests", requestHandler.ListMine)
	rv.POST("/review-requests/:requestId/respond", requestHandler.Respond)
	rv.POST("/review-requests/:requestId/results", resultHandler.Submit)
	rv.GET("/review-requests/:requestId/results", resultHandler.ListRequestResults)
	rv.GET("/review-results", resultHandler.ListMine)

	// Operator endpoints
	api.POST("/admin/review-requests/expire", adminHandler.RunExpiration)

	return r
}
