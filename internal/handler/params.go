package handler

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/store"
)

// pathUUID parses a uuid path parameter, writing a 400 on failure.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		BadRequest(c, fmt.Sprintf("invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

// bindList parses paging and the comma-separated status list.
func bindList(c *gin.Context) (store.Page, []string, bool) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		BadRequest(c, "invalid query parameters")
		return store.Page{}, nil, false
	}

	page := store.Page{Limit: q.Limit, Offset: q.Offset}.Normalize()

	var statuses []string
	for _, s := range strings.Split(q.Status, ",") {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, strings.ToUpper(s))
		}
	}

	return page, statuses, true
}

func parseRequestStatuses(c *gin.Context, raw []string) ([]domain.RequestStatus, bool) {
	out := make([]domain.RequestStatus, 0, len(raw))
	for _, s := range raw {
		st, err := domain.NewRequestStatus(s)
		if err != nil {
			BadRequest(c, err.Error())
			return nil, false
		}
		out = append(out, st)
	}
	return out, true
}

func parseResultStatuses(c *gin.Context, raw []string) ([]domain.ResultStatus, bool) {
	out := make([]domain.ResultStatus, 0, len(raw))
	for _, s := range raw {
		st, err := domain.NewResultStatus(s)
		if err != nil {
			BadRequest(c, err.Error())
			return nil, false
		}
		out = append(out, st)
	}
	return out, true
}
