package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/handler"
	handlermocks "github.com/mishasvintus/document_review_service/internal/handler/mocks"
	"github.com/mishasvintus/document_review_service/internal/service"
)

func TestAdminHandler_RunExpiration(t *testing.T) {
	operator := uuid.New()

	t.Run("success - reports both sweeps", func(t *testing.T) {
		m := handlermocks.NewMockExpirationServiceInterface(t)
		report := &service.SweepReport{
			Pending: []service.Transition{{
				RequestID:  uuid.New(),
				DocumentID: uuid.New(),
				From:       domain.RequestPending,
				To:         domain.RequestExpired,
			}},
			Accepted: []service.Transition{},
		}
		m.EXPECT().RunManual(mock.Anything, operator, mock.AnythingOfType("time.Time")).Return(report, nil)

		h := handler.NewAdminHandler(m)
		w := serve(t, http.MethodPost, "/admin/review-requests/expire", "/admin/review-requests/expire", h.RunExpiration, nil, operator)

		require.Equal(t, http.StatusOK, w.Code)
		var response handler.SweepResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Pending, 1)
		assert.Equal(t, domain.RequestExpired, response.Pending[0].To)
		assert.Empty(t, response.Accepted)
	})

	t.Run("error - sweep failed", func(t *testing.T) {
		m := handlermocks.NewMockExpirationServiceInterface(t)
		m.EXPECT().RunManual(mock.Anything, operator, mock.Anything).Return(nil, assert.AnError)

		h := handler.NewAdminHandler(m)
		w := serve(t, http.MethodPost, "/admin/review-requests/expire", "/admin/review-requests/expire", h.RunExpiration, nil, operator)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAdminHandler_RunExpiration_RoleChecked(t *testing.T) {
	reviewer := uuid.New()
	m := handlermocks.NewMockExpirationServiceInterface(t)
	m.EXPECT().RunManual(mock.Anything, reviewer, mock.Anything).
		Return(nil, &service.ValidationError{Field: "operator_id", Message: "user is not an active business or system admin"})

	h := handler.NewAdminHandler(m)
	w := serve(t, http.MethodPost, "/admin/review-requests/expire", "/admin/review-requests/expire", h.RunExpiration, nil, reviewer)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, handler.ErrorValidation, decodeError(t, w).Error.Code)
}

func TestIdentity_RejectsMalformedHeader(t *testing.T) {
	m := handlermocks.NewMockExpirationServiceInterface(t)
	h := handler.NewAdminHandler(m)

	w := serve(t, http.MethodPost, "/admin/review-requests/expire", "/admin/review-requests/expire", h.RunExpiration, nil, uuid.Nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, handler.ErrorUnauthenticated, decodeError(t, w).Error.Code)
}
