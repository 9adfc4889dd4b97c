package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/boleias/internal/pkg/apperrors"
	"github.com/piresc/boleias/internal/pkg/middleware"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/internal/utils"
	"github.com/piresc/boleias/services/match/mocks"
)

var coordinator = models.AuthContext{Role: models.RoleCoordinator, CoordinatorName: "Ana"}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetAuthContext(c, coordinator)
	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestNewMatchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockMatchUC, handler.matchUC)
}

func TestMatchHandler_ProposeMatch(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockSetup    func(m *mocks.MockMatchUC)
		expectedCode int
		expectedErr  string
		expectedFld  string
	}{
		{
			name: "Success fills coordinator from session",
			body: `{"request_id":"r-1","offer_id":"o-1","coordinator_phone":"912345678"}`,
			mockSetup: func(m *mocks.MockMatchUC) {
				m.EXPECT().
					ProposeMatch(gomock.Any(), coordinator, models.ProposeMatchRequest{
						RequestID:        "r-1",
						OfferID:          "o-1",
						CoordinatorName:  "Ana",
						CoordinatorPhone: "912345678",
					}).
					Return(&models.Match{ID: "m-1", Status: models.MatchStatusProposed}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid body",
			body:         `{"request_id":`,
			mockSetup:    func(m *mocks.MockMatchUC) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Incompatible pair is a field error",
			body: `{"request_id":"r-1","offer_id":"o-1","coordinator_phone":"912345678"}`,
			mockSetup: func(m *mocks.MockMatchUC) {
				m.EXPECT().ProposeMatch(gomock.Any(), coordinator, gomock.Any()).
					Return(nil, apperrors.Validation("offer_id", "offer is not compatible with request"))
			},
			expectedCode: http.StatusBadRequest,
			expectedFld:  "offer_id",
		},
		{
			name: "Already matched",
			body: `{"request_id":"r-1","offer_id":"o-1","coordinator_phone":"912345678"}`,
			mockSetup: func(m *mocks.MockMatchUC) {
				m.EXPECT().ProposeMatch(gomock.Any(), coordinator, gomock.Any()).
					Return(nil, apperrors.Conflict(models.EntityOffer, "o-1", "offer is RESERVED"))
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "reload and try again",
		},
		{
			name: "Store unavailable",
			body: `{"request_id":"r-1","offer_id":"o-1","coordinator_phone":"912345678"}`,
			mockSetup: func(m *mocks.MockMatchUC) {
				m.EXPECT().ProposeMatch(gomock.Any(), coordinator, gomock.Any()).
					Return(nil, apperrors.Transient("propose match", assert.AnError))
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMatchUC := mocks.NewMockMatchUC(ctrl)
			tc.mockSetup(mockMatchUC)
			handler := NewMatchHandler(mockMatchUC)

			c, rec := newContext(http.MethodPost, "/api/v1/coordinator/matches", tc.body)
			err := handler.ProposeMatch(c)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedErr != "" {
				assert.Contains(t, decodeError(t, rec).Error, tc.expectedErr)
			}
			if tc.expectedFld != "" {
				assert.Equal(t, tc.expectedFld, decodeError(t, rec).Field)
			}
		})
	}
}

func TestMatchHandler_TransitionMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	mockMatchUC.EXPECT().
		TransitionMatch(gomock.Any(), coordinator, "m-1", models.MatchStatusConfirmed).
		Return(&models.Match{ID: "m-1", Status: models.MatchStatusConfirmed}, nil)

	c, rec := newContext(http.MethodPost, "/", `{"status":"CONFIRMED"}`)
	c.SetParamNames("id")
	c.SetParamValues("m-1")

	require.NoError(t, handler.TransitionMatch(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"CONFIRMED"`)
}

func TestMatchHandler_TransitionMatch_Illegal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	mockMatchUC.EXPECT().
		TransitionMatch(gomock.Any(), coordinator, "m-1", models.MatchStatusConfirmed).
		Return(nil, &apperrors.IllegalTransitionError{
			Entity: models.EntityMatch, ID: "m-1", From: "CONFIRMED", To: "CONFIRMED",
		})

	c, rec := newContext(http.MethodPost, "/", `{"status":"CONFIRMED"}`)
	c.SetParamNames("id")
	c.SetParamValues("m-1")

	require.NoError(t, handler.TransitionMatch(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error, "illegal match m-1 transition")
}

func TestMatchHandler_TransitionMatch_MissingStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewMatchHandler(mocks.NewMockMatchUC(ctrl))

	c, rec := newContext(http.MethodPost, "/", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("m-1")

	require.NoError(t, handler.TransitionMatch(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "status", decodeError(t, rec).Field)
}

func TestMatchHandler_ListMatches_PassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	mockMatchUC.EXPECT().
		ListMatches(gomock.Any(), coordinator, models.MatchFilter{Status: models.MatchStatusProposed, RequestID: "r-1"}).
		Return([]*models.MatchDetail{{Match: &models.Match{ID: "m-1"}}}, nil)

	c, rec := newContext(http.MethodGet, "/api/v1/coordinator/matches?status=PROPOSED&request_id=r-1", "")

	require.NoError(t, handler.ListMatches(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"m-1"`)
}

func TestMatchHandler_GetCompatibleOffers_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	mockMatchUC.EXPECT().
		GetCompatibleOffers(gomock.Any(), models.PublicAuth(), "r-1").
		Return(nil, apperrors.Forbidden("list compatible offers"))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("r-1")

	require.NoError(t, handler.GetCompatibleOffers(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMatchHandler_GetMatch_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	mockMatchUC.EXPECT().
		GetMatch(gomock.Any(), coordinator, "m-9").
		Return(nil, apperrors.NotFound(models.EntityMatch, "m-9"))

	c, rec := newContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("m-9")

	require.NoError(t, handler.GetMatch(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMatchHandler_UpdateRequestStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	mockMatchUC.EXPECT().
		UpdateRequestStatus(gomock.Any(), coordinator, "r-1", models.RequestStatusTriage).
		Return(&models.RideRequest{ID: "r-1", Status: models.RequestStatusTriage}, nil)

	c, rec := newContext(http.MethodPost, "/", `{"status":"TRIAGE"}`)
	c.SetParamNames("id")
	c.SetParamValues("r-1")

	require.NoError(t, handler.UpdateRequestStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMatchHandler_UpdateOfferStatus_Illegal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	mockMatchUC.EXPECT().
		UpdateOfferStatus(gomock.Any(), coordinator, "o-1", models.OfferStatusReserved).
		Return(nil, &apperrors.IllegalTransitionError{Entity: models.EntityOffer, From: "AVAILABLE", To: "RESERVED"})

	c, rec := newContext(http.MethodPost, "/", `{"status":"RESERVED"}`)
	c.SetParamNames("id")
	c.SetParamValues("o-1")

	require.NoError(t, handler.UpdateOfferStatus(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
