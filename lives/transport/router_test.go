package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/imtaco/showroom-live/internal/errors"
	"github.com/imtaco/showroom-live/internal/log"
	"github.com/imtaco/showroom-live/lives"
	"github.com/imtaco/showroom-live/lives/mocks"
)

var liveRoom = lives.LiveRoom{
	Name:             "Freya",
	Img:              "f.jpg",
	URL:              "48_Freya",
	RoomID:           317727,
	StartedAt:        1700000000000,
	RoomExists:       true,
	StreamingURLList: []lives.StreamingURL{},
}

func setupRouter(t *testing.T) (*Router, *mocks.MockService) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockService(ctrl)
	router := NewRouter(mockService, []string{"jkt48", "hinatazaka46"}, log.NewTest(t))
	return router, mockService
}

func get(router *Router, url string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", url, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	router.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupRouter(t)

	w := get(router, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
	assert.Equal(t, "showroom-live", response["service"])
}

func TestNowLive(t *testing.T) {
	t.Run("KnownGroup", func(t *testing.T) {
		router, mockService := setupRouter(t)
		mockService.EXPECT().GetNowLive(gomock.Any(), "jkt48").Return([]lives.LiveRoom{liveRoom}, nil)

		w := get(router, "/api/showroom/now_live?group=JKT48", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var rooms []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
		require.Len(t, rooms, 1)
		assert.Equal(t, "Freya", rooms[0]["name"])
		assert.Equal(t, float64(317727), rooms[0]["room_id"])
		assert.Equal(t, float64(1700000000000), rooms[0]["started_at"])
		assert.Equal(t, []any{}, rooms[0]["streaming_url_list"])
		assert.Equal(t, false, rooms[0]["is_premium"])
	})

	t.Run("UnknownGroupMeansAll", func(t *testing.T) {
		router, mockService := setupRouter(t)
		mockService.EXPECT().GetNowLive(gomock.Any(), "").Return([]lives.LiveRoom{}, nil)

		w := get(router, "/api/showroom/now_live?group=nogizaka46", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("NoGroup", func(t *testing.T) {
		router, mockService := setupRouter(t)
		mockService.EXPECT().GetNowLive(gomock.Any(), "").Return(nil, nil)

		w := get(router, "/api/showroom/now_live", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("MalformedGroup", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := get(router, "/api/showroom/now_live?group=jkt-48", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, false, response["success"])
		assert.NotEmpty(t, response["details"])
	})

	t.Run("DirectoryDown", func(t *testing.T) {
		router, mockService := setupRouter(t)
		mockService.EXPECT().GetNowLive(gomock.Any(), "jkt48").
			Return(nil, errors.New(lives.ErrDirectory, "redis down"))

		w := get(router, "/api/showroom/now_live?group=jkt48", nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"directory unavailable"}`, w.Body.String())
	})

	t.Run("UnexpectedError", func(t *testing.T) {
		router, mockService := setupRouter(t)
		mockService.EXPECT().GetNowLive(gomock.Any(), "").Return(nil, errors.PureNew("boom"))

		w := get(router, "/api/showroom/now_live", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestNowLiveStrategies(t *testing.T) {
	t.Run("Direct", func(t *testing.T) {
		router, mockService := setupRouter(t)
		mockService.EXPECT().GetNowLiveDirect(gomock.Any(), nil, "hinatazaka46").Return([]lives.LiveRoom{liveRoom}, nil)

		w := get(router, "/api/showroom/now_live/direct?group=hinatazaka46", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Followed", func(t *testing.T) {
		router, mockService := setupRouter(t)
		mockService.EXPECT().GetNowLiveFollowed(gomock.Any(), nil, "").Return([]lives.LiveRoom{liveRoom}, nil)

		w := get(router, "/api/showroom/now_live/followed", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Global", func(t *testing.T) {
		router, mockService := setupRouter(t)
		mockService.EXPECT().GetNowLiveGlobal(gomock.Any(), nil).Return([]lives.LiveRoom{liveRoom}, nil)

		w := get(router, "/api/showroom/now_live/global", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var rooms []lives.LiveRoom
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
		assert.Equal(t, []lives.LiveRoom{liveRoom}, rooms)
	})

	t.Run("GlobalFeedDown", func(t *testing.T) {
		router, mockService := setupRouter(t)
		mockService.EXPECT().GetNowLiveGlobal(gomock.Any(), nil).
			Return(nil, errors.New(lives.ErrFeed, "onlives 503"))

		w := get(router, "/api/showroom/now_live/global", nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"feed unavailable"}`, w.Body.String())
	})
}

func TestRequestID(t *testing.T) {
	t.Run("Echoed", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := get(router, "/health", http.Header{"X-Request-Id": []string{"abc-123"}})

		assert.Equal(t, "abc-123", w.Header().Get("X-Request-Id"))
	})

	t.Run("Generated", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := get(router, "/health", nil)

		assert.Len(t, w.Header().Get("X-Request-Id"), 36)
	})
}

func TestCORS(t *testing.T) {
	router, mockService := setupRouter(t)
	mockService.EXPECT().GetNowLiveGlobal(gomock.Any(), nil).Return(nil, nil)

	w := get(router, "/api/showroom/now_live/global", http.Header{"Origin": []string{"https://example.com"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestGroupsResolve(t *testing.T) {
	g := NewGroups([]string{" JKT48 ", "hinatazaka46", ""})

	assert.Len(t, g, 2)
	assert.Equal(t, "jkt48", g.Resolve("jkt48"))
	assert.Equal(t, "hinatazaka46", g.Resolve("Hinatazaka46"))
	assert.Equal(t, "", g.Resolve("akb48"))
	assert.Equal(t, "", g.Resolve(""))
}
