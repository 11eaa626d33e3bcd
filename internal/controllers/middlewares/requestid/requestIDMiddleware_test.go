package requestIDMiddleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	requestIDMiddleware "github.com/matbuddy/go-matbuddy/internal/controllers/middlewares/requestid"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter() *gin.Engine {
	router := gin.New()
	router.Use(requestIDMiddleware.RequestID())
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(requestIDMiddleware.RequestIDContextKey))
	})
	return router
}

func TestRequestID(t *testing.T) {
	t.Run("Generates an id when none supplied", func(t *testing.T) {
		router := newTestRouter()
		recorder := httptest.NewRecorder()

		request, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)

		router.ServeHTTP(recorder, request)

		requestID := recorder.Header().Get(requestIDMiddleware.RequestIDHeaderKey)
		require.NotEmpty(t, requestID)

		_, err = uuid.Parse(requestID)
		require.NoError(t, err)

		require.Equal(t, requestID, recorder.Body.String())
	})

	t.Run("Keeps a client-supplied id", func(t *testing.T) {
		router := newTestRouter()
		recorder := httptest.NewRecorder()

		request, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)

		supplied := uuid.NewString()
		request.Header.Set(requestIDMiddleware.RequestIDHeaderKey, supplied)

		router.ServeHTTP(recorder, request)

		require.Equal(t, supplied, recorder.Header().Get(requestIDMiddleware.RequestIDHeaderKey))
		require.Equal(t, supplied, recorder.Body.String())
	})
}
