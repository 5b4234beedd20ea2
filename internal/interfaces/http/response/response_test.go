package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/interfaces/http/response"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func record(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/", handler)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestSuccess(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.Success(c, http.StatusCreated, gin.H{"id": "abc"})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"abc"}`, w.Body.String())
}

func TestError_AppError(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.Error(c, domainerrors.NotFound("no caregivers in area"))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":404,"message":"no caregivers in area"}`, w.Body.String())
}

func TestError_MasksInternalDetails(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.Error(c, errors.New("pq: connection refused at 10.0.0.3"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestError_Conflict(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.Error(c, domainerrors.Conflict("booking already has a review"))
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "booking already has a review")
}
