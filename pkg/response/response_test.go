package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList_EmptySliceKeepsDataAndCount(t *testing.T) {
	rec := httptest.NewRecorder()
	List(rec, []string{}, 0)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":[],"count":0}`, rec.Body.String())
}

func TestError_OmitsEmptyMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusBadRequest, "", "Invalid latitude or longitude")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid latitude or longitude"}`, rec.Body.String())
}

func TestNotFound_DefaultMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Resource not found"}`, rec.Body.String())
}
