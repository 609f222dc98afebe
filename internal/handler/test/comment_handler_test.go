package test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"forumCPT/internal/models"
)

func authedJSONRequest(method, target, userID string, vars map[string]string, body interface{}) *http.Request {
	encoded, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewBuffer(encoded))
	req.Header.Set("Content-Type", "application/json")
	ctx := context.WithValue(req.Context(), "userID", userID)
	req = req.WithContext(ctx)
	return mux.SetURLVars(req, vars)
}

func TestAddCommentHandler_Success(t *testing.T) {
	handler := createTestHandler()
	mockComments := handler.CommentService.(*MockCommentService)

	mockComments.On("AddComment", mock.Anything, testPostID, "user-1", "Первый!").
		Return(&models.Comment{
			CommentID: testCommentID,
			PostID:    testPostID,
			AuthorID:  "user-1",
			Content:   "Первый!",
		}, 1, nil)

	req := authedJSONRequest(http.MethodPost, "/api/posts/"+testPostID+"/comments", "user-1",
		map[string]string{"postId": testPostID},
		map[string]string{"content": "Первый!"})
	rr := httptest.NewRecorder()

	handler.AddComment(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, float64(1), response["points"])

	mockComments.AssertExpectations(t)
}

func TestAddCommentHandler_EmptyContent(t *testing.T) {
	handler := createTestHandler()

	req := authedJSONRequest(http.MethodPost, "/api/posts/"+testPostID+"/comments", "user-1",
		map[string]string{"postId": testPostID},
		map[string]string{"content": "   "})
	rr := httptest.NewRecorder()

	handler.AddComment(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "Введите текст комментария")
}

func TestDeleteCommentHandler_ReturnsPoints(t *testing.T) {
	handler := createTestHandler()
	mockComments := handler.CommentService.(*MockCommentService)

	mockComments.On("DeleteComment", mock.Anything, testCommentID, "user-1").
		Return(0, nil)

	req := authedRequest(http.MethodDelete,
		"/api/posts/"+testPostID+"/comments/"+testCommentID, "user-1",
		map[string]string{"postId": testPostID, "commentId": testCommentID})
	rr := httptest.NewRecorder()

	handler.DeleteComment(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, float64(0), response["points"])

	mockComments.AssertExpectations(t)
}
