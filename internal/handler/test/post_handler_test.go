package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"forumCPT/internal/models"
)

func TestGetPostsHandler_Pagination(t *testing.T) {
	handler := createTestHandler()
	mockPosts := handler.PostService.(*MockPostService)

	mockPosts.On("GetPosts", mock.Anything, 2, 5).
		Return([]models.Post{
			{PostID: testPostID, Title: "Заголовок", Likes: []string{}, Dislikes: []string{}},
		}, 11, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/posts?page=2&limit=5", nil)
	rr := httptest.NewRecorder()

	handler.GetPosts(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)

	pagination, ok := response["pagination"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(11), pagination["total"])
	assert.Equal(t, float64(3), pagination["totalPages"])

	mockPosts.AssertExpectations(t)
}

func TestGetPostsHandler_DefaultPagination(t *testing.T) {
	handler := createTestHandler()
	mockPosts := handler.PostService.(*MockPostService)

	mockPosts.On("GetPosts", mock.Anything, 1, 10).
		Return([]models.Post{}, 0, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/posts?page=-1&limit=100500", nil)
	rr := httptest.NewRecorder()

	handler.GetPosts(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockPosts.AssertExpectations(t)
}

func TestDeletePostHandler_ReturnsPoints(t *testing.T) {
	handler := createTestHandler()
	mockPosts := handler.PostService.(*MockPostService)

	mockPosts.On("DeletePost", mock.Anything, testPostID, "user-1").
		Return(4, nil)

	req := authedRequest(http.MethodDelete, "/api/posts/"+testPostID, "user-1",
		map[string]string{"postId": testPostID})
	rr := httptest.NewRecorder()

	handler.DeletePost(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, float64(4), response["points"])

	mockPosts.AssertExpectations(t)
}

func TestDeletePostHandler_Forbidden(t *testing.T) {
	handler := createTestHandler()
	mockPosts := handler.PostService.(*MockPostService)

	mockPosts.On("DeletePost", mock.Anything, testPostID, "user-2").
		Return(0, errForbidden{})

	req := authedRequest(http.MethodDelete, "/api/posts/"+testPostID, "user-2",
		map[string]string{"postId": testPostID})
	rr := httptest.NewRecorder()

	handler.DeletePost(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	mockPosts.AssertExpectations(t)
}

type errForbidden struct{}

func (errForbidden) Error() string { return "нет прав на удаление поста" }
