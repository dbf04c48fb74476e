package controller

import (
	"net/http"

	"mliou521/Inkwell/internal/api/middleware"
	"mliou521/Inkwell/internal/api/models"
	"mliou521/Inkwell/internal/api/response"
	"mliou521/Inkwell/internal/api/service"
	"mliou521/Inkwell/internal/api/validator"

	"github.com/gin-gonic/gin"
)

// PostController handles post-related HTTP requests.
type PostController struct {
	postService service.PostService
}

// NewPostController creates a new PostController.
func NewPostController(postService service.PostService) *PostController {
	return &PostController{postService: postService}
}

// Create handles POST /posts. The author is always the session user; the
// payload cannot supply authorId.
func (pc *PostController) Create(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.Messages(err))
		return
	}

	session := middleware.CurrentSession(c)
	post, err := pc.postService.Create(c.Request.Context(), session.UserID, &req)
	if err != nil {
		renderError(c, err, "Post")
		return
	}

	response.Created(c, post)
}

// Get handles GET /posts/:id.
func (pc *PostController) Get(c *gin.Context) {
	post, err := pc.postService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err, "Post")
		return
	}

	response.OK(c, post)
}

// List handles GET /posts, newest first.
func (pc *PostController) List(c *gin.Context) {
	posts, err := pc.postService.List(c.Request.Context())
	if err != nil {
		renderError(c, err, "Post")
		return
	}

	response.OK(c, posts)
}

// Update handles PUT /posts/:id.
func (pc *PostController) Update(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.Messages(err))
		return
	}

	post, err := pc.postService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		renderError(c, err, "Post")
		return
	}

	response.OK(c, post)
}

// Delete handles DELETE /posts/:id.
func (pc *PostController) Delete(c *gin.Context) {
	if err := pc.postService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		renderError(c, err, "Post")
		return
	}

	response.Message(c, http.StatusOK, "Post deleted")
}
