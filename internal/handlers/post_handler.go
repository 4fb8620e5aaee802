package handlers

import (
	"net/http"

	"adboard_backend/internal/services"
	"adboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	*BaseHandler
	postService services.PostService
}

func NewPostHandler(base *BaseHandler, postService services.PostService) *PostHandler {
	return &PostHandler{
		BaseHandler: base,
		postService: postService,
	}
}

// RegisterPublicRoutes - витрина объявлений, доступна без авторизации
func (h *PostHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	{
		posts.GET("/public", h.GetPublicPosts)
	}
}

func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	{
		posts.POST("", h.CreatePost)
		posts.GET("", h.GetPosts)
		posts.GET("/my", h.GetMyPosts)
		posts.GET("/:id", h.GetPost)
		posts.PATCH("/:id", h.UpdatePost)
		posts.POST("/:id/repost", h.Repost)
		posts.DELETE("/:id", h.DeletePost)
	}
}

// CreatePost godoc
// @Summary Создание объявления
// @Description Первое объявление бесплатно, каждое следующее списывает 5 кредитов
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Данные объявления"
// @Success 201 {object} dto.PostResponse
// @Failure 402 {object} apperrors.AppError
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	post, err := h.postService.CreatePost(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPublicPosts godoc
// @Summary Активные объявления (витрина)
// @Description Возвращает только объявления, у которых не истекло 24-часовое окно видимости
// @Tags posts
// @Produce json
// @Param page query int false "Номер страницы"
// @Param page_size query int false "Размер страницы"
// @Success 200 {array} dto.PublicPostResponse
// @Router /posts/public [get]
func (h *PostHandler) GetPublicPosts(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	db := h.GetDB(c)

	posts, err := h.postService.GetPublicPosts(db, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":     posts,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetPosts godoc
// @Summary Все объявления (включая истекшие)
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Param page query int false "Номер страницы"
// @Param page_size query int false "Размер страницы"
// @Success 200 {array} dto.PostResponse
// @Router /posts [get]
func (h *PostHandler) GetPosts(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	db := h.GetDB(c)

	posts, err := h.postService.GetPosts(db, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":     posts,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetMyPosts godoc
// @Summary Объявления текущего пользователя
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.PostResponse
// @Router /posts/my [get]
func (h *PostHandler) GetMyPosts(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)

	db := h.GetDB(c)

	posts, err := h.postService.GetUserPosts(db, userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":     posts,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetPost godoc
// @Summary Объявление по ID
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID объявления"
// @Success 200 {object} dto.PostResponse
// @Failure 404 {object} apperrors.AppError
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id := c.Param("id")

	db := h.GetDB(c)

	post, err := h.postService.GetPost(db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost godoc
// @Summary Редактирование объявления
// @Description Меняет только переданные поля, окно видимости не трогает
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID объявления"
// @Param request body dto.UpdatePostRequest true "Изменяемые поля"
// @Success 200 {object} dto.PostResponse
// @Failure 403 {object} apperrors.AppError
// @Failure 404 {object} apperrors.AppError
// @Router /posts/{id} [patch]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")

	var req dto.UpdatePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	post, err := h.postService.UpdatePost(db, userID, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Repost godoc
// @Summary Продление объявления
// @Description Списывает 5 кредитов и открывает новое 24-часовое окно видимости
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID объявления"
// @Success 200 {object} dto.PostResponse
// @Failure 402 {object} apperrors.AppError
// @Failure 403 {object} apperrors.AppError
// @Router /posts/{id}/repost [post]
func (h *PostHandler) Repost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")

	db := h.GetDB(c)

	post, err := h.postService.Repost(db, userID, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary Удаление объявления
// @Description Кредиты, потраченные на объявление, не возвращаются
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID объявления"
// @Success 200 {object} dto.DeletePostResponse
// @Failure 403 {object} apperrors.AppError
// @Failure 404 {object} apperrors.AppError
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")

	db := h.GetDB(c)

	resp, err := h.postService.DeletePost(db, userID, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
