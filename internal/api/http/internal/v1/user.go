package v1

import (
	"net/http"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initUsersRoutes(api *gin.RouterGroup) {
	user := api.Group("/user")
	{
		user.GET("", h.getUsers)
		user.POST("", h.createUser)
		user.GET("/:id", h.getUserByID)
		user.PUT("/:id", h.updateUser)
		user.DELETE("/:id", h.deleteUser)
	}

	users := api.Group("/users")
	{
		users.GET("/email/:email", h.getUserByEmail)
		users.GET("/search", h.searchUsers)
		users.GET("/category/:name", h.getUsersByCategory)
		users.GET("/city/:cityId", h.getUsersByCity)
		users.GET("/created_after/:date", h.getUsersCreatedAfter)
		users.GET("/:id/job_postings", h.getUserJobPostings)
	}
}

type createUserRequest struct {
	Name          string  `json:"name" binding:"required,max=255"`
	Email         string  `json:"email" binding:"required,email,max=255"`
	PhoneNumber   *string `json:"phone_number" binding:"omitempty,phonenumber"`
	CategoryID    int64   `json:"category_id" binding:"required,gt=0"`
	CurrentCityID *int64  `json:"current_city_id" binding:"omitempty,gt=0"`
}

type updateUserRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email         *string `json:"email" binding:"omitempty,email,max=255"`
	PhoneNumber   *string `json:"phone_number" binding:"omitempty,phonenumber"`
	CategoryID    *int64  `json:"category_id" binding:"omitempty,gt=0"`
	CurrentCityID *int64  `json:"current_city_id" binding:"omitempty,gt=0"`
}

// @Summary Get Users
// @Tags Users
// @Description Get all users with their category name
// @ModuleID getUsers
// @Accept  json
// @Produce  json
// @Success 200 {array} domain.UserWithCategory
// @Failure 500 {object} ErrorStruct
// @Router /user [get]
func (h *Handler) getUsers(c *gin.Context) {
	users, err := h.services.Users.GetAll(c.Request.Context())
	if err != nil {
		errorResponse(c, "get users failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Create User
// @Tags Users
// @Description Create a user
// @ModuleID createUser
// @Accept  json
// @Produce  json
// @Param input body createUserRequest true "User"
// @Success 201 {object} CreatedStruct
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /user [post]
func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	id, err := h.services.Users.Create(c.Request.Context(), &domain.User{
		Name:          req.Name,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		CategoryID:    req.CategoryID,
		CurrentCityID: req.CurrentCityID,
	})
	if err != nil {
		errorResponse(c, "create user failed", err)
		return
	}
	createdResponse(c, "User created successfully", id)
}

// @Summary Get User By ID
// @Tags Users
// @Description Get one user
// @ModuleID getUserByID
// @Accept  json
// @Produce  json
// @Param id path int true "User ID"
// @Success 200 {object} domain.UserWithCategory
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /user/{id} [get]
func (h *Handler) getUserByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, "get user failed", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Update User
// @Tags Users
// @Description Update the supplied fields of a user
// @ModuleID updateUser
// @Accept  json
// @Produce  json
// @Param id path int true "User ID"
// @Param input body updateUserRequest true "Fields to update"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /user/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	err := h.services.Users.Update(c.Request.Context(), id, domain.UserUpdate{
		Name:          req.Name,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		CategoryID:    req.CategoryID,
		CurrentCityID: req.CurrentCityID,
	})
	if err != nil {
		errorResponse(c, "update user failed", err)
		return
	}
	messageResponse(c, "User updated successfully")
}

// @Summary Delete User
// @Tags Users
// @Description Delete a user together with their postings, applications and sublets
// @ModuleID deleteUser
// @Accept  json
// @Produce  json
// @Param id path int true "User ID"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /user/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Users.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, "delete user failed", err)
		return
	}
	messageResponse(c, "User deleted successfully")
}

// @Summary Get User By Email
// @Tags Users
// @ModuleID getUserByEmail
// @Accept  json
// @Produce  json
// @Param email path string true "Email"
// @Success 200 {object} domain.UserWithCategory
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /users/email/{email} [get]
func (h *Handler) getUserByEmail(c *gin.Context) {
	user, err := h.services.Users.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		errorResponse(c, "get user by email failed", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Search Users
// @Tags Users
// @Description Users whose name or email contains the query
// @ModuleID searchUsers
// @Accept  json
// @Produce  json
// @Param query query string true "Search term"
// @Success 200 {array} domain.UserWithCategory
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /users/search [get]
func (h *Handler) searchUsers(c *gin.Context) {
	users, err := h.services.Users.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		errorResponse(c, "search users failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Get Users By Category
// @Tags Users
// @ModuleID getUsersByCategory
// @Accept  json
// @Produce  json
// @Param name path string true "Category name"
// @Success 200 {array} domain.UserWithCategory
// @Failure 500 {object} ErrorStruct
// @Router /users/category/{name} [get]
func (h *Handler) getUsersByCategory(c *gin.Context) {
	users, err := h.services.Users.GetByCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		errorResponse(c, "get users by category failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Get Users By City
// @Tags Users
// @Description Users currently living in a city, optionally restricted to one category
// @ModuleID getUsersByCity
// @Accept  json
// @Produce  json
// @Param cityId path int true "City ID"
// @Param category query string false "Category name"
// @Success 200 {array} domain.UserWithCategory
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /users/city/{cityId} [get]
func (h *Handler) getUsersByCity(c *gin.Context) {
	cityID, ok := idParam(c, "cityId")
	if !ok {
		return
	}

	users, err := h.services.Users.GetByCity(c.Request.Context(), cityID, c.Query("category"))
	if err != nil {
		errorResponse(c, "get users by city failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Get Users Created After
// @Tags Users
// @ModuleID getUsersCreatedAfter
// @Accept  json
// @Produce  json
// @Param date path string true "Date in YYYY-MM-DD format"
// @Success 200 {array} domain.UserWithCategory
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /users/created_after/{date} [get]
func (h *Handler) getUsersCreatedAfter(c *gin.Context) {
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}

	users, err := h.services.Users.GetCreatedAfter(c.Request.Context(), date.Time)
	if err != nil {
		errorResponse(c, "get users created after failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Get User Job Postings
// @Tags Users
// @Description Job postings owned by a user
// @ModuleID getUserJobPostings
// @Accept  json
// @Produce  json
// @Param id path int true "User ID"
// @Success 200 {array} domain.JobPosting
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /users/{id}/job_postings [get]
func (h *Handler) getUserJobPostings(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	postings, err := h.services.JobPostings.GetByUser(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, "get user job postings failed", err)
		return
	}
	c.JSON(http.StatusOK, postings)
}
