package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sweaters/internal/models"
)

// Endpoints relacionados aos usuários
func (h *Handlers) registerUserEndpoints(r *gin.Engine) {
	users := r.Group("/users")
	{
		users.GET("", h.getAllUsers)
		users.POST("", h.createUser)
		users.GET("/:userid", h.getUser)
		users.DELETE("/:userid", h.deleteUser)
		users.POST("/:userid/games", h.addGameToUser)
	}
}

func (h *Handlers) getAllUsers(c *gin.Context) {
	users, err := h.useCases.GetAllUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, models.APIResponse{
		Message: "Users retrieved successfully",
		Data:    map[string]any{"users": users},
	})
}

// Aceita JSON ou query/form: username, email, full_name
func (h *Handlers) createUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		invalid(c, err)
		return
	}

	user, err := h.useCases.CreateUser(c.Request.Context(), req.Username, req.Email, req.FullName)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, models.APIResponse{Message: "User created successfully", User: &user})
}

func (h *Handlers) getUser(c *gin.Context) {
	user, err := h.useCases.GetUser(c.Request.Context(), c.Param("userid"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, models.APIResponse{Message: "User retrieved successfully", User: &user})
}

func (h *Handlers) deleteUser(c *gin.Context) {
	userID := c.Param("userid")
	if err := h.useCases.DeleteUser(c.Request.Context(), userID); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, models.APIResponse{
		Message: "User deleted successfully",
		Data:    map[string]any{"user_id": userID},
	})
}

func (h *Handlers) addGameToUser(c *gin.Context) {
	var req models.AddGameRequest
	if err := c.ShouldBind(&req); err != nil {
		invalid(c, err)
		return
	}

	user, err := h.useCases.AddGameToUser(c.Request.Context(), c.Param("userid"), req.GameID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, models.APIResponse{Message: "Game added to user successfully", User: &user})
}
