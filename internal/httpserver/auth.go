package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *handlers) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	sc := h.scope(c)
	sess, err := sc.session.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		h.fail(c, sc, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Welcome, %s!", sess.DisplayName()),
		"session": toSessionView(*sess),
	})
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	sc := h.scope(c)
	sess, err := sc.session.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, sc, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome, %s!", sess.DisplayName()),
		"session": toSessionView(*sess),
	})
}

func (h *handlers) logout(c *gin.Context) {
	sc := h.scope(c)
	sc.session.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *handlers) me(c *gin.Context) {
	sc := h.scope(c)
	c.JSON(http.StatusOK, toSessionView(sc.session.Current()))
}
