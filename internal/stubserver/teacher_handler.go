package stubserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TeacherHandler serves the read-only teacher reference endpoints.
type TeacherHandler struct {
	store *Store
}

// NewTeacherHandler creates a teacher handler.
func NewTeacherHandler(store *Store) *TeacherHandler {
	return &TeacherHandler{store: store}
}

// List returns all teachers.
func (h *TeacherHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Teachers())
}

// Detail returns one teacher by id.
func (h *TeacherHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	teacher, err := h.store.TeacherByID(id)
	if err != nil {
		respondMessage(c, http.StatusNotFound, "Teacher not found")
		return
	}
	c.JSON(http.StatusOK, teacher)
}
