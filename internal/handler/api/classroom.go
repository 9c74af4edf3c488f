package api

import (
	"errors"
	"net/http"

	"classreserve/internal/domain/classroom"
	"classreserve/internal/domain/reservation"
	reqdto "classreserve/internal/handler/dto/request"
	resdto "classreserve/internal/handler/dto/response"
	"classreserve/internal/pkg/clock"
	"classreserve/internal/usecase/commands"
	"classreserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ClassroomHandler struct {
	classroomCommands  commands.ClassroomCommands
	classroomQueries   queries.ClassroomQueries
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
}

func NewClassroomHandler(
	classroomCommands commands.ClassroomCommands,
	classroomQueries queries.ClassroomQueries,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
) *ClassroomHandler {
	return &ClassroomHandler{
		classroomCommands:  classroomCommands,
		classroomQueries:   classroomQueries,
		reservationQueries: reservationQueries,
		clock:              clk,
	}
}

// @Summary List classrooms
// @Description List the classroom catalog
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ClassroomResponse
// @Router /classrooms [get]
func (h *ClassroomHandler) ListClassrooms(c *gin.Context) {
	views, err := h.classroomQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromClassroomViews(views))
}

// @Summary Get classroom
// @Description Get classroom by ID
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Success 200 {object} resdto.ClassroomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /classrooms/{id} [get]
func (h *ClassroomHandler) GetClassroom(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid classroom ID format",
		})
		return
	}

	view, err := h.classroomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, classroom.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Classroom not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromClassroomView(view))
}

// @Summary Classroom reservations
// @Description List a classroom's reservations for a day, ordered by start time. Defaults to today.
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /classrooms/{id}/reservations [get]
func (h *ClassroomHandler) GetClassroomReservations(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid classroom ID format",
		})
		return
	}

	date := c.Query("date")
	if date == "" {
		date = h.clock.Now().Format("2006-01-02")
	}

	views, err := h.reservationQueries.ListByClassroom(c.Request.Context(), id, &date)
	if err != nil {
		switch {
		case errors.Is(err, classroom.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Classroom not found",
			})
		case errors.Is(err, reservation.ErrInvalidDateFormat):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Create classroom
// @Description Add a classroom to the catalog (admin only)
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ClassroomRequest true "Classroom request"
// @Success 201 {object} resdto.CreateClassroomResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /classrooms [post]
func (h *ClassroomHandler) CreateClassroom(c *gin.Context) {
	var req reqdto.ClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.classroomCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writeClassroomError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateClassroomResponse{ID: id})
}

// @Summary Update classroom
// @Description Replace a classroom's attributes (admin only)
// @Tags classrooms
// @Accept json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Param request body reqdto.ClassroomRequest true "Classroom request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /classrooms/{id} [put]
func (h *ClassroomHandler) UpdateClassroom(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid classroom ID format",
		})
		return
	}

	var req reqdto.ClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.classroomCommands.Update(c.Request.Context(), id, req.ToParams()); err != nil {
		h.writeClassroomError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete classroom
// @Description Remove a classroom from the catalog (admin only)
// @Tags classrooms
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /classrooms/{id} [delete]
func (h *ClassroomHandler) DeleteClassroom(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid classroom ID format",
		})
		return
	}

	if err := h.classroomCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeClassroomError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ClassroomHandler) writeClassroomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrClassroomNotFound), errors.Is(err, classroom.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Classroom not found",
		})
	case errors.Is(err, classroom.ErrEmptyName),
		errors.Is(err, classroom.ErrNameTooLong),
		errors.Is(err, classroom.ErrNegativeCapacity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
