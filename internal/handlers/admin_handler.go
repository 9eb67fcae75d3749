package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/haircut-scheduler/internal/httperr"
	"github.com/BruksfildServices01/haircut-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/haircut-scheduler/internal/usecase/appointment"
)

// AdminHandler serves /api/admin. Status updates reuse the same
// AppointmentHandler.UpdateStatus path; role is enforced by the router.
type AdminHandler struct {
	listAll *appointment.ListAllAppointments
	delete  *appointment.DeleteAppointment
	stats   *appointment.GetStats
	log     *zap.Logger
}

func NewAdminHandler(
	listAll *appointment.ListAllAppointments,
	del *appointment.DeleteAppointment,
	stats *appointment.GetStats,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		listAll: listAll,
		delete:  del,
		stats:   stats,
		log:     log,
	}
}

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	page, err := h.listAll.Execute(c.Request.Context(), appointment.ListAllInput{
		Status: c.Query("status"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", appointment.DefaultPageLimit),
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Page(c, page.Appointments, page.Total, page.Page, page.TotalPages)
}

func (h *AdminHandler) DeleteAppointment(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), req, id); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Appointment deleted."})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, stats)
}
