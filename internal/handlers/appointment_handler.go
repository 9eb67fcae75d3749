package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/haircut-scheduler/internal/dto"
	"github.com/BruksfildServices01/haircut-scheduler/internal/httperr"
	"github.com/BruksfildServices01/haircut-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/haircut-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *appointment.CreateAppointment
	get          *appointment.GetAppointment
	list         *appointment.ListAppointments
	updateStatus *appointment.UpdateAppointmentStatus
	log          *zap.Logger
}

func NewAppointmentHandler(
	create *appointment.CreateAppointment,
	get *appointment.GetAppointment,
	list *appointment.ListAppointments,
	updateStatus *appointment.UpdateAppointmentStatus,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		get:          get,
		list:         list,
		updateStatus: updateStatus,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	HairdresserProfileID uint   `json:"hairdresser_profile_id" binding:"required"`
	ServiceID            uint   `json:"service_id" binding:"required"`
	Date                 string `json:"date" binding:"required"` // YYYY-MM-DD
	Time                 string `json:"time" binding:"required"` // HH:MM or HH:MM:SS
	Notes                string `json:"notes"`
	PaymentMethod        string `json:"payment_method"`
	TransactionID        string `json:"transaction_id"`
}

type UpdateStatusRequest struct {
	Status             string `json:"status" binding:"required"`
	CancellationReason string `json:"cancellation_reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	var body CreateAppointmentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		Requester:     req,
		ProviderID:    body.HairdresserProfileID,
		ServiceID:     body.ServiceID,
		Date:          body.Date,
		Time:          body.Time,
		Notes:         body.Notes,
		PaymentMethod: body.PaymentMethod,
		TransactionID: body.TransactionID,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.FromAppointment(ap))
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	list, err := h.list.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), req, id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var body UpdateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), appointment.UpdateStatusInput{
		Requester:          req,
		AppointmentID:      id,
		Status:             body.Status,
		CancellationReason: body.CancellationReason,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}
