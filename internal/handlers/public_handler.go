package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/haircut-scheduler/internal/dto"
	"github.com/BruksfildServices01/haircut-scheduler/internal/httperr"
	"github.com/BruksfildServices01/haircut-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/haircut-scheduler/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	availability *appointment.GetAvailability
	log          *zap.Logger
}

func NewPublicHandler(
	availability *appointment.GetAvailability,
	log *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		availability: availability,
		log:          log,
	}
}

////////////////////////////////////////////////////////
// SLOTS
////////////////////////////////////////////////////////

func (h *PublicHandler) Slots(c *gin.Context) {
	providerID, err := strconv.ParseUint(c.Query("hairdresser_profile_id"), 10, 64)
	if err != nil || providerID == 0 {
		httperr.BadRequest(c, "invalid_request", "hairdresser_profile_id is required.")
		return
	}

	date, err := schedule.ParseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		ProviderID: uint(providerID),
		Date:       date,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	slots := make([]string, 0, len(out.Slots))
	for _, s := range out.Slots {
		slots = append(slots, s.String())
	}

	httpresp.OK(c, dto.SlotsDTO{
		Date:                 out.Date.String(),
		HairdresserProfileID: out.ProviderID,
		Slots:                slots,
	})
}

func Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "ok"})
}
