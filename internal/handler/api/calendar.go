package api

import (
	"net/http"

	"pms-calendar/internal/domain/calendar"
	reqdto "pms-calendar/internal/handler/dto/request"
	resdto "pms-calendar/internal/handler/dto/response"
	"pms-calendar/internal/handler/httperr"
	"pms-calendar/internal/usecase/commands"
	"pms-calendar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	cmds commands.CalendarCommands
	q    queries.CalendarQueries
}

func NewCalendarHandler(cmds commands.CalendarCommands, q queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{cmds: cmds, q: q}
}

// @Summary Set price
// @Description Write a nightly price over a date range. Overlapping ranges are trimmed, split or removed.
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.SetPriceRequest true "Price range"
// @Success 200 {object} resdto.RangeWriteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id}/prices [put]
func (h *CalendarHandler) SetPrice(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	var req reqdto.SetPriceRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand(roomID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	result, err := h.cmds.SetPrice(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRangeWriteResult(result))
}

// @Summary List price ranges
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {array} resdto.PriceRangeResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/prices [get]
func (h *CalendarHandler) ListPriceRanges(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	views, err := h.q.ListPriceRanges(c.Request.Context(), roomID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceRangeViews(views))
}

// @Summary Delete price range
// @Tags calendar
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param rangeId path string true "Price range ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/prices/{rangeId} [delete]
func (h *CalendarHandler) DeletePriceRange(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	rangeID, ok := pathID(c, "rangeId", "range")
	if !ok {
		return
	}
	if err := h.cmds.DeletePriceRange(c.Request.Context(), roomID, rangeID); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Block dates
// @Description Mark a date range as not sellable. Overlapping block ranges are reconciled like prices.
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.BlockDatesRequest true "Block range"
// @Success 200 {object} resdto.RangeWriteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id}/blocks [put]
func (h *CalendarHandler) BlockDates(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	var req reqdto.BlockDatesRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand(roomID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	result, err := h.cmds.BlockDates(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRangeWriteResult(result))
}

// @Summary List block ranges
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {array} resdto.BlockRangeResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/blocks [get]
func (h *CalendarHandler) ListBlockRanges(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	views, err := h.q.ListBlockRanges(c.Request.Context(), roomID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlockRangeViews(views))
}

// @Summary Delete block range
// @Tags calendar
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param rangeId path string true "Block range ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/blocks/{rangeId} [delete]
func (h *CalendarHandler) DeleteBlockRange(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	rangeID, ok := pathID(c, "rangeId", "range")
	if !ok {
		return
	}
	if err := h.cmds.DeleteBlockRange(c.Request.Context(), roomID, rangeID); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Daily prices
// @Description Expand price ranges into one entry per priced day. Omitting from and to returns every day.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param roomIds query string false "Comma separated room IDs (all rooms when empty)"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {array} resdto.RoomDailyPricesResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /calendar/prices [get]
func (h *CalendarHandler) GetDailyPrices(c *gin.Context) {
	var q reqdto.DailyPricesQuery
	if !bindQuery(c, &q) {
		return
	}
	roomIDs, err := reqdto.ParseRoomIDs(q.RoomIDs)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	span, err := q.Span()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	views, err := h.q.GetDailyPrices(c.Request.Context(), roomIDs, span)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDailyPricesViews(views))
}

// @Summary Availability
// @Description Per-day state of one room: booked, blocked or open.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *CalendarHandler) GetAvailability(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	var q reqdto.SpanQuery
	if !bindQuery(c, &q) {
		return
	}
	span, err := q.Span()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	view, err := h.q.GetAvailability(c.Request.Context(), roomID, span)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Quote
// @Description Price a stay for a party. Parties above the surcharge threshold pay extra per night.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param from query string true "First night (YYYY-MM-DD)"
// @Param to query string true "Last night (YYYY-MM-DD)"
// @Param partySize query int true "Number of guests"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/quote [get]
func (h *CalendarHandler) Quote(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	var q reqdto.QuoteQuery
	if !bindQuery(c, &q) {
		return
	}
	stay, err := q.Span()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), roomID, stay, q.PartySize)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Month calendar
// @Description Sunday-first month grid with each room's state and price per day.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param anchor query string true "Any day of the month (YYYY-MM-DD)"
// @Param roomIds query string false "Comma separated room IDs (all rooms when empty)"
// @Success 200 {object} resdto.MonthResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /calendar/month [get]
func (h *CalendarHandler) MonthCalendar(c *gin.Context) {
	var q reqdto.MonthQuery
	if !bindQuery(c, &q) {
		return
	}
	anchor, err := calendar.ParseDate(q.Anchor)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	roomIDs, err := reqdto.ParseRoomIDs(q.RoomIDs)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	view, err := h.q.MonthCalendar(c.Request.Context(), anchor, roomIDs)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMonthView(view))
}
