package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barber-booking/internal/httperr"
	"barber-booking/internal/httpresp"
	"barber-booking/internal/middleware"
	ucbooking "barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	book     *ucbooking.BookSlot
	cancel   *ucbooking.CancelBooking
	complete *ucbooking.CompleteBooking
	delete   *ucbooking.DeleteBooking
}

func NewBookingHandler(
	book *ucbooking.BookSlot,
	cancel *ucbooking.CancelBooking,
	complete *ucbooking.CompleteBooking,
	delete *ucbooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		book:     book,
		cancel:   cancel,
		complete: complete,
		delete:   delete,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// BOOK
// ======================================================

func (h *BookingHandler) Book(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	slotID, err := parseIDParam(c, "slot_id")
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_id", "Invalid slot id.")
		return
	}

	b, err := h.book.Execute(c.Request.Context(), slotID, customerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"Message": "Booking slot created.",
		"booking": b,
	})
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	slotID, err := parseIDParam(c, "slot_id")
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_id", "Invalid slot id.")
		return
	}

	// Reason is optional; an empty or absent body is fine.
	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.cancel.Execute(c.Request.Context(), slotID, actorID, req.Reason)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Message": "Booking cancelled.",
		"booking": b,
	})
}

// ======================================================
// COMPLETE
// ======================================================

func (h *BookingHandler) Complete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	actorRole := c.MustGet(middleware.ContextUserRole).(string)

	slotID, err := parseIDParam(c, "slot_id")
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_id", "Invalid slot id.")
		return
	}

	b, err := h.complete.Execute(c.Request.Context(), slotID, actorID, actorRole)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Message": "Booking completed.",
		"booking": b,
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	slotID, err := parseIDParam(c, "slot_id")
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_id", "Invalid slot id.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), slotID, customerID); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Booking deleted."})
}
