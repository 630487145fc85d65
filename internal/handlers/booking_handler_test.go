package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domain "barber-booking/internal/domain/booking"
	"barber-booking/internal/models"
)

func TestBookSlot(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	customer := seedUser(t, db, "customer@x.com", models.RoleCustomer)
	_, _, slots := seedBarber(t, db, "barber@x.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/slots/book/"+itoa(slots[0].ID), nil, tokenFor(t, customer)))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if parseResponse(w)["Message"] != "Booking slot created." {
		t.Errorf("unexpected body: %s", w.Body.String())
	}

	var booking models.Booking
	if err := db.Where("slot_id = ?", slots[0].ID).First(&booking).Error; err != nil {
		t.Fatalf("expected booking row: %v", err)
	}
	if booking.State != string(domain.StateOnGoing) {
		t.Errorf("expected state ongoing, got %s", booking.State)
	}
	if booking.CustomerID != customer.ID {
		t.Errorf("expected customer %d, got %d", customer.ID, booking.CustomerID)
	}
}

func TestBookSlotUnknownSlot(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	customer := seedUser(t, db, "nobody@x.com", models.RoleCustomer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/slots/book/9999", nil, tokenFor(t, customer)))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
}

// A slot holds at most one booking; the second attempt fails and
// leaves a single row behind.
func TestBookSlotTwiceConflicts(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	first := seedUser(t, db, "first@x.com", models.RoleCustomer)
	second := seedUser(t, db, "second@x.com", models.RoleCustomer)
	_, _, slots := seedBarber(t, db, "busy@x.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/slots/book/"+itoa(slots[0].ID), nil, tokenFor(t, first)))
	if w.Code != http.StatusCreated {
		t.Fatalf("first booking failed: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/slots/book/"+itoa(slots[0].ID), nil, tokenFor(t, second)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 on double booking, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.Booking{}).Where("slot_id = ?", slots[0].ID).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one booking row, got %d", count)
	}
}

func TestCancelBooking(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	customer := seedUser(t, db, "cancel@x.com", models.RoleCustomer)
	_, _, slots := seedBarber(t, db, "cancelbarber@x.com")
	token := tokenFor(t, customer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/slots/book/"+itoa(slots[0].ID), nil, token))
	if w.Code != http.StatusCreated {
		t.Fatalf("booking failed: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/barber/slots/cancel/"+itoa(slots[0].ID), map[string]string{
		"reason": "can't make it",
	}, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var booking models.Booking
	if err := db.Where("slot_id = ?", slots[0].ID).First(&booking).Error; err != nil {
		t.Fatalf("expected booking row: %v", err)
	}
	if booking.State != string(domain.StateCancelled) {
		t.Errorf("expected state cancelled, got %s", booking.State)
	}
	if booking.Reason != "can't make it" {
		t.Errorf("expected reason to be stored, got %q", booking.Reason)
	}
	if booking.CancelledAt == nil {
		t.Error("expected cancelled_at to be set")
	}
}

func TestCancelBookingTwice(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	customer := seedUser(t, db, "twice@x.com", models.RoleCustomer)
	_, _, slots := seedBarber(t, db, "twicebarber@x.com")
	token := tokenFor(t, customer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/slots/book/"+itoa(slots[0].ID), nil, token))
	if w.Code != http.StatusCreated {
		t.Fatalf("booking failed: %d %s", w.Code, w.Body.String())
	}

	url := "/api/barber/slots/cancel/" + itoa(slots[0].ID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", url, nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("first cancel failed: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", url, nil, token))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 on second cancel, got %d: %s", w.Code, w.Body.String())
	}
	if parseResponse(w)["message"] != "Booking is already cancelled." {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestCancelUnbookedSlot(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	customer := seedUser(t, db, "nocancel@x.com", models.RoleCustomer)
	_, _, slots := seedBarber(t, db, "freebarber@x.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/barber/slots/cancel/"+itoa(slots[0].ID), nil, tokenFor(t, customer)))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCompleteBookingByBarber(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	customer := seedUser(t, db, "done@x.com", models.RoleCustomer)
	barber, _, slots := seedBarber(t, db, "donebarber@x.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/slots/book/"+itoa(slots[0].ID), nil, tokenFor(t, customer)))
	if w.Code != http.StatusCreated {
		t.Fatalf("booking failed: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/barber/slots/complete/"+itoa(slots[0].ID), nil, tokenFor(t, barber)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var booking models.Booking
	if err := db.Where("slot_id = ?", slots[0].ID).First(&booking).Error; err != nil {
		t.Fatalf("expected booking row: %v", err)
	}
	if booking.State != string(domain.StateCompleted) {
		t.Errorf("expected state completed, got %s", booking.State)
	}
	if booking.CompletedAt == nil {
		t.Error("expected completed_at to be set")
	}
}

// Only the slot's barber (or an admin) may complete a booking.
func TestCompleteBookingByCustomerForbidden(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	customer := seedUser(t, db, "eager@x.com", models.RoleCustomer)
	_, _, slots := seedBarber(t, db, "eagerbarber@x.com")
	token := tokenFor(t, customer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/slots/book/"+itoa(slots[0].ID), nil, token))
	if w.Code != http.StatusCreated {
		t.Fatalf("booking failed: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/barber/slots/complete/"+itoa(slots[0].ID), nil, token))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCompleteBookingByAdmin(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	customer := seedUser(t, db, "adminc@x.com", models.RoleCustomer)
	admin := seedUser(t, db, "superadmin@x.com", models.RoleAdmin)
	_, _, slots := seedBarber(t, db, "adminbarber@x.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/slots/book/"+itoa(slots[0].ID), nil, tokenFor(t, customer)))
	if w.Code != http.StatusCreated {
		t.Fatalf("booking failed: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/barber/slots/complete/"+itoa(slots[0].ID), nil, tokenFor(t, admin)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteBookingByNonOwnerForbidden(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	owner := seedUser(t, db, "owner@x.com", models.RoleCustomer)
	other := seedUser(t, db, "other@x.com", models.RoleCustomer)
	_, _, slots := seedBarber(t, db, "delbarber@x.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/slots/book/"+itoa(slots[0].ID), nil, tokenFor(t, owner)))
	if w.Code != http.StatusCreated {
		t.Fatalf("booking failed: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("DELETE", "/api/barber/slots/delete/"+itoa(slots[0].ID), nil, tokenFor(t, other)))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.Booking{}).Where("slot_id = ?", slots[0].ID).Count(&count)
	if count != 1 {
		t.Errorf("expected booking to survive, got %d rows", count)
	}
}

// Deleting a booking frees the slot for a fresh booking.
func TestDeleteBookingFreesSlot(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	owner := seedUser(t, db, "free@x.com", models.RoleCustomer)
	next := seedUser(t, db, "next@x.com", models.RoleCustomer)
	_, _, slots := seedBarber(t, db, "freeslotbarber@x.com")
	url := itoa(slots[0].ID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/slots/book/"+url, nil, tokenFor(t, owner)))
	if w.Code != http.StatusCreated {
		t.Fatalf("booking failed: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("DELETE", "/api/barber/slots/delete/"+url, nil, tokenFor(t, owner)))
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/slots/book/"+url, nil, tokenFor(t, next)))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected freed slot to be bookable again, got %d: %s", w.Code, w.Body.String())
	}
}
