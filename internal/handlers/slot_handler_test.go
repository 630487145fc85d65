package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domain "barber-booking/internal/domain/booking"
	"barber-booking/internal/models"
)

func TestListSlotsExcludesBooked(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	customer := seedUser(t, db, "slotviewer@x.com", models.RoleCustomer)
	_, _, slots := seedBarber(t, db, "slotbarber@x.com")

	booking := models.Booking{
		SlotID:     slots[0].ID,
		CustomerID: customer.ID,
		State:      string(domain.StateOnGoing),
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/barber/slots", nil, ""))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	items := parseResponse(w)["data"].([]any)
	if len(items) != domain.SlotsPerDay-1 {
		t.Fatalf("expected %d unbooked slots, got %d", domain.SlotsPerDay-1, len(items))
	}
	for _, it := range items {
		slot := it.(map[string]any)
		if uint(slot["id"].(float64)) == slots[0].ID {
			t.Error("booked slot leaked into the default listing")
		}
	}
}

func TestListSlotsAllIncludesBooked(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	customer := seedUser(t, db, "allviewer@x.com", models.RoleCustomer)
	_, _, slots := seedBarber(t, db, "allbarber@x.com")

	booking := models.Booking{
		SlotID:     slots[0].ID,
		CustomerID: customer.ID,
		State:      string(domain.StateOnGoing),
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/barber/slots?all=true", nil, ""))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	items := parseResponse(w)["data"].([]any)
	if len(items) != domain.SlotsPerDay {
		t.Fatalf("expected all %d slots, got %d", domain.SlotsPerDay, len(items))
	}
}
