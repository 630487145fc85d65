package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domain "barber-booking/internal/domain/booking"
	"barber-booking/internal/models"
)

func TestBarberSignupCreatesProfileAndSlots(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	user := seedUser(t, db, "newbarber@x.com", models.RoleCustomer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/signup", nil, tokenFor(t, user)))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["Message"] != "Barber Profile Created." {
		t.Errorf("unexpected message: %v", resp["Message"])
	}
	if int(resp["slots_created"].(float64)) != domain.SlotsPerDay {
		t.Errorf("expected slots_created %d, got %v", domain.SlotsPerDay, resp["slots_created"])
	}

	var refreshed models.User
	if err := db.First(&refreshed, user.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if refreshed.Role != models.RoleBarber {
		t.Errorf("expected role barber after signup, got %s", refreshed.Role)
	}

	var profile models.BarberProfile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		t.Fatalf("expected barber profile row: %v", err)
	}
	if !profile.IsAvailable {
		t.Error("expected a freshly provisioned barber to be available")
	}

	var slots []models.Slot
	if err := db.Where("barber_profile_id = ?", profile.ID).
		Order("start_time ASC").Find(&slots).Error; err != nil {
		t.Fatalf("failed to load slots: %v", err)
	}
	if len(slots) != domain.SlotsPerDay {
		t.Fatalf("expected %d slots, got %d", domain.SlotsPerDay, len(slots))
	}
	for i, s := range slots {
		start := s.StartTime.UTC()
		if start.Hour() != i || start.Minute() != 0 {
			t.Errorf("slot %d starts at %s, expected hour %d on the hour", i, start, i)
		}
		if !s.EndTime.Equal(s.StartTime.Add(time.Hour)) {
			t.Errorf("slot %d is not one hour long: %s to %s", i, s.StartTime, s.EndTime)
		}
	}
}

func TestBarberSignupTwiceRejected(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	user, _, _ := seedBarber(t, db, "already@x.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/signup", nil, tokenFor(t, user)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
	if parseResponse(w)["message"] != "Profile Already Exists" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestBarberAdminListRequiresAdmin(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	user := seedUser(t, db, "plain@x.com", models.RoleCustomer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/barbers", nil, tokenFor(t, user)))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBarberAdminDelete(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	admin := seedUser(t, db, "admin@x.com", models.RoleAdmin)
	_, profile, _ := seedBarber(t, db, "victim@x.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("DELETE", "/api/barbers/"+itoa(profile.ID), nil, tokenFor(t, admin)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.BarberProfile{}).Where("id = ?", profile.ID).Count(&count)
	if count != 0 {
		t.Error("expected barber profile to be deleted")
	}
}
