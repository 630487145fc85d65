package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"barber-booking/internal/models"
)

func TestPayForBookedSlot(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	customer := seedUser(t, db, "payer@x.com", models.RoleCustomer)
	_, _, slots := seedBarber(t, db, "paybarber@x.com")
	token := tokenFor(t, customer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/slots/book/"+itoa(slots[0].ID), nil, token))
	if w.Code != http.StatusCreated {
		t.Fatalf("booking failed: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/pay/"+itoa(slots[0].ID), map[string]uint{
		"amount": 50,
	}, token))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["Message"] != "Payment Successful" {
		t.Errorf("unexpected message: %v", resp["Message"])
	}
	if resp["Paid by"] != "payer@x.com" {
		t.Errorf("expected Paid by payer@x.com, got %v", resp["Paid by"])
	}
	if resp["Paid To"] != "paybarber@x.com" {
		t.Errorf("expected Paid To paybarber@x.com, got %v", resp["Paid To"])
	}

	var payment models.Payment
	if err := db.Where("slot_id = ?", slots[0].ID).First(&payment).Error; err != nil {
		t.Fatalf("expected payment row: %v", err)
	}
	if payment.Amount != 50 {
		t.Errorf("expected amount 50, got %d", payment.Amount)
	}
}

// Paying for someone else's booking is refused and leaves no row.
func TestPayByNonOwnerForbidden(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	owner := seedUser(t, db, "holder@x.com", models.RoleCustomer)
	stranger := seedUser(t, db, "stranger@x.com", models.RoleCustomer)
	_, _, slots := seedBarber(t, db, "strictbarber@x.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/slots/book/"+itoa(slots[0].ID), nil, tokenFor(t, owner)))
	if w.Code != http.StatusCreated {
		t.Fatalf("booking failed: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/pay/"+itoa(slots[0].ID), map[string]uint{
		"amount": 50,
	}, tokenFor(t, stranger)))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.Payment{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no payment rows, got %d", count)
	}
}

func TestPayForUnbookedSlotForbidden(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	customer := seedUser(t, db, "nobooking@x.com", models.RoleCustomer)
	_, _, slots := seedBarber(t, db, "idlebarber@x.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/pay/"+itoa(slots[0].ID), map[string]uint{
		"amount": 50,
	}, tokenFor(t, customer)))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPayUnknownSlot(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	customer := seedUser(t, db, "lost@x.com", models.RoleCustomer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/pay/9999", map[string]uint{
		"amount": 50,
	}, tokenFor(t, customer)))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
	if parseResponse(w)["message"] != "Slot Not Found" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestPayZeroAmountRejected(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	customer := seedUser(t, db, "zero@x.com", models.RoleCustomer)
	_, _, slots := seedBarber(t, db, "zerobarber@x.com")
	token := tokenFor(t, customer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/slots/book/"+itoa(slots[0].ID), nil, token))
	if w.Code != http.StatusCreated {
		t.Fatalf("booking failed: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/barber/pay/"+itoa(slots[0].ID), map[string]uint{
		"amount": 0,
	}, token))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}
