package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/deepak4044/service_marketplace/services"
)

func TestFailEnvelope(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"domain error keeps its status", services.ErrBookingNotFound, 404, "Booking not found"},
		{"forbidden domain error", services.ErrNotYourBooking, 403, "You are not authorized to act on this booking"},
		{"non-domain error becomes 500", errors.New("plain failure"), 500, "Internal server error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/test", func(c *fiber.Ctx) error {
				return fail(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}

			var body struct {
				Status  bool   `json:"status"`
				Message string `json:"message"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body.Status {
				t.Error("status field = true, want false")
			}
			if body.Message != tc.wantMessage {
				t.Errorf("message = %q, want %q", body.Message, tc.wantMessage)
			}
		})
	}
}

func TestParseServiceDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2026-09-15", false},
		{"9/15/2026", false},
		{"15-09-2026", true},
		{"", true},
	}

	for _, tc := range tests {
		_, err := parseServiceDate(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseServiceDate(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
		}
	}
}

func TestParseStartTime(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"14:30", "14:30:00", false},
		{"02:30 PM", "14:30:00", false},
		{"09:05", "09:05:00", false},
		{"half past two", "", true},
	}

	for _, tc := range tests {
		got, err := parseStartTime(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseStartTime(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("parseStartTime(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
