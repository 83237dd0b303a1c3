package dto

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestErrorResponse_Error(t *testing.T) {
	cases := []struct {
		name string
		resp ErrorResponse
		want string
	}{
		{name: "message only", resp: ErrorResponse{Message: "Internal server error"}, want: "Internal server error"},
		{name: "with details", resp: ErrorResponse{Message: "server busy", ErrorDetails: "context canceled"}, want: "server busy: context canceled"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.resp.Error(); got != tc.want {
				t.Fatalf("Error()=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		details string
	}{
		{name: "nil error", err: nil, details: ""},
		{name: "wrapped error", err: errors.New("panic: boom"), details: "panic: boom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := time.Now().UTC()
			resp := NewErrorResponse("Internal server error", tc.err)
			if resp.Message != "Internal server error" || resp.ErrorDetails != tc.details {
				t.Fatalf("unexpected %+v", resp)
			}
			if resp.Timestamp.Before(before) || resp.Timestamp.Location() != time.UTC {
				t.Fatalf("timestamp=%v, want UTC at or after %v", resp.Timestamp, before)
			}
		})
	}
}

func TestErrorResponse_JSON(t *testing.T) {
	cases := []struct {
		name       string
		resp       ErrorResponse
		hasDetails bool
	}{
		{name: "details omitted when empty", resp: NewErrorResponse("Internal server error", nil), hasDetails: false},
		{name: "details under error key", resp: NewErrorResponse("server busy", errors.New("context canceled")), hasDetails: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.resp)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var body map[string]any
			if err := json.Unmarshal(b, &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body["message"] != tc.resp.Message {
				t.Fatalf("message=%v", body["message"])
			}
			if _, ok := body["timestamp"]; !ok {
				t.Fatalf("timestamp missing: %s", b)
			}
			if _, ok := body["error"]; ok != tc.hasDetails {
				t.Fatalf("error key present=%v, want %v: %s", ok, tc.hasDetails, b)
			}
		})
	}
}
