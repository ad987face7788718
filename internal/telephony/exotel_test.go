package telephony

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseExotelTurnPost(t *testing.T) {
	body := strings.NewReader("CallSid=CA123&From=%2B911234567890&SpeechResult=hello+there&CallStatus=in-progress")
	r := httptest.NewRequest(http.MethodPost, "/webhooks/exotel/voice", body)
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := ParseExotelTurn(r)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if form.CallSid != "CA123" {
		t.Fatalf("expected CallSid, got %q", form.CallSid)
	}
	if form.From != "+911234567890" {
		t.Fatalf("unexpected from %q", form.From)
	}
	if form.SpeechResult != "hello there" {
		t.Fatalf("unexpected speech %q", form.SpeechResult)
	}

	turn := form.ToTurnInput()
	if turn.CallID != "CA123" || turn.SpeechText != "hello there" || turn.CallStatus != "in-progress" {
		t.Fatalf("unexpected turn input %+v", turn)
	}
}

func TestParseExotelTurnGetProbe(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/webhooks/exotel/voice?CallFrom=%2B15550001111&CallSid=CA9", nil)

	form, err := ParseExotelTurn(r)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if form.From != "+15550001111" {
		t.Fatalf("expected CallFrom alias used, got %q", form.From)
	}
	if form.CallSid != "CA9" {
		t.Fatalf("expected CallSid, got %q", form.CallSid)
	}
	if form.SpeechResult != "" || form.Digits != "" {
		t.Fatalf("expected empty input on probe")
	}
}

func TestParseExotelTurnFromWinsOverAlias(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/webhooks/exotel/voice?From=%2B1&CallFrom=%2B2", nil)
	form, err := ParseExotelTurn(r)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if form.From != "+1" {
		t.Fatalf("expected From preferred, got %q", form.From)
	}
}

func TestParseExotelTurnDigits(t *testing.T) {
	body := strings.NewReader("CallSid=CA5&From=%2B1&Digits=0")
	r := httptest.NewRequest(http.MethodPost, "/webhooks/exotel/voice", body)
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := ParseExotelTurn(r)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if form.Digits != "0" {
		t.Fatalf("expected digits, got %q", form.Digits)
	}
}
