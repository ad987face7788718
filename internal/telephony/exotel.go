package telephony

import (
	"net/http"
	"strings"

	"voice-agent/internal/engine"
)

// ExotelTurnForm captures the webhook fields we care about. Exotel posts
// application/x-www-form-urlencoded on live turns and issues a query-only GET
// probe when a flow is first wired up, so both carriers are read.
//
// Provider adapter only; turn classification lives in the engine.
type ExotelTurnForm struct {
	CallSid      string
	From         string
	To           string
	CallStatus   string
	SpeechResult string
	Digits       string
}

// ParseExotelTurn reads the turn fields from the request. Form values win
// over query parameters; "CallFrom" is accepted as an alias for "From".
func ParseExotelTurn(r *http.Request) (ExotelTurnForm, error) {
	if err := r.ParseForm(); err != nil {
		return ExotelTurnForm{}, err
	}
	from := strings.TrimSpace(r.FormValue("From"))
	if from == "" {
		from = strings.TrimSpace(r.FormValue("CallFrom"))
	}
	return ExotelTurnForm{
		CallSid:      r.FormValue("CallSid"),
		From:         from,
		To:           strings.TrimSpace(r.FormValue("To")),
		CallStatus:   r.FormValue("CallStatus"),
		SpeechResult: r.FormValue("SpeechResult"),
		Digits:       r.FormValue("Digits"),
	}, nil
}

func (f ExotelTurnForm) ToTurnInput() engine.TurnInput {
	return engine.TurnInput{
		From:       f.From,
		CallID:     f.CallSid,
		SpeechText: f.SpeechResult,
		Digits:     f.Digits,
		CallStatus: f.CallStatus,
	}
}
