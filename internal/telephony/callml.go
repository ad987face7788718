package telephony

import (
	"encoding/xml"
)

// Call-control markup builder for the Exotel webhook response. Built with
// encoding/xml so escaping happens exactly once and the structural tags
// cannot be omitted.
//
// Every document has the same shape: speak the message, gather the next
// input, speak a goodbye if the gather times out with nothing.

type callmlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []any    `xml:",any"`
}

type callmlSay struct {
	XMLName  xml.Name `xml:"Say"`
	Voice    string   `xml:"voice,attr,omitempty"`
	Language string   `xml:"language,attr,omitempty"`
	Text     string   `xml:",chardata"`
}

type callmlGather struct {
	XMLName       xml.Name  `xml:"Gather"`
	Input         string    `xml:"input,attr"`
	Timeout       int       `xml:"timeout,attr"`
	SpeechTimeout string    `xml:"speechTimeout,attr"`
	Action        string    `xml:"action,attr"`
	Method        string    `xml:"method,attr"`
	Prompt        callmlSay `xml:"Say"`
}

// GatherOptions controls the input-gathering instruction and the fixed
// prompt/goodbye lines around it.
type GatherOptions struct {
	// Input lists accepted input modes, e.g. "speech" or "speech dtmf".
	Input string
	// Timeout is the overall gather timeout in seconds.
	Timeout int
	// SpeechTimeout is the provider speech-end detection setting ("auto"
	// or a number of seconds).
	SpeechTimeout string
	// Action is the URL the provider re-POSTs to for the next turn.
	Action string
	Voice  string
	// Language is optional (provider default when empty).
	Language string
	Prompt   string
	Goodbye  string
}

func (o GatherOptions) withDefaults() GatherOptions {
	out := o
	if out.Input == "" {
		out.Input = "speech dtmf"
	}
	if out.Timeout <= 0 {
		out.Timeout = 15
	}
	if out.SpeechTimeout == "" {
		out.SpeechTimeout = "auto"
	}
	if out.Action == "" {
		out.Action = "/webhooks/exotel/voice"
	}
	if out.Voice == "" {
		out.Voice = "woman"
	}
	if out.Prompt == "" {
		out.Prompt = "Please tell me how I can help you with NextCore AI services."
	}
	if out.Goodbye == "" {
		out.Goodbye = "Thank you for calling NextCore AI. For more information, contact us at " +
			"nextcoreai.in@gmail.com. Have a great day!"
	}
	return out
}

// renderFallback is returned if marshaling ever fails. Static text only, so
// it needs no escaping.
const renderFallback = xml.Header +
	`<Response><Say voice="woman">We are unable to take your call right now. ` +
	`Please contact us at nextcoreai.in@gmail.com. Goodbye!</Say></Response>`

// RenderCallML builds the call-control document for one turn. Pure and total:
// the same message and options always produce byte-identical output, and any
// valid UTF-8 message is embedded safely.
func RenderCallML(message string, opts GatherOptions) string {
	o := opts.withDefaults()

	say := func(text string) callmlSay {
		return callmlSay{Voice: o.Voice, Language: o.Language, Text: text}
	}
	doc := callmlResponse{
		Verbs: []any{
			say(message),
			callmlGather{
				Input:         o.Input,
				Timeout:       o.Timeout,
				SpeechTimeout: o.SpeechTimeout,
				Action:        o.Action,
				Method:        "POST",
				Prompt:        say(o.Prompt),
			},
			say(o.Goodbye),
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return renderFallback
	}
	return xml.Header + string(out)
}
