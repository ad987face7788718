package fallback

import "strings"

// Topic identifies one of the canned answer categories served when the
// answer backend is unavailable.
type Topic string

const (
	TopicServices     Topic = "services"
	TopicTechnologies Topic = "technologies"
	TopicContact      Topic = "contact"
	TopicPricing      Topic = "pricing"
	TopicAbout        Topic = "about"
	TopicDefault      Topic = "default"
)

// rule is one keyword set in the classification order. First match wins;
// later rules are never consulted once an earlier one fires.
type rule struct {
	topic    Topic
	keywords []string
}

var rules = []rule{
	{TopicServices, []string{"service", "offer", "do", "provide", "what"}},
	{TopicTechnologies, []string{"technology", "tech", "stack", "tools", "framework"}},
	{TopicContact, []string{"contact", "reach", "phone", "email", "address"}},
	{TopicPricing, []string{"price", "cost", "fee", "charge", "rate"}},
	{TopicAbout, []string{"about", "company", "who", "nextcore"}},
}

// Classify maps a question to a Topic using substring keyword matching on the
// lower-cased text. Total: every input yields a topic.
func Classify(question string) Topic {
	q := strings.ToLower(question)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.topic
			}
		}
	}
	return TopicDefault
}

// Respond returns the canned answer for the question's topic. The default
// topic echoes the original question into a generic contact template.
func Respond(question string) string {
	topic := Classify(question)
	if topic == TopicDefault {
		return defaultResponse(question)
	}
	return responses[topic]
}
