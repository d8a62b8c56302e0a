package ai

import "strings"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// MaxReplyTokens caps remote completions.
	MaxReplyTokens = 300
)

// Message is one prior turn of the conversation.
type Message struct {
	// Role is "user" for the student; every other value is treated as the assistant.
	Role string `json:"role"`
	Text string `json:"text"`
}

func (m Message) FromUser() bool {
	return m.Role == RoleUser
}

// SystemPrompt sets up the trip-planning persona for remote providers.
const SystemPrompt = `You are CampusGPT, a friendly AI travel planner built into Paytm Campus OS.
You help Indian college students plan trips on a budget.

Rules:
- Always respond in casual Hinglish (Hindi + English mix)
- Keep responses SHORT (max 150 words)
- Always include emojis
- Always mention specific prices in ₹ (Indian Rupees)
- Suggest budget stays (hostels, dharamshalas), cheap transport (trains/buses), and free activities
- If asked about a destination, give a quick itinerary with transport + stay + activities + total budget
- Mention student discounts wherever applicable
- Sign off suggestions with "Paytm se book karo, cashback milega! 💙"
- If the user asks something unrelated to travel, gently redirect to trip planning

Example response format:
"Done bhai! 🎉 [Destination] trip ka plan ready hai.
📍 [Place]
📅 [Dates suggestion]
👥 [Group size] | 💰 ₹[price]/person

[Brief breakdown]
Paytm se book karo, cashback milega! 💙"
`

var tripKeywords = []string{"plan ready", "itinerary", "budget", "₹", "book"}

// TripGenerated reports whether a remote reply reads like a trip plan.
func TripGenerated(reply string) bool {
	lower := strings.ToLower(reply)
	for _, kw := range tripKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
