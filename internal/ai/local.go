package ai

import (
	"context"
	"strings"
)

type cannedTrip struct {
	keyword string
	reply   string
}

// Destinations are checked in order; the first keyword found in the message wins.
var cannedTrips = []cannedTrip{
	{"rishikesh", "Done bhai! 🎉 Rishikesh trip ka full plan ready hai.\n\n" +
		"📍 Rishikesh, Uttarakhand\n" +
		"📅 Weekend trip (Fri-Sun)\n" +
		"👥 Group of 5 | 💰 ₹1,850/person\n\n" +
		"🚂 Train: ₹380 (Sleeper) + 🚌 Local: ₹60\n" +
		"🏨 Backpacker Hostel: ₹400/night\n" +
		"🏄 Rafting: ₹500 | Café hopping: ₹200\n" +
		"🙏 Ganga Aarti + Laxman Jhula: FREE\n\n" +
		"Total: ₹1,850/person (within budget ✅)\n" +
		"Paytm se book karo, cashback milega! 💙"},
	{"goa", "Goa ja raha hai bhai? 🏖️ Sahi hai!\n\n" +
		"📍 North Goa (Anjuna/Vagator)\n" +
		"📅 3 Nights best hai\n" +
		"👥 4 log | 💰 ₹3,500/person\n\n" +
		"🚂 Train: ₹800 (Sleeper) Madgaon tak\n" +
		"🏨 Beach Hostel: ₹500/night\n" +
		"🏍 Scooty rent: ₹350/day\n" +
		"🍕 Food budget: ₹500/day\n" +
		"🏊 Beach + Fort + Market: FREE\n\n" +
		"Total: ₹3,500/person approx\n" +
		"Paytm se book karo, cashback milega! 💙"},
	{"manali", "Manali trip plan kar diya bhai! ❄️🏔️\n\n" +
		"📍 Manali, Himachal Pradesh\n" +
		"📅 4 Nights recommended\n" +
		"👥 5 log | 💰 ₹2,800/person\n\n" +
		"🚌 Volvo Bus: ₹1,200 (Delhi se)\n" +
		"🏨 Hostel Old Manali: ₹400/night\n" +
		"🏔 Solang Valley + Rohtang: ₹800\n" +
		"☕ Mall Road + Cafés: ₹300\n\n" +
		"Total: ₹2,800/person\n" +
		"Paytm se book karo, cashback milega! 💙"},
	{"jaipur", "Pink City jaa raha hai! 🏰 Badhiya choice!\n\n" +
		"📍 Jaipur, Rajasthan\n" +
		"📅 2 Nights perfect hai\n" +
		"👥 4 log | 💰 ₹2,200/person\n\n" +
		"🚂 Train: ₹450 (Sleeper)\n" +
		"🏨 Heritage Hostel: ₹350/night\n" +
		"🏰 Amber Fort + Hawa Mahal: ₹200\n" +
		"🍛 Dal Baati + Lassi: ₹300/day\n\n" +
		"Total: ₹2,200/person\n" +
		"Paytm se book karo, cashback milega! 💙"},
}

var travelKeywords = []string{"trip", "plan", "travel", "ghum", "jana"}

const destinationMenu = "Bata bhai kaha jana hai? 🗺️\n\n" +
	"Popular student destinations:\n" +
	"🏔 Manali — ₹2,800/person\n" +
	"🏖 Goa — ₹3,500/person\n" +
	"🏞 Rishikesh — ₹1,850/person\n" +
	"🏰 Jaipur — ₹2,200/person\n" +
	"🕌 Varanasi — ₹1,500/person\n\n" +
	"Destination bol, plan bana deta hu! 🚀"

const greeting = "Hey! 👋 Main CampusGPT hu — tera personal trip planner!\n\n" +
	"Mujhe bol:\n" +
	"• Kaha jana hai? (Rishikesh, Goa, Manali...)\n" +
	"• Kitne log? Budget kitna?\n" +
	"• Weekend trip ya long trip?\n\n" +
	"Main sab plan kar dunga — transport, stay, activities sab! 🗺️✨"

// LocalResponder answers from canned replies without any network access.
type LocalResponder struct{}

func (LocalResponder) GetReply(_ context.Context, message string, _ []Message) (string, bool) {
	lower := strings.ToLower(message)
	for _, t := range cannedTrips {
		if strings.Contains(lower, t.keyword) {
			return t.reply, true
		}
	}
	for _, kw := range travelKeywords {
		if strings.Contains(lower, kw) {
			return destinationMenu, false
		}
	}
	return greeting, false
}
