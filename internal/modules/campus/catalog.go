package campus

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"campusos/internal/modules/debt"
)

var ErrBadRequest = errors.New("bad request")

const (
	// GroupDiscountMinSize is the smallest FestPass group that gets the discount.
	GroupDiscountMinSize = 5
	GroupDiscountPct     = 20

	DefaultParentUPI = "parent@paytm"
)

// GetDashboard returns the home screen summary.
func GetDashboard() Dashboard {
	return Dashboard{
		Greeting: "Welcome back, Saksham",
		Stats: []Stat{
			{Label: "Campus Credits", Value: "2,450", Emoji: "🪙", Color: "text-gold"},
			{Label: "Digital Gold", Value: "₹127.50", Emoji: "🥇", Color: "text-gradient-gold"},
			{Label: "Trips This Month", Value: "3", Emoji: "🚂", Color: "text-primary"},
			{Label: "Savings", Value: "₹1,280", Emoji: "💰", Color: "text-success"},
		},
		ActiveTrips: []ActiveTrip{
			{Destination: "Rishikesh", Date: "Feb 22-24", Members: 5, Status: "Booking", Progress: 60},
			{Destination: "Lucknow", Date: "Feb 28", Members: 3, Status: "Planning", Progress: 30},
			{Destination: "Jaipur", Date: "Mar 5-7", Members: 8, Status: "Confirmed", Progress: 100},
		},
		Feed: []FeedItem{
			{Text: "Rahul paid ₹120 for Rishikesh trip", Time: "2m ago"},
			{Text: "5 hostelmates going to Lucknow this weekend", Time: "15m ago"},
			{Text: "New deal: 20% off at Campus Cafe", Time: "1h ago"},
			{Text: "Tatkal window opens at 10:00 AM tomorrow", Time: "3h ago"},
		},
	}
}

func QuickChips() []string {
	return []string{"Weekend Trip", "Tirth Yatra", "College Fest", "Home Visit"}
}

// SampleTripPlan is the group trip shown on the Yatra screen.
func SampleTripPlan() TripPlan {
	return TripPlan{
		Destination:    "Rishikesh, Uttarakhand",
		Region:         "Uttarakhand",
		Dates:          "Feb 22-24 (Sat-Mon)",
		MemberCount:    5,
		PricePerPerson: "₹1,850",
		Transport: []TransportOption{
			{Mode: "🚂 Train", Route: "Lucknow → Haridwar", Time: "8h 30m", Price: "₹380"},
			{Mode: "🚌 Bus", Route: "Haridwar → Rishikesh", Time: "1h", Price: "₹60"},
		},
		Stays: []StayOption{
			{Name: "Backpacker Hostel", Rating: 4.5, Price: "₹400/night", Tag: "Best Value"},
			{Name: "River View Camp", Rating: 4.2, Price: "₹600/night", Tag: "Scenic"},
		},
		Activities: []Activity{
			{Name: "White Water Rafting", Cost: "₹500"},
			{Name: "Laxman Jhula Visit", Cost: "Free"},
			{Name: "Café hopping", Cost: "₹200"},
			{Name: "Ganga Aarti", Cost: "Free"},
		},
		BudgetUsed:  1850,
		BudgetTotal: 2000,
		Members: []GroupMember{
			{Name: "Saksham", Status: "paid"},
			{Name: "Rahul", Status: "paid"},
			{Name: "Priya", Status: "pending"},
			{Name: "Amit", Status: "pending"},
			{Name: "Neha", Status: "paid"},
		},
	}
}

func Hostelmates() []Hostelmate {
	return []Hostelmate{
		{Name: "Rahul S.", Initial: "R", Tag: "Same train"},
		{Name: "Priya M.", Initial: "P", Tag: "Same train"},
		{Name: "Vikash K.", Initial: "V", Tag: "Same train"},
	}
}

func Tatkal() TatkalInfo {
	return TatkalInfo{NextWindow: "10:00 AM", AutoFillReady: true, AlertSet: true}
}

// PapaPay builds a UPI collect request to a parent's handle.
func PapaPay(amount int, parentUPI string) (PaymentRequest, error) {
	if amount <= 0 {
		return PaymentRequest{}, fmt.Errorf("%w: amount must be positive", ErrBadRequest)
	}
	parentUPI = strings.TrimSpace(parentUPI)
	if parentUPI == "" {
		parentUPI = DefaultParentUPI
	}
	link := fmt.Sprintf("upi://pay?pa=%s&pn=Paytm%%20Campus%%20OS&am=%d&cu=INR&tn=Travel%%20Fare%%20Request",
		upiValue(parentUPI), amount)
	return PaymentRequest{
		UPILink: link,
		Message: fmt.Sprintf("Payment request of ₹%d sent to %s", amount, parentUPI),
		Amount:  amount,
	}, nil
}

func MessCardBalance() MessBalance {
	return MessBalance{Balance: 3200, Total: 5000, Percentage: 64}
}

func RecentSpending() []SpendingItem {
	return []SpendingItem{
		{Item: "Chai", Amount: "₹15"},
		{Item: "Lunch", Amount: "₹65"},
		{Item: "Photocopy", Amount: "₹30"},
		{Item: "Samosa", Amount: "₹20"},
	}
}

func spendingCategories() []SpendingCategory {
	return []SpendingCategory{
		{Name: "Food", Value: 3200, Color: "hsl(194, 100%, 47%)"},
		{Name: "Travel", Value: 1800, Color: "hsl(186, 100%, 50%)"},
		{Name: "Stationery", Value: 600, Color: "hsl(43, 100%, 50%)"},
		{Name: "Entertainment", Value: 1400, Color: "hsl(150, 80%, 44%)"},
		{Name: "Recharge", Value: 500, Color: "hsl(0, 84%, 60%)"},
	}
}

// PayCategories is the CampusPay breakdown; it leaves out mobile recharges.
func PayCategories() []SpendingCategory {
	return spendingCategories()[:4]
}

// HostelDebts are the open IOUs between the student and hostelmates.
func HostelDebts() []debt.Debt {
	return []debt.Debt{
		{Name: "Rahul", Amount: 120, Direction: debt.OwesYou},
		{Name: "Priya", Amount: 30, Direction: debt.YouOwe},
		{Name: "Amit", Amount: 85, Direction: debt.OwesYou},
		{Name: "Neha", Amount: 45, Direction: debt.YouOwe},
	}
}

// Settle returns the UPI deep link that pays back name.
func Settle(name string) (Settlement, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Settlement{}, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	return Settlement{
		Message: fmt.Sprintf("₹ settled with %s via UPI! ✅", name),
		UPILink: fmt.Sprintf("upi://pay?pa=%s@paytm&pn=%s&cu=INR",
			upiValue(strings.ToLower(name)), upiValue(name)),
	}, nil
}

// upiValue escapes s as a query value. Spaces become %20 and the @ of a
// VPA stays readable; & = + # are always escaped.
func upiValue(s string) string {
	v := strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	return strings.ReplaceAll(v, "%40", "@")
}

func Fests() FestList {
	return FestList{
		Featured: FeaturedFest{
			Name:     "Techfest 2025",
			College:  "IIT Bombay",
			City:     "Mumbai",
			Dates:    "Mar 14-16, 2025",
			Trending: "23 students from your campus going!",
		},
		Fests: []Fest{
			{Name: "Riviera 2025", College: "VIT Vellore", City: "Vellore", Dates: "Feb 28 - Mar 2", Entry: 300, Travel: 800, Stay: 400, Gradient: "from-primary/40 to-accent/20"},
			{Name: "Mood Indigo", College: "IIT Bombay", City: "Mumbai", Dates: "Mar 7-9", Entry: 500, Travel: 1200, Stay: 600, Gradient: "from-gold/40 to-gold/10"},
			{Name: "Oasis", College: "BITS Pilani", City: "Pilani", Dates: "Mar 21-24", Entry: 200, Travel: 600, Stay: 300, Gradient: "from-success/40 to-success/10"},
			{Name: "Saarang", College: "IIT Madras", City: "Chennai", Dates: "Apr 2-5", Entry: 400, Travel: 1000, Stay: 500, Gradient: "from-destructive/30 to-destructive/5"},
		},
	}
}

// BookFest books a FestPass. Groups of GroupDiscountMinSize or more get GroupDiscountPct off.
func BookFest(festName string, groupSize int) (FestBooking, error) {
	festName = strings.TrimSpace(festName)
	if festName == "" {
		return FestBooking{}, fmt.Errorf("%w: fest_name is required", ErrBadRequest)
	}
	if groupSize < 1 {
		return FestBooking{}, fmt.Errorf("%w: group_size must be at least 1", ErrBadRequest)
	}

	b := FestBooking{Fest: festName, GroupSize: groupSize}
	msg := fmt.Sprintf("🎉 FestPass booked for %s! ", festName)
	if groupSize >= GroupDiscountMinSize {
		b.GroupDiscountApplied = true
		b.DiscountPct = GroupDiscountPct
		msg += fmt.Sprintf("Group discount of %d%% applied!", GroupDiscountPct)
	}
	b.Message = msg
	return b, nil
}

func Kharcha() KharchaReport {
	return KharchaReport{
		ThisMonth: 3400,
		LastMonth: 4600,
		Savings:   1000,
		MonthlyData: []MonthlyTrend{
			{Month: "Sep", Amount: 4200},
			{Month: "Oct", Amount: 5100},
			{Month: "Nov", Amount: 3800},
			{Month: "Dec", Amount: 6200},
			{Month: "Jan", Amount: 4600},
			{Month: "Feb", Amount: 3400},
		},
		Categories: spendingCategories(),
	}
}
