// README: Campus catalog types (dashboard, yatra, gharwaapsi, campuspay, festpass, kharcha).
package campus

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

type ActiveTrip struct {
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Members     int    `json:"members"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
}

type FeedItem struct {
	Text string `json:"text"`
	Time string `json:"time"`
}

type Dashboard struct {
	Greeting    string       `json:"greeting"`
	Stats       []Stat       `json:"stats"`
	ActiveTrips []ActiveTrip `json:"active_trips"`
	Feed        []FeedItem   `json:"feed"`
}

type TransportOption struct {
	Mode  string `json:"mode"`
	Route string `json:"route"`
	Time  string `json:"time"`
	Price string `json:"price"`
}

type StayOption struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Price  string  `json:"price"`
	Tag    string  `json:"tag"`
}

type Activity struct {
	Name string `json:"name"`
	Cost string `json:"cost"`
}

type GroupMember struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type TripPlan struct {
	Destination    string            `json:"destination"`
	Region         string            `json:"region"`
	Dates          string            `json:"dates"`
	MemberCount    int               `json:"member_count"`
	PricePerPerson string            `json:"price_per_person"`
	Transport      []TransportOption `json:"transport"`
	Stays          []StayOption      `json:"stays"`
	Activities     []Activity        `json:"activities"`
	BudgetUsed     int               `json:"budget_used"`
	BudgetTotal    int               `json:"budget_total"`
	Members        []GroupMember     `json:"members"`
}

type Hostelmate struct {
	Name    string `json:"name"`
	Initial string `json:"initial"`
	Tag     string `json:"tag"`
}

type TatkalInfo struct {
	NextWindow    string `json:"next_window"`
	AutoFillReady bool   `json:"auto_fill_ready"`
	AlertSet      bool   `json:"alert_set"`
}

type PaymentRequest struct {
	UPILink string `json:"upi_link"`
	Message string `json:"message"`
	Amount  int    `json:"amount"`
}

type Settlement struct {
	Message string `json:"message"`
	UPILink string `json:"upi_link"`
}

type MessBalance struct {
	Balance    int `json:"balance"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type SpendingItem struct {
	Item   string `json:"item"`
	Amount string `json:"amount"`
}

type SpendingCategory struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type FeaturedFest struct {
	Name     string `json:"name"`
	College  string `json:"college"`
	City     string `json:"city"`
	Dates    string `json:"dates"`
	Trending string `json:"trending"`
}

type Fest struct {
	Name     string `json:"name"`
	College  string `json:"college"`
	City     string `json:"city"`
	Dates    string `json:"dates"`
	Entry    int    `json:"entry"`
	Travel   int    `json:"travel"`
	Stay     int    `json:"stay"`
	Gradient string `json:"gradient"`
}

type FestList struct {
	Featured FeaturedFest `json:"featured"`
	Fests    []Fest       `json:"fests"`
}

type FestBooking struct {
	Fest                 string `json:"fest"`
	GroupSize            int    `json:"group_size"`
	GroupDiscountApplied bool   `json:"group_discount_applied"`
	DiscountPct          int    `json:"discount_pct"`
	Message              string `json:"message"`
}

type MonthlyTrend struct {
	Month  string `json:"month"`
	Amount int    `json:"amount"`
}

type KharchaReport struct {
	ThisMonth   int                `json:"this_month"`
	LastMonth   int                `json:"last_month"`
	Savings     int                `json:"savings"`
	MonthlyData []MonthlyTrend     `json:"monthly_data"`
	Categories  []SpendingCategory `json:"categories"`
}

// Student is the profile printed on the bonafide certificate.
type Student struct {
	Name         string
	College      string
	EnrollmentNo string
	Course       string
	Year         string
}

type Certificate struct {
	StudentName    string `json:"student_name"`
	College        string `json:"college"`
	EnrollmentNo   string `json:"enrollment_no"`
	Course         string `json:"course"`
	Year           string `json:"year"`
	FromStation    string `json:"from_station"`
	ToStation      string `json:"to_station"`
	TravelClass    string `json:"travel_class"`
	ConcessionType string `json:"concession_type"`
	ConcessionFare int    `json:"concession_fare"`
	ValidUntil     string `json:"valid_until"`
	VerifiedVia    string `json:"verified_via"`
	VerificationID string `json:"verification_id"`
}
