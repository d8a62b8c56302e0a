package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusos/internal/ai"
	"campusos/internal/modules/campus"
	"campusos/internal/modules/debt"
	"campusos/internal/modules/fare"
	"campusos/internal/modules/route"
	"campusos/internal/service"
)

type stubResponder struct {
	message  string
	history  []ai.Message
	clientID string
}

func (s *stubResponder) GetReply(ctx context.Context, message string, history []ai.Message) (string, bool) {
	s.message = message
	s.history = history
	s.clientID = ai.ClientID(ctx)
	return "Plan ready! ₹1850", true
}

type stubQuota struct {
	remaining int
	err       error
	clientID  string
}

func (q *stubQuota) Remaining(_ context.Context, clientID string) (int, error) {
	q.clientID = clientID
	return q.remaining, q.err
}

func (q *stubQuota) Limit() int { return 100 }

func buildTestRouter(chat ai.Responder) *gin.Engine {
	return buildTestRouterWith(Deps{Chat: chat})
}

func buildTestRouterWith(d Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger, _ := test.NewNullLogger()
	fares := fare.NewEngine(fare.DefaultTables())
	composer := route.NewComposer(fares, route.DefaultTables())
	d.Fares = fares
	d.HomePlanner = service.NewHomePlanner(composer, nil, logger)
	d.Logger = logger
	d.CORSOrigins = []string{"http://localhost:5173"}
	return NewRouter(d)
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestIndexAndHealth(t *testing.T) {
	r := buildTestRouter(nil)

	w := doRequest(r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	idx := decode[indexResponse](t, w)
	assert.Equal(t, appName, idx.App)
	assert.Equal(t, "1.0.0", idx.Version)
	assert.Contains(t, idx.Endpoints, "/api/concession/calculate")
	assert.Contains(t, idx.Endpoints, "/api/kharcha/report")
	assert.NotContains(t, idx.Endpoints, "/health")

	w = doRequest(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "campusos_http_requests_total")
}

func TestConcessionEndpoints(t *testing.T) {
	r := buildTestRouter(nil)

	w := doRequest(r, http.MethodGet, "/api/concession/distance?from=Kanpur&to=Lucknow", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"from_station":"Kanpur","to_station":"Lucknow","distance_km":82}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/concession/distance?from=Kanpur", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/concession/calculate", map[string]string{
		"from_station": "Lucknow", "to_station": "Kanpur", "travel_class": "SL", "category": "General",
	})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[fare.ConcessionResult](t, w)
	assert.Equal(t, 55, res.OriginalFare)
	assert.Equal(t, 30, res.ConcessionFare)
	assert.Equal(t, 25, res.Savings)
	assert.Len(t, res.Steps, 5)

	w = doRequest(r, http.MethodPost, "/api/concession/calculate", map[string]string{"from_station": "Lucknow"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodGet, "/api/concession/stations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stations := decode[map[string][]string](t, w)
	require.Contains(t, stations, "stations")
	assert.Equal(t, fare.DefaultTables().Stations, stations["stations"])
}

func TestConcessionDefaultsClassAndCategory(t *testing.T) {
	r := buildTestRouter(nil)

	w := doRequest(r, http.MethodPost, "/api/concession/calculate", map[string]string{
		"from_station": "Lucknow", "to_station": "Kanpur",
	})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[fare.ConcessionResult](t, w)
	assert.Equal(t, fare.DefaultClass, res.TravelClass)
	assert.Equal(t, fare.DefaultCategory, res.Category)
}

func TestBonafide(t *testing.T) {
	r := buildTestRouter(nil)
	body := map[string]string{"from_station": "Lucknow", "to_station": "Kanpur", "travel_class": "SL", "category": "General"}

	w := doRequest(r, http.MethodPost, "/api/concession/bonafide", body)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[struct {
		Certificate map[string]any `json:"certificate"`
		Message     string         `json:"message"`
	}](t, w)
	assert.Equal(t, "Saksham Yason", got.Certificate["student_name"])
	assert.Equal(t, float64(30), got.Certificate["concession_fare"])
	assert.Equal(t, "Digital bonafide certificate generated successfully!", got.Message)

	w = doRequest(r, http.MethodPost, "/api/concession/bonafide?format=pdf", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "BONAFIDE_2023BCS1042.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestGharwaapsiRoute(t *testing.T) {
	r := buildTestRouter(nil)

	w := doRequest(r, http.MethodPost, "/api/gharwaapsi/route", map[string]string{"from_city": "Lucknow", "to_city": "Kanpur"})
	require.Equal(t, http.StatusOK, w.Code)
	plan := decode[service.HomePlan](t, w)
	assert.Equal(t, 145, plan.TotalOriginal)
	assert.Equal(t, 120, plan.TotalDiscounted)
	assert.Equal(t, 25, plan.Savings)
	assert.Nil(t, plan.LiveLastMile)
	assert.NotContains(t, w.Body.String(), "live_last_mile")

	w = doRequest(r, http.MethodPost, "/api/gharwaapsi/route", map[string]string{"from_city": "Lucknow"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/gharwaapsi/route", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPapaPay(t *testing.T) {
	r := buildTestRouter(nil)

	w := doRequest(r, http.MethodPost, "/api/gharwaapsi/papa-pay", map[string]any{"amount": 450})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pa=parent@paytm")

	w = doRequest(r, http.MethodPost, "/api/gharwaapsi/papa-pay", map[string]any{"amount": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCampusPay(t *testing.T) {
	r := buildTestRouter(nil)

	w := doRequest(r, http.MethodGet, "/api/campuspay/debts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[debt.Result](t, w)
	assert.Equal(t, 4, res.OriginalCount)
	assert.Equal(t, debt.Simplify(res.Debts, debt.DefaultReference), res)

	w = doRequest(r, http.MethodPost, "/api/campuspay/simplify", map[string]any{
		"debts": []debt.Debt{
			{Name: "Rahul", Amount: 100, Direction: debt.OwesYou},
			{Name: "Priya", Amount: 100, Direction: debt.YouOwe},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[debt.Result](t, w)
	assert.Equal(t, []debt.Transaction{{FromPerson: "Rahul", ToPerson: "Priya", Amount: 100}}, res.SimplifiedTransactions)

	w = doRequest(r, http.MethodPost, "/api/campuspay/simplify", map[string]any{
		"debts": []debt.Debt{{Name: "Rahul", Amount: 0, Direction: debt.OwesYou}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/campuspay/simplify", map[string]any{
		"debts": []debt.Debt{
			{Name: "Rahul", Amount: 50, Direction: debt.OwesYou},
			{Name: "Rahul ", Amount: 50, Direction: debt.YouOwe},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/campuspay/simplify", map[string]any{
		"debts": []debt.Debt{
			{Name: "A", Amount: math.MaxInt64, Direction: debt.OwesYou},
			{Name: "B", Amount: math.MaxInt64, Direction: debt.OwesYou},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/campuspay/settle?name=Neha", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "upi://pay?pa=neha@paytm")

	w = doRequest(r, http.MethodPost, "/api/campuspay/settle", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFestPassBook(t *testing.T) {
	r := buildTestRouter(nil)

	w := doRequest(r, http.MethodPost, "/api/festpass/book?fest_name=Oasis&group_size=6", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[map[string]any](t, w)
	assert.Equal(t, true, got["group_discount_applied"])
	assert.Equal(t, float64(20), got["discount_pct"])

	w = doRequest(r, http.MethodPost, "/api/festpass/book?fest_name=Oasis&group_size=many", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/festpass/book", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestYatraChat(t *testing.T) {
	stub := &stubResponder{}
	r := buildTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/yatra/chat", strings.NewReader(
		`{"message":"  rishikesh trip  ","history":[{"role":"user","text":"hi"},{"role":"bot","text":"hello"}]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-ID", "hostel-b-204")
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	req.RemoteAddr = "10.9.8.7:40000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reply":"Plan ready! ₹1850","trip_generated":true}`, w.Body.String())
	assert.Equal(t, "rishikesh trip", stub.message)
	assert.Equal(t, []ai.Message{{Role: "user", Text: "hi"}, {Role: "bot", Text: "hello"}}, stub.history)
	assert.Equal(t, "10.9.8.7", stub.clientID)

	w = doRequest(r, http.MethodPost, "/api/yatra/chat", map[string]string{"message": " "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestYatraChat_LocalFallback(t *testing.T) {
	r := buildTestRouter(nil)

	w := doRequest(r, http.MethodPost, "/api/yatra/chat", map[string]string{"message": "goa chalein?"})
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[map[string]any](t, w)
	assert.Equal(t, true, got["trip_generated"])
}

func TestYatraQuota(t *testing.T) {
	w := doRequest(buildTestRouter(nil), http.MethodGet, "/api/yatra/quota", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"enabled":false,"remaining":0}`, w.Body.String())

	q := &stubQuota{remaining: 37}
	r := buildTestRouterWith(Deps{Quota: q})
	req := httptest.NewRequest(http.MethodGet, "/api/yatra/quota", nil)
	req.RemoteAddr = "10.9.8.7:40000"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"enabled":true,"limit":100,"remaining":37}`, w.Body.String())
	assert.Equal(t, "10.9.8.7", q.clientID)

	r = buildTestRouterWith(Deps{Quota: &stubQuota{err: errors.New("redis down")}})
	w = doRequest(r, http.MethodGet, "/api/yatra/quota", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestStaticEndpoints(t *testing.T) {
	r := buildTestRouter(nil)
	for _, path := range []string{
		"/api/dashboard",
		"/api/yatra/plan",
		"/api/gharwaapsi/hostelmates",
		"/api/gharwaapsi/tatkal",
		"/api/campuspay/balance",
		"/api/campuspay/spending",
		"/api/campuspay/categories",
		"/api/festpass/featured",
		"/api/kharcha/report",
	} {
		t.Run(path, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, json.Valid(w.Body.Bytes()))
		})
	}
}

func TestEnvelopedEndpoints(t *testing.T) {
	r := buildTestRouter(nil)

	w := doRequest(r, http.MethodGet, "/api/yatra/chips", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"chips":["Weekend Trip","Tirth Yatra","College Fest","Home Visit"]}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/festpass/list", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[campus.FestList](t, w)
	assert.Equal(t, campus.Fests(), list)
	assert.NotEmpty(t, list.Featured.Name)
	assert.NotEmpty(t, list.Fests)

	raw := decode[map[string]json.RawMessage](t, w)
	assert.Contains(t, raw, "featured")
	assert.Contains(t, raw, "fests")

	w = doRequest(r, http.MethodGet, "/api/festpass/featured", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, list.Featured, decode[campus.FeaturedFest](t, w))
}

func TestCORS(t *testing.T) {
	r := buildTestRouter(nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/concession/calculate", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
