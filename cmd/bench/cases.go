// README: Smoke cases for the campus API; includes HTTP, DB, Redis, concurrency and load checks.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name  string
	Focus string
	Run   func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	lucknowKanpur := map[string]any{
		"from_station": "Lucknow",
		"to_station":   "Kanpur",
		"travel_class": "SL",
		"category":     "General",
	}
	return []TestCase{
		{
			Name:  "Env: Postgres connect",
			Focus: "distance table source reachable",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "SKIP", Note: "db not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.db.Ping(ctx); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "Env: Redis connect",
			Focus: "chat quota store reachable",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: "SKIP", Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "Migration: apply (optional)",
			Focus: "apply migration SQL",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.ApplyMigration {
					return Result{Status: "SKIP", Note: "apply-migration=false"}
				}
				if r.db == nil {
					return Result{Status: "FAIL", Note: "db not configured"}
				}
				sql, err := os.ReadFile(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				for _, s := range splitSQL(string(sql)) {
					if _, err := r.db.Exec(ctx, s); err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "Migration: tables exist",
			Focus: "tables from the migration file exist",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "SKIP", Note: "db not configured"}
				}
				tables, err := extractTables(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				for _, t := range tables {
					var exists bool
					err := r.db.QueryRow(ctx,
						"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)",
						t,
					).Scan(&exists)
					if err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
					if !exists {
						return Result{Status: "FAIL", Note: "missing table: " + t}
					}
				}
				return Result{Status: "PASS"}
			},
		},
		httpCaseMethod("API: health", http.MethodGet, base+"/health", nil, []int{200}),
		httpCaseMethod("API: metrics", http.MethodGet, base+"/metrics", nil, []int{200}),

		// Concession
		httpCase("Concession: calculate (valid)", base+"/api/concession/calculate", lucknowKanpur, []int{200}),
		httpCase("Concession: calculate (missing stations -> 400)", base+"/api/concession/calculate", map[string]any{}, []int{400}),
		httpCaseMethod("Concession: distance (unknown pair uses fallback)", http.MethodGet, base+"/api/concession/distance?from=Lucknow&to=Atlantis", nil, []int{200}),
		httpCase("Concession: bonafide pdf", base+"/api/concession/bonafide?format=pdf", lucknowKanpur, []int{200}),

		// Route home
		httpCase("Gharwaapsi: route (valid)", base+"/api/gharwaapsi/route", map[string]any{
			"from_city": "Lucknow",
			"to_city":   "Gorakhpur",
			"category":  "SC/ST",
		}, []int{200}),
		httpCase("Gharwaapsi: route (missing city -> 400)", base+"/api/gharwaapsi/route", map[string]any{"from_city": "Lucknow"}, []int{400}),
		httpCase("Gharwaapsi: papa-pay (zero amount -> 400)", base+"/api/gharwaapsi/papa-pay", map[string]any{"amount": 0}, []int{400}),

		// Debts
		httpCaseMethod("CampusPay: hostel debts", http.MethodGet, base+"/api/campuspay/debts", nil, []int{200}),
		httpCase("CampusPay: simplify (valid)", base+"/api/campuspay/simplify", map[string]any{
			"debts": []map[string]any{
				{"name": "Rahul", "amount": 120, "direction": "owes_you"},
				{"name": "Priya", "amount": 30, "direction": "you_owe"},
			},
		}, []int{200}),
		httpCase("CampusPay: simplify (bad direction -> 400)", base+"/api/campuspay/simplify", map[string]any{
			"debts": []map[string]any{{"name": "Rahul", "amount": 120, "direction": "sideways"}},
		}, []int{400}),

		// Chat
		httpCase("Yatra: chat", base+"/api/yatra/chat", map[string]any{"message": "Rishikesh weekend under 2000?"}, []int{200}),
		httpCase("Yatra: chat (empty -> 400)", base+"/api/yatra/chat", map[string]any{"message": ""}, []int{400}),

		httpCase("FestPass: book group", base+"/api/festpass/book?fest_name=Oasis&group_size=6", nil, []int{200}),
		httpCaseMethod("Kharcha: report", http.MethodGet, base+"/api/kharcha/report", nil, []int{200}),

		// Concurrency
		{
			Name:  "Concurrency: concession results identical",
			Focus: "pure calculations under parallel load",
			Run: func(ctx context.Context, r *Runner) Result {
				return concurrentConsistent(ctx, r, base+"/api/concession/calculate", lucknowKanpur)
			},
		},

		// Load
		{
			Name:  "Perf: concession throughput",
			Focus: "concession calculations per second",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/api/concession/calculate", lucknowKanpur)
			},
		},
		{
			Name:  "Perf: route throughput",
			Focus: "route compositions per second",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/api/gharwaapsi/route", map[string]any{
					"from_city": "Delhi",
					"to_city":   "Agra",
				})
			},
		},
	}
}

func httpCase(name, url string, body any, okStatuses []int) TestCase {
	return httpCaseMethod(name, http.MethodPost, url, body, okStatuses)
}

func httpCaseMethod(name, method, url string, body any, okStatuses []int) TestCase {
	return TestCase{
		Name:  name,
		Focus: "HTTP API",
		Run: func(ctx context.Context, r *Runner) Result {
			var reader io.Reader
			if body != nil {
				b, _ := json.Marshal(body)
				reader = bytes.NewReader(b)
			}
			req, _ := http.NewRequestWithContext(ctx, method, url, reader)
			req.Header.Set("Content-Type", "application/json")
			start := time.Now()
			resp, err := r.httpc.Do(req)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			latency := time.Since(start)

			if contains(okStatuses, resp.StatusCode) {
				return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
		},
	}
}

// concurrentConsistent fires the same request from every worker and expects
// byte-identical bodies back.
func concurrentConsistent(ctx context.Context, r *Runner, url string, payload any) Result {
	b, _ := json.Marshal(payload)
	wg := sync.WaitGroup{}
	mu := sync.Mutex{}
	bodies := map[string]int{}
	failed := 0

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
			req.Header.Set("Content-Type", "application/json")
			resp, err := r.httpc.Do(req)
			if err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			mu.Lock()
			if resp.StatusCode == http.StatusOK {
				bodies[string(body)]++
			} else {
				failed++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if failed > 0 {
		return Result{Status: "FAIL", Note: fmt.Sprintf("failed=%d", failed)}
	}
	if len(bodies) != 1 {
		return Result{Status: "FAIL", Note: fmt.Sprintf("distinct bodies=%d", len(bodies))}
	}
	return Result{Status: "PASS", Note: fmt.Sprintf("requests=%d", r.cfg.Concurrency)}
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	b, _ := json.Marshal(payload)
	end := time.Now().Add(r.cfg.Duration)
	var count int64
	var errCount int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					mu.Lock()
					errCount++
					mu.Unlock()
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				mu.Lock()
				count++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: "FAIL", Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: "PASS", Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}

func contains(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}

func extractTables(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	re := regexp.MustCompile(`(?i)create\s+table\s+if\s+not\s+exists\s+([a-zA-Z0-9_]+)`)
	matches := re.FindAllStringSubmatch(string(b), -1)
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, m[1])
	}
	return tables, nil
}

func splitSQL(sql string) []string {
	lines := strings.Split(sql, "\n")
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		l := strings.TrimSpace(line)
		if strings.HasPrefix(l, "--") || l == "" {
			continue
		}
		filtered = append(filtered, line)
	}
	parts := strings.Split(strings.Join(filtered, "\n"), ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
