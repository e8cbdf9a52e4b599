package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/identity"
	timeProvider "github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/time"
)

// HookRequest is the generation payload sent on every request
type HookRequest struct {
	Product  string `json:"product"`
	Audience string `json:"audience"`
	Tone     string `json:"tone"`
	Platform string `json:"platform"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	UserID       string
	Scenario     string
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests     int
	TotalTime         time.Duration
	ResponseTimes     []time.Duration
	TotalResponseTime time.Duration
	StatusCounts      map[int]int
	ErrorCounts       map[string]int
	UserStats         map[string]int
	ScenarioStats     map[string]int
	Lock              sync.Mutex
}

// Scenario is one campaign brief the workers pick from
type Scenario struct {
	Name    string
	Request HookRequest
}

var scenarios = []Scenario{
	{"Sneakers", HookRequest{"Trail running shoes", "Weekend runners", "Energetic", "instagram"}},
	{"Coffee", HookRequest{"Cold brew subscription", "Remote workers", "Friendly", "twitter"}},
	{"SaaS", HookRequest{"Invoice automation", "Small business owners", "Professional", "linkedin"}},
	{"Skincare", HookRequest{"Vitamin C serum", "Busy parents", "Warm", "tiktok"}},
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	userIDsStr := flag.String("u", "load-1,load-2,load-3", "Comma-separated user ids for the metered route")
	baseURL := flag.String("url", "http://localhost:3000", "Base URL for the API")
	metered := flag.Bool("metered", false, "Call POST /api/hooks with signed tokens instead of the proxy route")
	secret := flag.String("secret", "", "JWT secret used to sign tokens for -metered")
	issuer := flag.String("issuer", "adspark", "JWT issuer used to sign tokens for -metered")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var userIDs []string
	for _, id := range strings.Split(*userIDsStr, ",") {
		if id = strings.TrimSpace(id); id != "" {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		userIDs = []string{"load-1"}
	}

	path := "/api/generate-hook"
	tokens := map[string]string{}
	if *metered {
		if *secret == "" {
			fmt.Println("-secret is required with -metered")
			return
		}
		path = "/api/hooks"
		signer := identity.NewJWTVerifier(*secret, *issuer, time.Hour, timeProvider.NewRealTimeProvider())
		for _, id := range userIDs {
			token, err := signer.IssueToken(entity.Identity{UserID: id, Email: id + "@load.test"})
			if err != nil {
				fmt.Printf("Failed to sign token for %s: %v\n", id, err)
				return
			}
			tokens[id] = token
		}
	}

	fmt.Printf("Load testing %s%s\n", *baseURL, path)
	if *metered {
		fmt.Printf("Users: %v\n", userIDs)
	}
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		StatusCounts:  make(map[int]int),
		ErrorCounts:   make(map[string]int),
		UserStats:     make(map[string]int),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL+path, *delayMs, userIDs, tokens, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	ticker := time.NewTicker(time.Second)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				stats.Lock.Lock()
				completed := len(stats.ResponseTimes)
				stats.Lock.Unlock()
				fmt.Printf("Progress: %d/%d requests completed\n", completed, stats.TotalRequests)
			}
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()
	close(done)

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func worker(url string, delayMs int, userIDs []string, tokens map[string]string, jobs <-chan int, results chan<- TestResult) {
	client := &http.Client{Timeout: 30 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		userID := userIDs[rand.Intn(len(userIDs))]
		scenario := scenarios[rand.Intn(len(scenarios))]
		result := TestResult{UserID: userID, Scenario: scenario.Name}

		body, err := json.Marshal(scenario.Request)
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			result.Error = err
			results <- result
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		if token, ok := tokens[userID]; ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		start := time.Now()
		resp, err := client.Do(req)
		result.ResponseTime = time.Since(start)
		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			resp.Body.Close()
		}
		results <- result
	}
}

func (s *TestStats) record(r TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	s.TotalResponseTime += r.ResponseTime
	s.UserStats[r.UserID]++
	s.ScenarioStats[r.Scenario]++
	if r.Error != nil {
		s.ErrorCounts[r.Error.Error()]++
		return
	}
	s.StatusCounts[r.StatusCode]++
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[min(len(sorted)*p/100, len(sorted)-1)]
}

func printResults(stats *TestStats) {
	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	var avg time.Duration
	if len(sorted) > 0 {
		avg = stats.TotalResponseTime / time.Duration(len(sorted))
	}
	ok := 0
	for code, count := range stats.StatusCounts {
		if code >= 200 && code < 300 {
			ok += count
		}
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("2xx Responses:       %d (%.1f%%)\n", ok, float64(ok)/float64(stats.TotalRequests)*100)
	fmt.Printf("Rate Limited (429):  %d\n", stats.StatusCounts[http.StatusTooManyRequests])
	fmt.Printf("Out of Tokens (402): %d\n", stats.StatusCounts[http.StatusPaymentRequired])
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(len(sorted))/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	codes := make([]int, 0, len(stats.StatusCounts))
	for code := range stats.StatusCounts {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	for _, code := range codes {
		fmt.Printf("%d %-24s: %d\n", code, http.StatusText(code), stats.StatusCounts[code])
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for name, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests\n", name, count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- TRANSPORT ERRORS -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
	fmt.Println("================================================")
}
