// Benchmark drives the generate endpoint under load. It spins up a mock
// generation backend, builds and launches the server pointed at it, then
// runs a vegeta attack and prints latency percentiles.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"sync/atomic"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	mockPort = 9091
	appPort  = 8081
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "Duration of the test")
	rate := flag.Int("rate", 50, "Requests per second")
	queue := flag.Bool("queue", false, "Exercise the queue protocol instead of subscribe")
	flag.Parse()

	go startMockBackend()

	fmt.Println("Building application...")
	buildCmd := exec.Command("go", "build", "-o", "bin/server", "./cmd/server")
	buildCmd.Stdout = os.Stdout
	buildCmd.Stderr = os.Stderr
	if err := buildCmd.Run(); err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	fmt.Println("Starting application...")
	cmd := exec.Command("./bin/server")
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("SERVER_PORT=%d", appPort),
		fmt.Sprintf("FAL_SYNC_BASE_URL=http://localhost:%d", mockPort),
		fmt.Sprintf("FAL_QUEUE_BASE_URL=http://localhost:%d", mockPort),
		"FAL_API_KEY=bench-key",
		"DATABASE_DSN=file:bench.db?cache=shared&mode=rwc",
		"STORAGE_ENABLED=false",
		"LOG_LEVEL=error",
	)

	logFile, _ := os.Create("bench_server.log")
	defer logFile.Close()
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}
	defer func() {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
	}()

	waitForApp(fmt.Sprintf("http://localhost:%d/health", appPort))

	body := `{"operation": "text-to-image", "model": "fal-ai/flux-1/schnell", "params": {"prompt": "benchmark"}}`
	if *queue {
		body = `{"operation": "image-to-image", "model": "fal-ai/ghiblify", "params": {"image_url": "http://localhost:9091/asset/in.png"}}`
	}

	targeter := func(t *vegeta.Target) error {
		t.Method = "POST"
		t.URL = fmt.Sprintf("http://localhost:%d/v1/generate", appPort)
		t.Body = []byte(body)
		t.Header = http.Header{
			"Content-Type": []string{"application/json"},
		}
		return nil
	}

	fmt.Printf("Running benchmark: %s duration, %d req/s\n", *duration, *rate)

	attacker := vegeta.NewAttacker(vegeta.KeepAlive(true))
	var metrics vegeta.Metrics

	for res := range attacker.Attack(targeter, vegeta.Rate{Freq: *rate, Per: time.Second}, *duration, "Benchmark") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("--------------------------------------------------")
	fmt.Println("99th percentile: ", metrics.Latencies.P99)
	fmt.Println("Mean:            ", metrics.Latencies.Mean)
	fmt.Println("Max:             ", metrics.Latencies.Max)
	fmt.Printf("Success:         %.2f%%\n", metrics.Success*100)
	fmt.Printf("Throughput:      %.2f req/s\n", metrics.Throughput)
	fmt.Println("--------------------------------------------------")

	if len(metrics.Errors) > 0 {
		fmt.Println("Error set (first 5 unique):")
		seen := make(map[string]bool)
		for _, msg := range metrics.Errors {
			if !seen[msg] && len(seen) < 5 {
				fmt.Println(msg)
				seen[msg] = true
			}
		}
	}

	os.Remove("bench.db")
}

// startMockBackend answers both protocol variants: a blocking subscribe
// result for direct model paths, and submit/status/result for the queue.
func startMockBackend() {
	var requestSeq atomic.Int64

	imagePayload := []byte(`{"images": [{"url": "http://localhost:9091/asset/out.png"}]}`)
	singleImagePayload := []byte(`{"image": {"url": "http://localhost:9091/asset/out.png"}}`)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasSuffix(r.URL.Path, "/status"):
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"status": "COMPLETED"})
		case strings.Contains(r.URL.Path, "/requests/"):
			_, _ = w.Write(singleImagePayload)
		case r.Method == http.MethodPost && strings.Contains(r.URL.Path, "ghiblify"):
			id := fmt.Sprintf("bench-%d", requestSeq.Add(1))
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"request_id": id})
		default:
			_, _ = w.Write(imagePayload)
		}
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", mockPort),
		Handler: mux,
	}
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Mock backend failed: %v", err)
	}
}

func waitForApp(url string) {
	for i := 0; i < 50; i++ {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(200 * time.Millisecond)
	}
	log.Fatal("App did not become ready in time")
}
