package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/newsverify/api-backend/internal/client"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "API base URL")
	text := flag.String("text", "Breaking: markets rally on strong earnings", "news text to analyze")
	timeout := flag.Duration("timeout", 15*time.Second, "per-request timeout")
	flag.Parse()

	fmt.Println("NewsVerify - Smoke Check")
	fmt.Println("========================")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 2*(*timeout))
	defer cancel()

	c := client.New(*baseURL, *timeout)

	// Step 1: Readiness check
	state := c.CheckHealth(ctx)
	if !state.Ready {
		log.Printf("Service not ready: %v", state.LastError)
		os.Exit(1)
	}
	fmt.Println("Health:   model loaded")

	// Step 2: Analyze once, no retries
	resp, state, err := c.Analyze(ctx, state, *text)
	if err != nil {
		log.Printf("Analysis failed: %v (ready=%t)", err, state.Ready)
		os.Exit(1)
	}

	marker := "[!]"
	if resp.IsReal() {
		marker = "[ok]"
	}
	fmt.Printf("Result:   %s %s\n", marker, resp.Prediction)
	fmt.Printf("Confidence: %.2f%%\n", resp.Confidence)
	fmt.Printf("Real:     %.2f%%\n", resp.RealProbability)
	fmt.Printf("Fake:     %.2f%%\n", resp.FakeProbability)
}
