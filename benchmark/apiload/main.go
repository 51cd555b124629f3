package main

import (
	"bytes"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxClients int = 200
var roundsPerClient int = 50
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration
	total := maxClients * roundsPerClient

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxClients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range roundsPerClient {
				updateThresholds()
			}
			fmt.Printf("\rclient %v finished threshold rounds", i)
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rthreshold updates: %v requests, used time=%v seconds, throughput=%v action/second\n",
		total, usedTime.Seconds(), float64(total)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxClients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range roundsPerClient {
				readAlerts()
			}
			fmt.Printf("\rclient %v finished alert rounds", i)
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\ralert reads: %v requests, used time=%v seconds, throughput=%v action/second\n",
		total, usedTime.Seconds(), float64(total)/usedTime.Seconds(),
	)
}

func updateThresholds() {
	min := 15 + rnd.Float64()*5
	max := 28 + rnd.Float64()*5
	body := fmt.Sprintf(`{"temperature":{"min":%v,"max":%v}}`, min, max)

	req, err := http.NewRequest(
		http.MethodPut,
		fmt.Sprintf("http://%s/api/v1/thresholds", httpHostPort),
		bytes.NewBufferString(body),
	)
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return
	}
	resp.Body.Close()
}

func readAlerts() {
	resp, err := http.Get(fmt.Sprintf("http://%s/api/v1/alerts", httpHostPort))
	if err != nil {
		return
	}
	resp.Body.Close()
}
