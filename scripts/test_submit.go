// +build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

type BusinessQuoteRequest struct {
	Name         string `json:"name"`
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	EventType    string `json:"event_type"`
	EventDate    string `json:"event_date,omitempty"`
	GuestsNumber *int   `json:"guests_number,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

func ptr[T any](v T) *T {
	return &v
}

// Manual smoke tool: submits a sample business quote against a running
// instance and prints the response. Run with:
//
//	go run scripts/test_submit.go -addr http://localhost:8080
func main() {
	addr := flag.String("addr", "http://localhost:8080", "server base URL")
	flag.Parse()

	quote := BusinessQuoteRequest{
		Name:         "Test Smoke",
		Company:      "Smoke S.r.l.",
		Email:        "smoke@example.com",
		EventType:    "aziendale",
		EventDate:    time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		GuestsNumber: ptr(25),
		Notes:        "Invio di prova, ignorare",
	}

	body, err := json.Marshal(quote)
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}

	resp, err := http.Post(*addr+"/api/business-quote", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Fatalf("decode: %v", err)
	}

	fmt.Printf("status=%d\n", resp.StatusCode)
	for k, v := range out {
		fmt.Printf("%s: %v\n", k, v)
	}
}
