// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type CaptureClickEvent struct {
	CaptureID uuid.UUID `json:"capture_id"`
	System    string    `json:"system"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Zoom      *int      `json:"zoom,omitempty"`
	Precision *int      `json:"precision,omitempty"`
}

func ptr[T any](v T) *T {
	return &v
}

func main() {
	redisAddr := flag.String("redis", "localhost:6380", "Redis address for streams")
	system := flag.String("system", "mgrs", "Target coordinate system: xyz, utm or mgrs")
	lat := flag.Float64("lat", 41.3851, "Latitude")
	lon := flag.Float64("lon", 2.1734, "Longitude")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие
	event := CaptureClickEvent{
		CaptureID: uuid.New(),
		System:    *system,
		Lat:       *lat,
		Lon:       *lon,
		Zoom:      ptr(14),
		Precision: ptr(5),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:capture:clicks",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:capture:clicks\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Capture ID: %s\n", event.CaptureID)
	fmt.Printf("   System: %s\n", event.System)
	fmt.Printf("   Coordinates: %.6f, %.6f\n", event.Lat, event.Lon)

	// Ожидание ответа
	fmt.Printf("\n⏳ Waiting for response in stream:capture:done...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout waiting for response")
			return
		case <-ticker.C:
			results, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{"stream:capture:done", "0"},
				Count:   10,
				Block:   0,
			}).Result()

			if err != nil && err != redis.Nil {
				continue
			}

			for _, stream := range results {
				for _, msg := range stream.Messages {
					dataStr, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}

					var response map[string]interface{}
					if err := json.Unmarshal([]byte(dataStr), &response); err != nil {
						continue
					}

					if captureID, ok := response["capture_id"].(string); ok {
						if captureID == event.CaptureID.String() {
							fmt.Printf("\n✅ Response received!\n")
							prettyJSON, _ := json.MarshalIndent(response, "", "  ")
							fmt.Printf("%s\n", prettyJSON)
							return
						}
					}
				}
			}
		}
	}
}
