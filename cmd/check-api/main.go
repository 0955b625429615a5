package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"zoo-visitor-platform/internal/config"
	"zoo-visitor-platform/internal/services"
)

// Connectivity check against the configured upstream services.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	timeout := time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Println("Checking upstream services")
	fmt.Printf("Backend: %s\n", cfg.Backend.BaseURL)

	articleClient := services.NewArticleClient(cfg.Backend.BaseURL, timeout)
	articles, err := articleClient.List(ctx)
	if err != nil {
		fmt.Printf("  articles: FAILED (%v)\n", err)
	} else {
		fmt.Printf("  articles: OK (%d articles)\n", len(articles))
	}

	weatherClient := services.NewWeatherClient(cfg.Weather.BaseURL, cfg.Weather.Latitude, cfg.Weather.Longitude, timeout)
	report, err := weatherClient.Forecast(ctx)
	if err != nil {
		fmt.Printf("  weather: FAILED (%v)\n", err)
	} else {
		fmt.Printf("  weather: OK (%.1f C, %s)\n", report.Temperature, report.Condition)
	}

	if cfg.Assistant.APIKey == "" {
		fmt.Println("  assistant: SKIPPED (no API key configured)")
	} else {
		assistantClient := services.NewAssistantClient(cfg.Assistant.BaseURL, cfg.Assistant.APIKey, cfg.Assistant.Model, timeout)
		answer, err := assistantClient.Ask(ctx, "Wann werden die Elefanten gefuettert?")
		if err != nil {
			fmt.Printf("  assistant: FAILED (%v)\n", err)
		} else {
			fmt.Printf("  assistant: OK (%d chars)\n", len(answer))
		}
	}
}
