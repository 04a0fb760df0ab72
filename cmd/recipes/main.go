package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/mwhite7112/woodpantry-recipes/internal/api"
	"github.com/mwhite7112/woodpantry-recipes/internal/logging"
	"github.com/mwhite7112/woodpantry-recipes/internal/metrics"
	"github.com/mwhite7112/woodpantry-recipes/internal/service"
	"github.com/mwhite7112/woodpantry-recipes/internal/store"
)

func main() {
	logging.Setup()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	recipesFile := os.Getenv("RECIPES_FILE")
	if recipesFile == "" {
		slog.Error("RECIPES_FILE is required")
		os.Exit(1)
	}

	threshold := 0.8
	if t := os.Getenv("MATCH_THRESHOLD"); t != "" {
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			slog.Error("invalid MATCH_THRESHOLD", "error", err)
			os.Exit(1)
		}
		threshold = v
	}

	recipes, err := store.LoadFile(recipesFile)
	if err != nil {
		slog.Error("failed to load recipes", "path", recipesFile, "error", err)
		os.Exit(1)
	}
	slog.Info("recipes loaded", "path", recipesFile, "count", recipes.Len())

	svc := service.New(recipes, threshold)
	handler := api.NewRouter(svc, metrics.New())

	addr := fmt.Sprintf(":%s", port)
	slog.Info("recipes service listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
