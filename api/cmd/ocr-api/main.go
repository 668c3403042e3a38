package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"ocr-api/api/internal/config"
	"ocr-api/api/internal/handle"
	"ocr-api/api/internal/httpserver"
	"ocr-api/api/internal/imgio"
	"ocr-api/api/internal/ocr"
	"ocr-api/api/internal/ocr/gemini"
	"ocr-api/api/internal/ocr/ollama"
	"ocr-api/api/internal/ocr/tesseract"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		log.Fatalf("building engine: %v", err)
	}
	// One engine instance for the whole process; the guard is the only
	// access path handlers ever see.
	engine = ocr.Guard(engine)

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	resolver := imgio.NewResolver(cfg.FetchTimeout)
	h := handle.New(engine, resolver, cfg.Language, slogger)

	srv := httpserver.New(":"+cfg.Port, h, slogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		log.Infof("ocr-api listening on %s (engine=%s lang=%s)", srv.Addr, engine.Name(), cfg.Language)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}

func buildEngine(cfg *config.Config) (ocr.Engine, error) {
	switch cfg.Engine {
	case "tesseract", "":
		return tesseract.New(), nil
	case "gemini":
		if cfg.Gemini.APIKey == "" {
			return nil, errors.New("OCR_GEMINI_API_KEY is required for the gemini engine")
		}
		return gemini.New(cfg.Gemini.APIKey, cfg.Gemini.Model), nil
	case "ollama":
		return ollama.New(cfg.Ollama.URL, cfg.Ollama.Model), nil
	default:
		return nil, errors.New("unknown engine: " + cfg.Engine)
	}
}
