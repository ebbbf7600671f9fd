package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"github.com/ojaledger/ojaledger/cmd/ojaledger/internal/config"
	"github.com/ojaledger/ojaledger/pkg/audio/normalize"
	"github.com/ojaledger/ojaledger/pkg/extract"
	"github.com/ojaledger/ojaledger/pkg/genx"
	"github.com/ojaledger/ojaledger/pkg/intent"
	"github.com/ojaledger/ojaledger/pkg/kv"
	"github.com/ojaledger/ojaledger/pkg/ledger"
	"github.com/ojaledger/ojaledger/pkg/pipeline"
	"github.com/ojaledger/ojaledger/pkg/respond"
	"github.com/ojaledger/ojaledger/pkg/server"
	"github.com/ojaledger/ojaledger/pkg/speech"
)

var serveFlags struct {
	listen  string
	dataDir string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the voice bookkeeping HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.listen, "listen", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveFlags.dataDir, "data-dir", "", "ledger data directory (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := GetConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if serveFlags.listen != "" {
		cfg.Listen = serveFlags.listen
	}
	if serveFlags.dataDir != "" {
		cfg.DataDir = serveFlags.dataDir
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	logger := slog.Default()

	store, err := kv.OpenBadger(cfg.DataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	orch, err := buildOrchestrator(ctx, cfg, store, logger)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:    cfg.Listen,
		Handler: server.New(orch, logger),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("serving", "listen", cfg.Listen, "backend", cfg.Backend, "data_dir", cfg.DataDir)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// buildOrchestrator wires the pipeline for the configured backend. Gemini
// serves generation, transcription and synthesis; OpenAI serves generation
// and Whisper transcription, with Gemini synthesis only when a Gemini key
// is also present.
func buildOrchestrator(ctx context.Context, cfg *config.Config, store kv.Store, logger *slog.Logger) (*pipeline.Orchestrator, error) {
	var (
		gen         genx.Generator
		transcriber speech.Transcriber
		synthesizer speech.Synthesizer
	)

	var geminiClient *genai.Client
	if cfg.Gemini.APIKey != "" {
		var err error
		geminiClient, err = genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.Gemini.APIKey})
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		synthesizer = &speech.GeminiSynthesizer{Client: geminiClient, Model: cfg.Gemini.TTSModel}
	}

	switch cfg.Backend {
	case config.BackendGemini:
		gen = &genx.GeminiGenerator{Client: geminiClient, Model: cfg.Gemini.Model}
		transcriber = &speech.GeminiTranscriber{Gen: gen}
	case config.BackendOpenAI:
		client := openai.NewClient(option.WithAPIKey(cfg.OpenAI.APIKey))
		gen = &genx.OpenAIGenerator{Client: &client, Model: cfg.OpenAI.Model}
		transcriber = &speech.WhisperTranscriber{Client: &client, Model: openai.AudioModel(cfg.OpenAI.TranscriptionModel)}
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	if synthesizer == nil {
		logger.Warn("no gemini api key; replies will be text only")
	}

	composer, err := respond.NewComposer()
	if err != nil {
		return nil, err
	}
	return &pipeline.Orchestrator{
		Normalizer:  &normalize.Normalizer{Logger: logger},
		Transcriber: transcriber,
		Classifier:  intent.Chain{intent.LexicalClassifier{}, &intent.ModelClassifier{Gen: gen}},
		Extractor: &extract.Fallback{
			Primary:   &extract.ModelExtractor{Gen: gen},
			Secondary: extract.PatternExtractor{},
			Logger:    logger,
		},
		Ledger:      ledger.NewStore(store),
		Composer:    composer,
		Synthesizer: synthesizer,
		Logger:      logger,
	}, nil
}
