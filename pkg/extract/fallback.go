package extract

import (
	"context"
	"log/slog"

	"github.com/ojaledger/ojaledger/pkg/lang"
)

// Fallback runs Primary and switches to Secondary when Primary returns an
// error. An empty result from Primary is a real answer, not a reason to
// fall back.
type Fallback struct {
	Primary   Extractor
	Secondary Extractor
	Logger    *slog.Logger
}

func (f *Fallback) Extract(ctx context.Context, text string, language lang.Language) ([]Parsed, error) {
	parsed, err := f.Primary.Extract(ctx, text, language)
	if err == nil {
		return parsed, nil
	}
	logger := f.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("extractor fell back", "error", err)
	return f.Secondary.Extract(ctx, text, language)
}
