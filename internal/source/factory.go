package source

import (
	"context"
	"fmt"

	"github.com/abhisek/triviaz/internal/config"
	"github.com/abhisek/triviaz/internal/llm"
	"github.com/abhisek/triviaz/internal/store"
)

// New builds the source selected in cfg, wrapped with fetch logging.
// avoid lists recently asked questions; only the llm source uses it.
func New(ctx context.Context, cfg config.Config, repo store.EventRepo, avoid []string) (Source, error) {
	var (
		src Source
		err error
	)

	switch cfg.Source {
	case config.SourceOpenTDB:
		src = NewOpenTDB(OpenTDBConfig{
			BaseURL: cfg.OpenTDB.BaseURL,
			Timeout: cfg.OpenTDB.Timeout,
			Retries: cfg.OpenTDB.Retries,
		})
	case config.SourceBank:
		src, err = NewBank(LocalConfig{})
	case config.SourceFile:
		src = NewFile(cfg.BankFile, LocalConfig{})
	case config.SourceLLM:
		src, err = newLLMSource(ctx, cfg.LLM, repo, avoid)
	default:
		err = fmt.Errorf("unknown question source %q", cfg.Source)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s source: %w", cfg.Source, err)
	}

	return WithLogging(src, repo), nil
}

func newLLMSource(ctx context.Context, cfg llm.Config, repo store.EventRepo, avoid []string) (Source, error) {
	if cfg.Provider == "" {
		discovered, ok := llm.DiscoverConfig(cfg)
		if !ok {
			return nil, llm.ErrNotConfigured
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, repo)
	if err != nil {
		return nil, err
	}

	llmCfg := DefaultLLMConfig()
	llmCfg.Avoid = avoid
	llmCfg.Timeout = cfg.Timeout
	return NewLLM(provider, llmCfg), nil
}
