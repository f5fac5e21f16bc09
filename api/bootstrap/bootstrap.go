package bootstrap

import (
	"fmt"
	"io"
	"sync"

	"github.com/tbeaudouin05/checkenv/api/checkenv"
	"github.com/tbeaudouin05/checkenv/api/config"
	"github.com/tbeaudouin05/checkenv/api/log"
	"github.com/tbeaudouin05/checkenv/api/report"
)

var (
	mu         sync.Mutex
	spec       *checkenv.Spec
	lastResult checkenv.Result
	initOnce   sync.Once
	initErr    error

	// logOutput overrides the log destination; nil means stderr.
	logOutput io.Writer
)

// Init validates the environment described by cfg. The snapshot is the
// process environment over the nearest .env file; the Spec comes from the
// manifest unless one was injected with SetSpec.
func Init(cfg config.Config) error {
	log.Configure(log.Config{Level: cfg.LogLevel, Output: logOutput, Service: "checkenv"})
	logger := log.WithComponent("bootstrap")

	env, err := config.LoadSnapshot(cfg.DotEnvDir)
	if err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}

	mu.Lock()
	injected := spec
	mu.Unlock()

	var s checkenv.Spec
	if injected != nil {
		s = *injected
	} else {
		m, err := config.LoadManifest(cfg.ManifestPath)
		if err != nil {
			return fmt.Errorf("failed to load manifest: %w", err)
		}
		s = m.Spec(env)
	}
	if s.LogMissing == nil && s.LogOptional == nil && s.LogUnsafe == nil {
		s.Use(report.Zerolog(log.WithComponent("checkenv")))
	}

	res, err := checkenv.Check(s, env)
	mu.Lock()
	lastResult = res
	mu.Unlock()
	if err != nil {
		return fmt.Errorf("environment check failed: %w", err)
	}

	if !res.OK() {
		logger.Warn().
			Int("missing", len(res.Required)).
			Int("unsafe", len(res.Unsafe)).
			Int("optional_unset", len(res.Optional)).
			Bool("production", s.Production(env)).
			Msg("environment check failed, continuing (noThrow)")
		return nil
	}
	logger.Info().
		Int("optional_unset", len(res.Optional)).
		Bool("production", s.Production(env)).
		Msg("environment check passed")
	return nil
}

// Ensure runs Init once per process with LoadConfig and returns its error.
func Ensure() error {
	initOnce.Do(func() {
		if config.AppConfig == nil {
			cfg, err := config.LoadConfig()
			if err != nil {
				initErr = fmt.Errorf("failed to load config: %w", err)
				return
			}
			config.AppConfig = cfg
		}
		initErr = Init(*config.AppConfig)
	})
	return initErr
}

// LastResult returns the classification from the most recent Init.
func LastResult() checkenv.Result {
	mu.Lock()
	defer mu.Unlock()
	return lastResult
}

// SetSpec allows tests to inject a spec instead of loading the manifest.
// A nil spec restores manifest loading.
func SetSpec(s *checkenv.Spec) {
	mu.Lock()
	defer mu.Unlock()
	spec = s
}
