package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/validacpf/internal/config"
	cpfDomain "github.com/allisson/validacpf/internal/cpf/domain"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServerHost:              "localhost",
		ServerPort:              8080,
		ServerShutdownTimeout:   time.Second,
		LogLevel:                "error",
		DBDriver:                "postgres",
		DBMaxOpenConnections:    5,
		DBMaxIdleConnections:    1,
		DBConnMaxLifetime:       time.Minute,
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 10,
		RateLimitBurst:          20,
		MetricsEnabled:          true,
		MetricsNamespace:        "test_app",
		MetricsPort:             8081,
	}
}

func TestNewContainer(t *testing.T) {
	cfg := baseConfig()

	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainer_Logger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "invalid"} {
		t.Run(level, func(t *testing.T) {
			cfg := baseConfig()
			cfg.LogLevel = level
			container := NewContainer(cfg)

			logger := container.Logger()
			require.NotNil(t, logger)
			assert.Same(t, logger, container.Logger())
		})
	}
}

func TestContainer_Services(t *testing.T) {
	container := NewContainer(baseConfig())

	formatter := container.Formatter()
	require.NotNil(t, formatter)
	assert.Same(t, formatter, container.Formatter())

	generator := container.Generator()
	require.NotNil(t, generator)

	cpf, err := generator.Generate()
	require.NoError(t, err)
	assert.True(t, cpfDomain.Validate(cpf))
}

func TestContainer_Formatter_FingerprintKey(t *testing.T) {
	t.Run("without key", func(t *testing.T) {
		container := NewContainer(baseConfig())

		assert.Empty(t, container.Formatter().Fingerprint("52998224725"))
	})

	t.Run("with key", func(t *testing.T) {
		first := baseConfig()
		first.LogFingerprintKey = "first-key"
		second := baseConfig()
		second.LogFingerprintKey = "second-key"

		firstFingerprint := NewContainer(first).Formatter().Fingerprint("52998224725")
		secondFingerprint := NewContainer(second).Formatter().Fingerprint("52998224725")

		assert.NotEmpty(t, firstFingerprint)
		assert.NotEqual(t, firstFingerprint, secondFingerprint)
	})
}

func TestContainer_DB_DisabledLookup(t *testing.T) {
	container := NewContainer(baseConfig())

	db, err := container.DB()

	assert.Nil(t, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debt lookup is disabled")

	// The stored error is returned on subsequent calls.
	_, err = container.DB()
	require.Error(t, err)
}

func TestContainer_DebtRepository(t *testing.T) {
	t.Run("disabled lookup returns nil repository", func(t *testing.T) {
		container := NewContainer(baseConfig())

		repo, err := container.DebtRepository()

		require.NoError(t, err)
		assert.Nil(t, repo)
	})

	t.Run("invalid driver fails", func(t *testing.T) {
		cfg := baseConfig()
		cfg.DebtLookupEnabled = true
		cfg.DBDriver = "invalid_driver"
		container := NewContainer(cfg)

		repo, err := container.DebtRepository()

		assert.Nil(t, repo)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get database for debt repository")

		_, err = container.ValidationUseCase()
		require.Error(t, err)
	})
}

func TestContainer_ValidationUseCase(t *testing.T) {
	tests := []struct {
		name           string
		metricsEnabled bool
	}{
		{name: "with metrics", metricsEnabled: true},
		{name: "without metrics", metricsEnabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.MetricsEnabled = tt.metricsEnabled
			container := NewContainer(cfg)
			defer func() {
				assert.NoError(t, container.Shutdown(context.Background()))
			}()

			useCase, err := container.ValidationUseCase()
			require.NoError(t, err)

			validation, err := useCase.Validate(context.Background(), "529.982.247-25")
			require.NoError(t, err)
			assert.True(t, validation.Valid())
			assert.False(t, validation.DebtChecked)

			again, err := container.ValidationUseCase()
			require.NoError(t, err)
			assert.Same(t, useCase, again)
		})
	}
}

func TestContainer_MetricsServer(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		cfg := baseConfig()
		cfg.MetricsEnabled = false
		container := NewContainer(cfg)

		server, err := container.MetricsServer()
		require.NoError(t, err)
		assert.Nil(t, server)

		validationMetrics, err := container.ValidationMetrics()
		require.NoError(t, err)
		assert.NotNil(t, validationMetrics)
	})

	t.Run("enabled", func(t *testing.T) {
		container := NewContainer(baseConfig())
		defer func() {
			assert.NoError(t, container.Shutdown(context.Background()))
		}()

		server, err := container.MetricsServer()
		require.NoError(t, err)
		require.NotNil(t, server)

		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestContainer_HTTPServer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container := NewContainer(baseConfig())
	defer func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	}()

	server, err := container.HTTPServer(ctx)
	require.NoError(t, err)
	require.NotNil(t, server)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/cpf/validate", strings.NewReader(`{"Cpf":"52998224725"}`))
	req.Header.Set("Content-Type", "application/json")
	server.GetHandler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CPF válido.")

	w = httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"disabled"`)
}

func TestContainer_ShutdownWithoutInitialization(t *testing.T) {
	container := NewContainer(baseConfig())

	assert.NoError(t, container.Shutdown(context.Background()))
}
