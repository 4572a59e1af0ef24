package app

import (
	"fmt"

	cpfHTTP "github.com/allisson/validacpf/internal/cpf/http"
	cpfRepository "github.com/allisson/validacpf/internal/cpf/repository"
	cpfService "github.com/allisson/validacpf/internal/cpf/service"
	cpfUseCase "github.com/allisson/validacpf/internal/cpf/usecase"
)

// Formatter returns the CPF formatter.
func (c *Container) Formatter() cpfService.Formatter {
	c.formatterInit.Do(func() {
		c.formatter = cpfService.NewFormatter([]byte(c.config.LogFingerprintKey))
	})
	return c.formatter
}

// Generator returns the random CPF generator.
func (c *Container) Generator() cpfService.Generator {
	c.generatorInit.Do(func() {
		c.generator = cpfService.NewGenerator()
	})
	return c.generator
}

// DebtRepository returns the debt repository for the configured driver, or
// nil when the debt lookup is disabled.
func (c *Container) DebtRepository() (cpfUseCase.DebtRepository, error) {
	var err error
	c.debtRepositoryInit.Do(func() {
		c.debtRepository, err = c.initDebtRepository()
		if err != nil {
			c.setInitError("debtRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("debtRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.debtRepository, nil
}

// ValidationUseCase returns the CPF validation use case.
func (c *Container) ValidationUseCase() (cpfUseCase.ValidationUseCase, error) {
	var err error
	c.validationUseCaseInit.Do(func() {
		c.validationUseCase, err = c.initValidationUseCase()
		if err != nil {
			c.setInitError("validationUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("validationUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.validationUseCase, nil
}

// ValidationHandler returns the CPF validation HTTP handler.
func (c *Container) ValidationHandler() (*cpfHTTP.ValidationHandler, error) {
	var err error
	c.validationHandlerInit.Do(func() {
		c.validationHandler, err = c.initValidationHandler()
		if err != nil {
			c.setInitError("validationHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("validationHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.validationHandler, nil
}

func (c *Container) initDebtRepository() (cpfUseCase.DebtRepository, error) {
	if !c.config.DebtLookupEnabled {
		return nil, nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for debt repository: %w", err)
	}

	var repo cpfUseCase.DebtRepository
	switch c.config.DBDriver {
	case "mysql":
		repo = cpfRepository.NewMySQLDebtRepository(db)
	case "postgres":
		repo = cpfRepository.NewPostgreSQLDebtRepository(db)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	if c.config.MetricsEnabled {
		validationMetrics, err := c.ValidationMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get validation metrics for debt repository: %w", err)
		}
		return cpfUseCase.NewDebtRepositoryWithMetrics(repo, validationMetrics), nil
	}

	return repo, nil
}

func (c *Container) initValidationUseCase() (cpfUseCase.ValidationUseCase, error) {
	debtRepository, err := c.DebtRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get debt repository for validation use case: %w", err)
	}

	baseUseCase := cpfUseCase.NewValidationUseCase(c.Formatter(), debtRepository, c.Logger())

	if c.config.MetricsEnabled {
		validationMetrics, err := c.ValidationMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get validation metrics for validation use case: %w", err)
		}
		return cpfUseCase.NewValidationUseCaseWithMetrics(baseUseCase, validationMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initValidationHandler() (*cpfHTTP.ValidationHandler, error) {
	validationUseCase, err := c.ValidationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get validation use case for validation handler: %w", err)
	}

	return cpfHTTP.NewValidationHandler(validationUseCase, c.Logger()), nil
}
