package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ConfigValidator valida a configuração do toolkit.
type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador.
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica).
func (cv *ConfigValidator) Validate(cfg *ToolkitConfig) error {
	if err := cv.validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Field(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}

	return cv.validateSemantics(cfg)
}

func (cv *ConfigValidator) validateSemantics(cfg *ToolkitConfig) error {
	// Nomes de tabela devem ser únicos entre si
	seen := make(map[string]bool)
	for _, name := range []string{
		cfg.Tables.Suppliers,
		cfg.Tables.RawMaterials,
		cfg.Tables.FinishedProducts,
		cfg.Tables.PurchaseOrders,
		cfg.Tables.Distributors,
		cfg.Tables.DistributorOrders,
		cfg.Tables.DistributorInventory,
		cfg.Tables.CustomerOrders,
	} {
		if name == "" {
			continue
		}
		if seen[name] {
			return fmt.Errorf("nome de tabela duplicado na configuração: '%s'", name)
		}
		seen[name] = true
	}

	// O ARN do tópico, quando presente, deve ser de SNS
	if arn := cfg.SNS.TopicARN; arn != "" {
		if parts := strings.Split(arn, ":"); len(parts) != 6 || parts[2] != "sns" {
			return fmt.Errorf("sns.topic_arn inválido: '%s'", arn)
		}
	}

	return nil
}
