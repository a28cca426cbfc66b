package e

import "fmt"

var (
	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrInvalidDate          = fmt.Errorf("date must be in YYYY-MM-DD format")

	// Ошибки товара
	ErrInvalidDiscount = fmt.Errorf("discount percent must be in range 0-100")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
