package usecase

import (
	"fmt"
	"io"

	"github.com/DRSN-tech/cosmetic-product/pkg/e"
	"github.com/DRSN-tech/cosmetic-product/pkg/logger"
)

// ShowcaseDiscountPercent — скидка, применяемая к консилеру в демонстрации
const ShowcaseDiscountPercent = 15

// ShowcaseUseCase выполняет демонстрационный сценарий над товарами каталога.
type ShowcaseUseCase struct {
	catalog     *Catalog
	out         io.Writer
	currentDate string
	logger      logger.Logger
}

func NewShowcaseUC(catalog *Catalog, out io.Writer, currentDate string, logger logger.Logger) *ShowcaseUseCase {
	catalog.LipGloss.WithOutput(out)
	catalog.EyeShadow.WithOutput(out)
	catalog.Concealer.WithOutput(out)

	return &ShowcaseUseCase{
		catalog:     catalog,
		out:         out,
		currentDate: currentDate,
		logger:      logger,
	}
}

// Run печатает краткое и полное описание, применяет скидку, помечает товар
// использованным и проверяет срок годности.
func (s *ShowcaseUseCase) Run() error {
	const op = "ShowcaseUseCase.Run"

	if _, err := fmt.Fprintln(s.out, s.catalog.LipGloss); err != nil {
		return e.Wrap(op, err)
	}

	if _, err := fmt.Fprintln(s.out, s.catalog.EyeShadow.DescribeFull()); err != nil {
		return e.Wrap(op, err)
	}

	// Неверная скидка не прерывает сценарий
	if err := s.catalog.Concealer.ApplyDiscount(ShowcaseDiscountPercent); err != nil {
		s.logger.Warnf("discount skipped for %s: %v", s.catalog.Concealer.ProductName, e.Wrap(op, err))
	}

	s.catalog.LipGloss.MarkAsUsed()

	expired := s.catalog.EyeShadow.IsExpired(s.currentDate)
	s.logger.Debugf("expiry check: expiry=%s current_date=%s expired=%t", s.catalog.EyeShadow.Expiry, s.currentDate, expired)
	if _, err := fmt.Fprintln(s.out, "Expired:", expired); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
