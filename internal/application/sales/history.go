package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// HistoryUseCase consulta y administra el libro de ventas persistido.
type HistoryUseCase struct {
	kv  ports.Store
	log *logger.Logger
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(kv ports.Store, log *logger.Logger) *HistoryUseCase {
	return &HistoryUseCase{kv: kv, log: log}
}

// List devuelve el historial completo, más reciente primero.
func (uc *HistoryUseCase) List() *dto.SalesListResponse {
	history := uc.load()
	items := make([]dto.SaleResponse, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		items = append(items, *toSaleResponse(history[i]))
	}
	return &dto.SalesListResponse{Items: items, Total: len(items)}
}

// Clear borra el historial en bloque (única forma de eliminar ventas).
func (uc *HistoryUseCase) Clear() error {
	return uc.kv.Save(StorageKey, []entity.Sale{})
}

// Report agrega ingresos, costo base y margen bruto sobre todo el historial.
// El porcentaje de margen es la única cifra con decimales del sistema.
func (uc *HistoryUseCase) Report() *dto.SalesReportResponse {
	report := &dto.SalesReportResponse{MarginPercent: decimal.Zero}
	for _, sale := range uc.load() {
		report.SalesCount++
		for _, it := range sale.Items {
			report.UnitsSold += it.Quantity
			report.Revenue += int64(it.Quantity) * it.UnitPrice
			report.CostBasis += int64(it.Quantity) * it.UnitCost
		}
	}
	report.GrossMargin = report.Revenue - report.CostBasis
	if report.Revenue > 0 {
		report.MarginPercent = decimal.NewFromInt(report.GrossMargin).
			Div(decimal.NewFromInt(report.Revenue)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return report
}

func (uc *HistoryUseCase) load() []entity.Sale {
	var history []entity.Sale
	if _, err := uc.kv.Load(StorageKey, &history); err != nil {
		return nil
	}
	return history
}
