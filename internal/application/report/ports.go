package report

import "context"

// ReportRenderer genera el documento del reporte diario (implementado en infrastructure/pdf).
// El renderer es dueño de las etiquetas visibles, del truncado de textos largos y del
// reemplazo de caracteres que la fuente no puede representar.
type ReportRenderer interface {
	RenderDailyReport(ctx context.Context, data *Data) ([]byte, error)
}
