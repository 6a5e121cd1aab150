package catalog

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ConflictReport es el resultado de un choque de concurrencia optimista:
// un mensaje por cada campo cuyo valor difiere entre lo guardado y lo
// enviado, más el mensaje fijo de cierre. CurrentVersion trae el token
// vigente para que un reenvío con los datos refrescados sea aceptado.
type ConflictReport struct {
	Messages       []string
	CurrentVersion string
	Deleted        bool
}

// Tablas de campos por entidad, evaluadas en orden de declaración para que
// la salida sea determinista. Id y Version quedan fuera de la comparación.

type categoryField struct {
	display string
	value   func(c *entity.Category) string
}

var categoryFields = []categoryField{
	{"Name", func(c *entity.Category) string { return c.Name }},
}

type productField struct {
	display string
	value   func(p *entity.Product) string
}

var productFields = []productField{
	{"Name", func(p *entity.Product) string { return p.Name }},
	{"Description", func(p *entity.Product) string { return p.Description }},
	{"Image", func(p *entity.Product) string { return p.ImageRef }},
	{"Category", func(p *entity.Product) string { return strconv.FormatInt(p.CategoryID, 10) }},
}

// CompareCategories arma el reporte de conflicto para Category. current es el
// estado autoritativo leído junto con el conflicto; nil significa que otro
// usuario borró el registro y no se intenta ningún diff.
func CompareCategories(current, submitted *entity.Category) *ConflictReport {
	if current == nil {
		return deletedReport()
	}
	report := &ConflictReport{CurrentVersion: current.Version}
	for _, f := range categoryFields {
		if f.value(current) != f.value(submitted) {
			report.Messages = append(report.Messages, fieldMessage(f.display, f.value(current)))
		}
	}
	report.Messages = append(report.Messages, MsgEditCanceled)
	return report
}

// CompareProducts arma el reporte de conflicto para Product.
func CompareProducts(current, submitted *entity.Product) *ConflictReport {
	if current == nil {
		return deletedReport()
	}
	report := &ConflictReport{CurrentVersion: current.Version}
	for _, f := range productFields {
		if f.value(current) != f.value(submitted) {
			report.Messages = append(report.Messages, fieldMessage(f.display, f.value(current)))
		}
	}
	report.Messages = append(report.Messages, MsgEditCanceled)
	return report
}

func deletedReport() *ConflictReport {
	return &ConflictReport{
		Messages: []string{MsgRecordDeleted},
		Deleted:  true,
	}
}

func fieldMessage(display, current string) string {
	return fmt.Sprintf("%s current value: %s", display, current)
}
