package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/valleclinic/clinic-api/internal/httperr"
)

var businessMessages = map[string]string{
	"missing_client":            "El cliente es obligatorio.",
	"missing_time":              "La hora de la cita es obligatoria.",
	"missing_services":          "Se requiere al menos un servicio.",
	"missing_reference":         "Faltan datos requeridos.",
	"invalid_date":              "La fecha debe ser una fecha válida.",
	"invalid_status":            "Estado inválido.",
	"invalid_status_transition": "El estado no permite ese cambio.",
	"invalid_quantity":          "La cantidad usada debe ser al menos 1.",
	"duplicate_link":            "La relación ya existe.",
	"appointment_not_found":     "Cita no encontrada.",
	"client_not_found":          "Cliente no encontrado.",
	"service_not_found":         "Servicio no encontrado.",
	"supply_not_found":          "Insumo no encontrado.",
	"link_not_found":            "No se encontró la relación.",
}

var businessNotFound = map[string]bool{
	"appointment_not_found": true,
	"client_not_found":      true,
	"service_not_found":     true,
	"supply_not_found":      true,
	"link_not_found":        true,
}

// writeUsecaseError maps business error codes onto the HTTP taxonomy:
// validation → 400, missing references → 404, anything else → 500.
func writeUsecaseError(c *gin.Context, err error, fallback string) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, fallback, "Error en el servidor.")
		return
	}

	msg, ok := businessMessages[code]
	if !ok {
		msg = "Solicitud inválida."
	}

	if businessNotFound[code] {
		httperr.NotFound(c, code, msg)
		return
	}
	httperr.BadRequest(c, code, msg)
}
