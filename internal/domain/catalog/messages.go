package catalog

// Mensajes visibles al usuario. Son parte del contrato del API: los clientes
// existentes los muestran tal cual, no traducir ni reformatear.
const (
	MsgRecordExists    = "Record already exists."
	MsgRecordNotExists = "Record does not exist."
	MsgRecordInUse     = "This record is currently in use."
	MsgRecordInvalid   = "Record is not valid."
	MsgCategoryMissing = "Category value does not exists."
	MsgErrorProcessing = "An error was encountered while processing the request."

	// MsgRecordDeleted se emite cuando el registro desapareció entre la
	// lectura del cliente y su intento de guardar.
	MsgRecordDeleted = "Unable to save changes. The record was deleted by another user."

	// MsgEditCanceled cierra todo reporte de conflicto de versión.
	MsgEditCanceled = "The record you attempted to edit was modified by another user " +
		"after you got the original value. The edit operation was canceled and the " +
		"current values in the database have been displayed. If you still want to " +
		"edit this record, click the Save button again."
)
