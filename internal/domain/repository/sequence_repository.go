package repository

// SequenceRepository entrega consecutivos por serie de comprobante de forma
// atómica contra la base. Un sufijo derivado del reloj puede colisionar bajo
// llamadas rápidas sucesivas; el contador persistido no.
type SequenceRepository interface {
	// Next incrementa y devuelve el siguiente valor de la serie.
	Next(series string) (int64, error)
}
