package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo entrega consecutivos por serie con un upsert atómico contra
// la tabla de contadores. Llamado dentro de la transacción que emite el
// comprobante, el número queda reservado o liberado junto con la venta.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el siguiente valor de la serie.
func (r *SequenceRepo) Next(series string) (int64, error) {
	query := `
		INSERT INTO comprobante_sequences (series, value)
		VALUES ($1, 1)
		ON CONFLICT (series) DO UPDATE SET value = comprobante_sequences.value + 1
		RETURNING value`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, series).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence (%s): %w", series, err)
	}
	return n, nil
}
