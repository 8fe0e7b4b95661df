package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/jhoicas/gestor-api/internal/application/ports"
)

var _ ports.ChangeNotifier = (*Notifier)(nil)

// changeChannel es el canal LISTEN/NOTIFY por el que viajan los avisos de
// cambio. El payload es el nombre de la tabla que cambió; los clientes
// refetchean el snapshot completo, no hay delta.
const changeChannel = "data_changes"

// Notifier publica avisos de cambio vía pg_notify. Un fallo al notificar se
// loguea y se traga: el aviso es best-effort, la mutación ya está confirmada.
type Notifier struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewNotifier construye el notificador.
func NewNotifier(pool *pgxpool.Pool, log zerolog.Logger) *Notifier {
	return &Notifier{pool: pool, log: log}
}

// Notify publica el nombre de la tabla que cambió.
func (n *Notifier) Notify(ctx context.Context, table string) {
	_, err := n.pool.Exec(ctx, `SELECT pg_notify($1, $2)`, changeChannel, table)
	if err != nil {
		n.log.Warn().Err(err).Str("table", table).Msg("no se pudo publicar aviso de cambio")
	}
}
