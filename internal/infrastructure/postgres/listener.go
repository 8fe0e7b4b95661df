package postgres

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Listener mantiene una conexión dedicada en LISTEN sobre el canal de cambios
// y reparte cada aviso a los suscriptores (el endpoint de eventos del HTTP).
// Si la conexión se cae, reintenta con backoff fijo hasta que se cierre el
// contexto.
type Listener struct {
	pool *pgxpool.Pool
	log  zerolog.Logger

	mu   sync.Mutex
	subs map[chan string]struct{}
}

// NewListener construye el listener.
func NewListener(pool *pgxpool.Pool, log zerolog.Logger) *Listener {
	return &Listener{pool: pool, log: log, subs: make(map[chan string]struct{})}
}

// Subscribe registra un suscriptor. El canal devuelto recibe el nombre de la
// tabla que cambió; si el suscriptor no drena a tiempo, el aviso se descarta
// (el cliente refetchea igual en el próximo aviso).
func (l *Listener) Subscribe() (ch chan string, cancel func()) {
	ch = make(chan string, 8)
	l.mu.Lock()
	l.subs[ch] = struct{}{}
	l.mu.Unlock()
	return ch, func() {
		l.mu.Lock()
		delete(l.subs, ch)
		l.mu.Unlock()
	}
}

// Run bloquea escuchando el canal hasta que ctx se cancele. Pensado para
// correr en su propia goroutine desde main.
func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil && ctx.Err() == nil {
			l.log.Warn().Err(err).Msg("conexión LISTEN caída; reintentando")
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(3 * time.Second):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `LISTEN `+changeChannel); err != nil {
		return err
	}
	l.log.Info().Str("channel", changeChannel).Msg("escuchando avisos de cambio")

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		l.broadcast(notification.Payload)
	}
}

func (l *Listener) broadcast(table string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ch := range l.subs {
		select {
		case ch <- table:
		default: // suscriptor lento: se descarta el aviso
		}
	}
}
