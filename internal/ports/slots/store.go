package slots

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("slot not found")

// Store guarda blobs completos bajo un nombre. Put reemplaza el contenido
// entero de forma atómica: una lectura posterior ve el valor anterior o el
// nuevo, nunca una mezcla.
type Store interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, data []byte) error
}
