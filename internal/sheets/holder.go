package sheets

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrNotReady возвращается, пока клиент хранилища ещё не инициализирован.
var ErrNotReady = errors.New("sheets client is not ready")

// Holder процессный держатель клиента хранилища. Инициализация клиента
// идёт в фоне при старте приложения, и до её завершения все обращения
// к хранилищу получают ErrNotReady вместо паники на нулевом клиенте.
//
// Holder сам реализует RowStore, делегируя вызовы установленному клиенту.
type Holder struct {
	store atomic.Pointer[Client]
}

// NewHolder создает пустой Holder в состоянии "не готов".
func NewHolder() *Holder {
	return &Holder{}
}

// Set устанавливает готовый клиент.
func (h *Holder) Set(c *Client) {
	h.store.Store(c)
}

// Ready сообщает, установлен ли клиент.
func (h *Holder) Ready() bool {
	return h.store.Load() != nil
}

func (h *Holder) get() (RowStore, error) {
	c := h.store.Load()
	if c == nil {
		return nil, ErrNotReady
	}
	return c, nil
}

func (h *Holder) ListRows(ctx context.Context) ([][]string, error) {
	c, err := h.get()
	if err != nil {
		return nil, err
	}
	return c.ListRows(ctx)
}

func (h *Holder) AppendRow(ctx context.Context, row []string) error {
	c, err := h.get()
	if err != nil {
		return err
	}
	return c.AppendRow(ctx, row)
}

func (h *Holder) UpdateRow(ctx context.Context, rowPos int, row []string) error {
	c, err := h.get()
	if err != nil {
		return err
	}
	return c.UpdateRow(ctx, rowPos, row)
}

func (h *Holder) DeleteRow(ctx context.Context, rowPos int) error {
	c, err := h.get()
	if err != nil {
		return err
	}
	return c.DeleteRow(ctx, rowPos)
}
