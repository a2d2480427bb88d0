// Package subscription содержит бизнес-логику работы с записями о подписках:
// отображение записей в строки таблицы и обратно, вычисление позиций строк
// и фильтрацию по владельцу.
package subscription

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cutoffnow/cutoff-backend/internal/models"
	"github.com/cutoffnow/cutoff-backend/internal/sheets"
)

// firstDataRow позиция первой строки данных на листе: строка 1 — заголовок.
const firstDataRow = 2

// Service реализует CRUD-операции над записями поверх табличного хранилища.
//
// Записи адресуются позицией строки на листе. Позиция, полученная из List,
// валидна только до ближайшего структурного удаления выше неё: между list и
// последующим update/remove по позиции конкурирующее удаление сдвигает строки,
// и мутация попадёт не в ту запись. Это известная особенность позиционной
// адресации, хранилище её не компенсирует.
type Service struct {
	store sheets.RowStore
	log   *slog.Logger
}

// New создает новый Service.
func New(store sheets.RowStore, log *slog.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// Add добавляет запись в конец таблицы. Дубликаты не отслеживаются,
// форматы дат не проверяются — значения уходят в таблицу как есть.
func (s *Service) Add(ctx context.Context, req models.DummyRecord) error {
	const op = "subscription.Add"

	rec := req.ToRecord()
	if err := s.store.AppendRow(ctx, rec.ToRow()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("subscription added", slog.String("owner", rec.OwnerEmail))
	return nil
}

// List возвращает записи владельца ownerEmail. Сравнение строгое: пустой
// ownerEmail находит только строки с пустой колонкой владельца.
func (s *Service) List(ctx context.Context, ownerEmail string) ([]models.Record, error) {
	const op = "subscription.List"

	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]models.Record, 0, len(all))
	for _, rec := range all {
		if rec.OwnerEmail == ownerEmail {
			result = append(result, rec)
		}
	}
	return result, nil
}

// ListAll возвращает все записи таблицы с вычисленными позициями строк.
// Позиция = индекс в данных + 2 (заголовок плюс 1-based нумерация листа).
func (s *Service) ListAll(ctx context.Context) ([]models.Record, error) {
	const op = "subscription.ListAll"

	rows, err := s.store.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records := make([]models.Record, 0, len(rows))
	for i, row := range rows {
		records = append(records, models.FromRow(row, i+firstDataRow))
	}
	return records, nil
}

// Update перезаписывает все семь колонок строки rowPos значениями из req.
// Если клиент не прислал userEmail, колонка владельца затирается пустой
// строкой и запись выпадает из выборок List по прежнему владельцу.
func (s *Service) Update(ctx context.Context, rowPos int, req models.UpdateRecord) error {
	const op = "subscription.Update"

	if rowPos < firstDataRow {
		return fmt.Errorf("%s: row %d is not a data row", op, rowPos)
	}
	if err := s.store.UpdateRow(ctx, rowPos, req.ToRecord().ToRow()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("subscription updated", slog.Int("row", rowPos))
	return nil
}

// Remove структурно удаляет строку rowPos: все последующие записи
// сдвигаются на позицию вверх.
func (s *Service) Remove(ctx context.Context, rowPos int) error {
	const op = "subscription.Remove"

	if rowPos < firstDataRow {
		return fmt.Errorf("%s: row %d is not a data row", op, rowPos)
	}
	if err := s.store.DeleteRow(ctx, rowPos); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("subscription removed", slog.Int("row", rowPos))
	return nil
}
