// Package sheets реализует адаптер табличного хранилища поверх Google Sheets API.
//
// Хранилище — один лист с фиксированным диапазоном A:G: первая строка всегда
// заголовок, данные начинаются со строки 2. Строки адресуются 1-based позицией
// на листе; структурное удаление сдвигает все последующие строки вверх,
// поэтому позиция не является стабильным идентификатором.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/cutoffnow/cutoff-backend/internal/config"
)

// RowStore узкий интерфейс табличного хранилища, с которым работает бизнес-логика.
type RowStore interface {
	// ListRows возвращает все строки данных (без заголовка) в порядке листа.
	ListRows(ctx context.Context) ([][]string, error)
	// AppendRow добавляет строку в конец таблицы.
	AppendRow(ctx context.Context, row []string) error
	// UpdateRow перезаписывает диапазон A:G строки с данной позицией.
	UpdateRow(ctx context.Context, rowPos int, row []string) error
	// DeleteRow структурно удаляет строку с данной позицией,
	// последующие строки сдвигаются вверх на единицу.
	DeleteRow(ctx context.Context, rowPos int) error
}

// Client клиент Google Sheets, привязанный к одному листу одной таблицы.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	sheetName     string
	sheetID       int64
}

// NewClient создает клиента по сервисному ключу из конфига.
func NewClient(ctx context.Context, cfg config.Sheets) (*Client, error) {
	const op = "sheets.NewClient"

	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
		sheetID:       cfg.SheetID,
	}, nil
}

// readRange диапазон чтения и добавления: весь лист по колонкам A..G.
func (c *Client) readRange() string {
	return c.sheetName + "!A:G"
}

// rowRange диапазон одной строки данных: A<row>:G<row>.
func (c *Client) rowRange(rowPos int) string {
	return fmt.Sprintf("%s!A%d:G%d", c.sheetName, rowPos, rowPos)
}

// ListRows возвращает строки данных листа, заголовок отбрасывается.
func (c *Client) ListRows(ctx context.Context) ([][]string, error) {
	const op = "sheets.ListRows"

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange()).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(resp.Values) < 2 {
		return nil, nil
	}

	rows := make([][]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AppendRow добавляет строку в конец таблицы. Позицией вставки управляет
// сам API: строка всегда оказывается после последней заполненной.
func (c *Client) AppendRow(ctx context.Context, row []string) error {
	const op = "sheets.AppendRow"

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, c.readRange(), &sheetsapi.ValueRange{
		Values: [][]any{toCells(row)},
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateRow перезаписывает семь колонок строки rowPos.
func (c *Client) UpdateRow(ctx context.Context, rowPos int, row []string) error {
	const op = "sheets.UpdateRow"

	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, c.rowRange(rowPos), &sheetsapi.ValueRange{
		Values: [][]any{toCells(row)},
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteRow удаляет строку rowPos через DeleteDimension. Индексы диапазона
// у API 0-based, позиция строки на листе 1-based.
func (c *Client) DeleteRow(ctx context.Context, rowPos int) error {
	const op = "sheets.DeleteRow"

	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			DeleteDimension: &sheetsapi.DeleteDimensionRequest{
				Range: &sheetsapi.DimensionRange{
					SheetId:    c.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowPos - 1),
					EndIndex:   int64(rowPos),
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func toCells(row []string) []any {
	cells := make([]any, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}
