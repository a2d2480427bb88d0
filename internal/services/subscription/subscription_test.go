package subscription

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutoffnow/cutoff-backend/internal/models"
)

// fakeStore хранит строки в памяти и воспроизводит семантику листа:
// append в конец, update по позиции, структурное удаление со сдвигом.
type fakeStore struct {
	rows [][]string
	err  error
}

func (f *fakeStore) ListRows(_ context.Context) ([][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]string, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeStore) AppendRow(_ context.Context, row []string) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeStore) UpdateRow(_ context.Context, rowPos int, row []string) error {
	if f.err != nil {
		return f.err
	}
	f.rows[rowPos-2] = row
	return nil
}

func (f *fakeStore) DeleteRow(_ context.Context, rowPos int) error {
	if f.err != nil {
		return f.err
	}
	i := rowPos - 2
	f.rows = append(f.rows[:i], f.rows[i+1:]...)
	return nil
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func strPtr(s string) *string { return &s }

func dummy(name, owner string) models.DummyRecord {
	return models.DummyRecord{
		Name:         strPtr(name),
		Platform:     strPtr("Netflix"),
		StartDate:    strPtr("2025-01-01"),
		EndDate:      strPtr("2025-12-01"),
		ContactEmail: strPtr("contact@x.com"),
		Mobile:       strPtr("123"),
		OwnerEmail:   strPtr(owner),
	}
}

func TestService_AddThenList(t *testing.T) {
	store := &fakeStore{}
	svc := New(store, newNoopLogger())
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, dummy("Кино", "a@x.com")))

	recs, err := svc.List(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, 2, rec.Row)
	assert.Equal(t, "Кино", rec.Name)
	assert.Equal(t, "Netflix", rec.Platform)
	assert.Equal(t, "2025-01-01", rec.StartDate)
	assert.Equal(t, "2025-12-01", rec.EndDate)
	assert.Equal(t, "contact@x.com", rec.ContactEmail)
	assert.Equal(t, "123", rec.Mobile)
	assert.Equal(t, "a@x.com", rec.OwnerEmail)
}

func TestService_AddEmptyFieldsExceptOwner(t *testing.T) {
	store := &fakeStore{}
	svc := New(store, newNoopLogger())
	ctx := context.Background()

	req := models.DummyRecord{
		Name:         strPtr(""),
		Platform:     strPtr(""),
		StartDate:    strPtr(""),
		EndDate:      strPtr(""),
		ContactEmail: strPtr(""),
		Mobile:       strPtr(""),
		OwnerEmail:   strPtr("a@x.com"),
	}
	require.NoError(t, svc.Add(ctx, req))

	recs, err := svc.List(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "", recs[0].Name)
	assert.Equal(t, "a@x.com", recs[0].OwnerEmail)
}

func TestService_ListFiltersByOwner(t *testing.T) {
	store := &fakeStore{rows: [][]string{
		{"A", "p", "s", "e", "c", "m", "a@x.com"},
		{"B", "p", "s", "e", "c", "m", "b@x.com"},
		{"C", "p", "s", "e", "c", "m", "a@x.com"},
	}}
	svc := New(store, newNoopLogger())
	ctx := context.Background()

	recs, err := svc.List(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "A", recs[0].Name)
	assert.Equal(t, 2, recs[0].Row)
	assert.Equal(t, "C", recs[1].Name)
	assert.Equal(t, 4, recs[1].Row)

	// владелец без записей
	recs, err = svc.List(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Empty(t, recs)

	// пустой владелец находит только строки с пустой колонкой владельца
	recs, err = svc.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestService_ListPadsShortRows(t *testing.T) {
	store := &fakeStore{rows: [][]string{
		{"A", "p"},
	}}
	svc := New(store, newNoopLogger())

	recs, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "A", recs[0].Name)
	assert.Equal(t, "", recs[0].EndDate)
	assert.Equal(t, "", recs[0].OwnerEmail)
}

func TestService_RemoveShiftsPositions(t *testing.T) {
	store := &fakeStore{rows: [][]string{
		{"A", "p", "s", "e", "c", "m", "a@x.com"},
		{"B", "p", "s", "e", "c", "m", "a@x.com"},
		{"C", "p", "s", "e", "c", "m", "a@x.com"},
	}}
	svc := New(store, newNoopLogger())
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, 2))

	recs, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	// строка с позиции 3 сдвинулась на 2, с позиции 4 — на 3
	assert.Equal(t, "B", recs[0].Name)
	assert.Equal(t, 2, recs[0].Row)
	assert.Equal(t, "C", recs[1].Name)
	assert.Equal(t, 3, recs[1].Row)
}

func TestService_UpdateOmittedOwnerTruncates(t *testing.T) {
	store := &fakeStore{rows: [][]string{
		{"A", "p", "s", "e", "c", "m", "a@x.com"},
	}}
	svc := New(store, newNoopLogger())
	ctx := context.Background()

	req := models.UpdateRecord{
		Name:         strPtr("A2"),
		Platform:     strPtr("p2"),
		StartDate:    strPtr("s2"),
		EndDate:      strPtr("e2"),
		ContactEmail: strPtr("c2"),
		Mobile:       strPtr("m2"),
		// OwnerEmail не прислан
	}
	require.NoError(t, svc.Update(ctx, 2, req))

	// запись больше не видна прежнему владельцу
	recs, err := svc.List(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, recs)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "A2", all[0].Name)
	assert.Equal(t, "", all[0].OwnerEmail)
}

func TestService_UpdateWithOwnerKeepsRecordReachable(t *testing.T) {
	store := &fakeStore{rows: [][]string{
		{"A", "p", "s", "e", "c", "m", "a@x.com"},
	}}
	svc := New(store, newNoopLogger())
	ctx := context.Background()

	req := models.UpdateRecord{
		Name:         strPtr("A2"),
		Platform:     strPtr("p2"),
		StartDate:    strPtr("s2"),
		EndDate:      strPtr("e2"),
		ContactEmail: strPtr("c2"),
		Mobile:       strPtr("m2"),
		OwnerEmail:   strPtr("a@x.com"),
	}
	require.NoError(t, svc.Update(ctx, 2, req))

	recs, err := svc.List(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "A2", recs[0].Name)
}

func TestService_RejectsHeaderRow(t *testing.T) {
	svc := New(&fakeStore{}, newNoopLogger())
	ctx := context.Background()

	assert.Error(t, svc.Remove(ctx, 1))
	assert.Error(t, svc.Update(ctx, 0, models.UpdateRecord{}))
}

func TestService_StoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("quota exceeded")}
	svc := New(store, newNoopLogger())
	ctx := context.Background()

	_, err := svc.List(ctx, "a@x.com")
	assert.Error(t, err)

	assert.Error(t, svc.Add(ctx, dummy("A", "a@x.com")))
	assert.Error(t, svc.Remove(ctx, 2))
}
