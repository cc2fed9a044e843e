package leads

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	"github.com/m04kA/SMC-OutreachService/pkg/ptr"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(filepath.Join(t.TempDir(), "leads.json"))
}

func sampleLead(placeID, name string) *domain.Lead {
	return &domain.Lead{
		PlaceID:  placeID,
		Name:     name,
		Address:  "ул. Ленина, 1",
		Phone:    ptr.Ptr("+79990001122"),
		Category: "restaurant",
		City:     "Казань",
	}
}

func TestRepository_UpsertAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Upsert(ctx, sampleLead("place-1", "Кафе Весна"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusNotCalled, created.CallStatus)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Кафе Весна", byID.Name)
	require.NotNil(t, byID.Phone)
	assert.Equal(t, "+79990001122", *byID.Phone)

	byPlace, err := repo.GetByPlaceID(ctx, "place-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byPlace.ID)
}

func TestRepository_UpsertPreservesCallState(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Upsert(ctx, sampleLead("place-1", "Кафе Весна"))
	require.NoError(t, err)

	// Продвигаем состояние обзвона
	created.CallStatus = domain.StatusCompleted
	created.CallAttempts = 2
	created.LastCallID = ptr.Ptr("call-42")
	created.Notes = ptr.Ptr("перезвонить на следующей неделе")
	_, err = repo.Update(ctx, created)
	require.NoError(t, err)

	// Повторное сканирование приносит тот же бизнес со свежими данными
	rescanned := sampleLead("place-1", "Кафе Весна (обновлено)")
	result, err := repo.Upsert(ctx, rescanned)
	require.NoError(t, err)

	assert.Equal(t, created.ID, result.ID)
	assert.Equal(t, "Кафе Весна (обновлено)", result.Name)
	// Состояние обзвона не затирается
	assert.Equal(t, domain.StatusCompleted, result.CallStatus)
	assert.Equal(t, 2, result.CallAttempts)
	require.NotNil(t, result.LastCallID)
	assert.Equal(t, "call-42", *result.LastCallID)
	require.NotNil(t, result.Notes)
	assert.Equal(t, "перезвонить на следующей неделе", *result.Notes)
}

func TestRepository_ListFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, sampleLead("place-1", "Кафе Весна"))
	require.NoError(t, err)

	second := sampleLead("place-2", "Барбершоп Стиль")
	second.City = "Москва"
	_, err = repo.Upsert(ctx, second)
	require.NoError(t, err)

	first.CallStatus = domain.StatusNotInterested
	_, err = repo.Update(ctx, first)
	require.NoError(t, err)

	t.Run("no filter returns all", func(t *testing.T) {
		leads, err := repo.List(ctx, domain.LeadsFilter{})
		require.NoError(t, err)
		assert.Len(t, leads, 2)
	})

	t.Run("filter by city", func(t *testing.T) {
		leads, err := repo.List(ctx, domain.LeadsFilter{City: ptr.Ptr("Москва")})
		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, "Барбершоп Стиль", leads[0].Name)
	})

	t.Run("filter by status", func(t *testing.T) {
		status := domain.StatusNotInterested
		leads, err := repo.List(ctx, domain.LeadsFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, "Кафе Весна", leads[0].Name)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Upsert(ctx, sampleLead("place-1", "Кафе Весна"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrLeadNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrLeadNotFound)
}

func TestRepository_UpdateNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Update(context.Background(), &domain.Lead{ID: "missing"})
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestRepository_Count(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.Upsert(ctx, sampleLead("place-1", "Кафе Весна"))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, sampleLead("place-2", "Барбершоп Стиль"))
	require.NoError(t, err)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRepository_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.json")
	ctx := context.Background()

	created, err := NewRepository(path).Upsert(ctx, sampleLead("place-1", "Кафе Весна"))
	require.NoError(t, err)

	// Новый инстанс поверх того же файла видит данные
	reopened := NewRepository(path)
	lead, err := reopened.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Кафе Весна", lead.Name)
	assert.WithinDuration(t, created.CreatedAt, lead.CreatedAt, time.Second)
}
