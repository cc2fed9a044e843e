package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

// Repository файловое хранилище лидов
// Формат: один JSON объект, ключ - PlaceID бизнеса в справочнике.
// Запись - полная перезапись файла, без блокировок между процессами (single-writer).
type Repository struct {
	filePath string
	mu       sync.Mutex
}

// storedLead JSON модель лида в файле
type storedLead struct {
	ID           string     `json:"id"`
	PlaceID      string     `json:"placeId"`
	Name         string     `json:"name"`
	Address      string     `json:"address,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Website      *string    `json:"website,omitempty"`
	Category     string     `json:"category,omitempty"`
	City         string     `json:"city,omitempty"`
	Rating       *float64   `json:"rating,omitempty"`
	CallStatus   string     `json:"callStatus"`
	CallAttempts int        `json:"callAttempts"`
	LastCallID   *string    `json:"lastCallId,omitempty"`
	LastCalledAt *time.Time `json:"lastCalledAt,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NewRepository создает файловое хранилище лидов
func NewRepository(filePath string) *Repository {
	return &Repository{filePath: filePath}
}

// List возвращает лидов с фильтрацией по городу и статусу обзвона
// Результат отсортирован по дате создания (новые первыми)
func (r *Repository) List(ctx context.Context, filter domain.LeadsFilter) ([]*domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, err := r.load()
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Lead, 0, len(store))
	for _, sl := range store {
		lead := toDomainLead(sl)
		if filter.City != nil && lead.City != *filter.City {
			continue
		}
		if filter.Status != nil && lead.CallStatus != *filter.Status {
			continue
		}
		result = append(result, lead)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// GetByID получает лида по внутреннему ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, sl := range store {
		if sl.ID == id {
			return toDomainLead(sl), nil
		}
	}

	return nil, ErrLeadNotFound
}

// GetByPlaceID получает лида по PlaceID справочника
func (r *Repository) GetByPlaceID(ctx context.Context, placeID string) (*domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, err := r.load()
	if err != nil {
		return nil, err
	}

	sl, ok := store[placeID]
	if !ok {
		return nil, ErrLeadNotFound
	}

	return toDomainLead(sl), nil
}

// Upsert сохраняет лида по PlaceID
// Для нового лида генерирует ID и выставляет CreatedAt.
// Для существующего сохраняет ID, CreatedAt и состояние обзвона
// (статус, счётчик попыток, последний звонок, заметки).
func (r *Repository) Upsert(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, err := r.load()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if existing, ok := store[lead.PlaceID]; ok {
		lead.ID = existing.ID
		lead.CreatedAt = existing.CreatedAt
		lead.CallStatus = domain.CallStatus(existing.CallStatus)
		lead.CallAttempts = existing.CallAttempts
		lead.LastCallID = existing.LastCallID
		lead.LastCalledAt = existing.LastCalledAt
		lead.Notes = existing.Notes
	} else {
		lead.ID = uuid.New().String()
		lead.CreatedAt = now
		if lead.CallStatus == "" {
			lead.CallStatus = domain.StatusNotCalled
		}
	}
	lead.UpdatedAt = now

	store[lead.PlaceID] = fromDomainLead(lead)

	if err := r.persist(store); err != nil {
		return nil, err
	}

	return lead, nil
}

// Update перезаписывает существующего лида (поиск по внутреннему ID)
func (r *Repository) Update(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, err := r.load()
	if err != nil {
		return nil, err
	}

	found := false
	for placeID, sl := range store {
		if sl.ID == lead.ID {
			lead.PlaceID = sl.PlaceID
			lead.CreatedAt = sl.CreatedAt
			lead.UpdatedAt = time.Now()
			store[placeID] = fromDomainLead(lead)
			found = true
			break
		}
	}

	if !found {
		return nil, ErrLeadNotFound
	}

	if err := r.persist(store); err != nil {
		return nil, err
	}

	return lead, nil
}

// Delete удаляет лида по внутреннему ID
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, err := r.load()
	if err != nil {
		return err
	}

	for placeID, sl := range store {
		if sl.ID == id {
			delete(store, placeID)
			return r.persist(store)
		}
	}

	return ErrLeadNotFound
}

// Count возвращает количество лидов в хранилище
func (r *Repository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, err := r.load()
	if err != nil {
		return 0, err
	}

	return len(store), nil
}

// load читает файл хранилища целиком
// Отсутствующий файл - пустое хранилище, не ошибка
func (r *Repository) load() (map[string]*storedLead, error) {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*storedLead{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrReadFile, err)
	}

	if len(data) == 0 {
		return map[string]*storedLead{}, nil
	}

	store := map[string]*storedLead{}
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFile, err)
	}

	return store, nil
}

// persist перезаписывает файл хранилища целиком
func (r *Repository) persist(store map[string]*storedLead) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrWriteFile, err)
	}

	if dir := filepath.Dir(r.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: mkdir: %v", ErrWriteFile, err)
		}
	}

	if err := os.WriteFile(r.filePath, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}

	return nil
}

// toDomainLead конвертирует JSON модель в domain
func toDomainLead(sl *storedLead) *domain.Lead {
	return &domain.Lead{
		ID:           sl.ID,
		PlaceID:      sl.PlaceID,
		Name:         sl.Name,
		Address:      sl.Address,
		Phone:        sl.Phone,
		Website:      sl.Website,
		Category:     sl.Category,
		City:         sl.City,
		Rating:       sl.Rating,
		CallStatus:   domain.CallStatus(sl.CallStatus),
		CallAttempts: sl.CallAttempts,
		LastCallID:   sl.LastCallID,
		LastCalledAt: sl.LastCalledAt,
		Notes:        sl.Notes,
		CreatedAt:    sl.CreatedAt,
		UpdatedAt:    sl.UpdatedAt,
	}
}

// fromDomainLead конвертирует domain модель в JSON
func fromDomainLead(l *domain.Lead) *storedLead {
	return &storedLead{
		ID:           l.ID,
		PlaceID:      l.PlaceID,
		Name:         l.Name,
		Address:      l.Address,
		Phone:        l.Phone,
		Website:      l.Website,
		Category:     l.Category,
		City:         l.City,
		Rating:       l.Rating,
		CallStatus:   string(l.CallStatus),
		CallAttempts: l.CallAttempts,
		LastCallID:   l.LastCallID,
		LastCalledAt: l.LastCalledAt,
		Notes:        l.Notes,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
