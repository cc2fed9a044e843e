package meetings

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

// Repository файловое хранилище встреч
// Формат: плоский JSON список, полная перезапись файла при изменении.
type Repository struct {
	filePath string
	mu       sync.Mutex
}

// storedMeeting JSON модель встречи в файле
type storedMeeting struct {
	ID        string     `json:"id"`
	LeadID    *string    `json:"leadId,omitempty"`
	Title     string     `json:"title"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewRepository создает файловое хранилище встреч
func NewRepository(filePath string) *Repository {
	return &Repository{filePath: filePath}
}

// Create сохраняет новую встречу, присваивая ID
func (r *Repository) Create(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	meeting.ID = uuid.New().String()
	meeting.CreatedAt = now
	meeting.UpdatedAt = now

	list = append(list, fromDomainMeeting(meeting))

	if err := r.persist(list); err != nil {
		return nil, err
	}

	return meeting, nil
}

// List возвращает все встречи, отсортированные по времени начала
func (r *Repository) List(ctx context.Context) ([]*domain.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Meeting, len(list))
	for i, sm := range list {
		result[i] = toDomainMeeting(sm)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})

	return result, nil
}

// GetByID получает встречу по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, sm := range list {
		if sm.ID == id {
			return toDomainMeeting(sm), nil
		}
	}

	return nil, ErrMeetingNotFound
}

// Update перезаписывает существующую встречу
func (r *Repository) Update(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return nil, err
	}

	for i, sm := range list {
		if sm.ID == meeting.ID {
			meeting.CreatedAt = sm.CreatedAt
			meeting.UpdatedAt = time.Now()
			list[i] = fromDomainMeeting(meeting)

			if err := r.persist(list); err != nil {
				return nil, err
			}
			return meeting, nil
		}
	}

	return nil, ErrMeetingNotFound
}

// Delete удаляет встречу по ID
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}

	for i, sm := range list {
		if sm.ID == id {
			list = append(list[:i], list[i+1:]...)
			return r.persist(list)
		}
	}

	return ErrMeetingNotFound
}

// load читает файл хранилища целиком
// Отсутствующий файл - пустой список, не ошибка
func (r *Repository) load() ([]*storedMeeting, error) {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []*storedMeeting{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrReadFile, err)
	}

	if len(data) == 0 {
		return []*storedMeeting{}, nil
	}

	list := []*storedMeeting{}
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFile, err)
	}

	return list, nil
}

// persist перезаписывает файл хранилища целиком
func (r *Repository) persist(list []*storedMeeting) error {
	data, err := json.MarshalIndent(list, "", "  ")
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

// toDomainMeeting конвертирует JSON модель в domain
func toDomainMeeting(sm *storedMeeting) *domain.Meeting {
	return &domain.Meeting{
		ID:        sm.ID,
		LeadID:    sm.LeadID,
		Title:     sm.Title,
		StartTime: sm.StartTime,
		EndTime:   sm.EndTime,
		Notes:     sm.Notes,
		CreatedAt: sm.CreatedAt,
		UpdatedAt: sm.UpdatedAt,
	}
}

// fromDomainMeeting конвертирует domain модель в JSON
func fromDomainMeeting(m *domain.Meeting) *storedMeeting {
	return &storedMeeting{
		ID:        m.ID,
		LeadID:    m.LeadID,
		Title:     m.Title,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
