package state

import (
	"sync"
)

// Manager хранит незавершённые диалоги по идентификатору чата.
// Состояние живёт только в памяти процесса: рестарт или второй
// инстанс его не увидят.
type Manager struct {
	mu      sync.RWMutex
	pending map[int64]Pending // chatID -> Pending
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		pending: make(map[int64]Pending),
	}
}

// Get возвращает незавершённую операцию чата, если она есть
func (m *Manager) Get(chatID int64) (Pending, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.pending[chatID]
	return p, ok
}

// Set заменяет незавершённую операцию чата.
// ActionNone эквивалентен Clear.
func (m *Manager) Set(chatID int64, p Pending) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.Action == ActionNone {
		delete(m.pending, chatID)
		return
	}
	m.pending[chatID] = p
}

// Clear завершает диалог чата
func (m *Manager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.pending, chatID)
}
