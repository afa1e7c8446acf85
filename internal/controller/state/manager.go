package state

import (
	"sync"
)

// Manager управляет сессиями пользователей
// Сессии ключуются по Telegram ID, поэтому диалоги разных
// пользователей не мешают друг другу.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session // telegramID -> Session
}

// NewManager создаёт новый менеджер сессий
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
	}
}

// Step возвращает текущий шаг диалога пользователя
func (m *Manager) Step(telegramID int64) Step {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if sess, exists := m.sessions[telegramID]; exists {
		return sess.Step
	}
	return StepNone
}

// Get возвращает копию сессии пользователя
func (m *Manager) Get(telegramID int64) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if sess, exists := m.sessions[telegramID]; exists {
		// Возвращаем копию, чтобы избежать race condition
		return *sess, true
	}
	return Session{}, false
}

// Begin сбрасывает сессию пользователя и открывает диалог с первого шага
func (m *Manager) Begin(telegramID int64, step Step) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[telegramID] = &Session{Step: step}
}

// SetStep переводит диалог на следующий шаг
func (m *Manager) SetStep(telegramID int64, step Step) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, exists := m.sessions[telegramID]; exists {
		sess.Step = step
		return
	}
	m.sessions[telegramID] = &Session{Step: step}
}

// Update изменяет сессию пользователя под блокировкой.
// Если сессии нет, она создаётся пустой.
func (m *Manager) Update(telegramID int64, fn func(*Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, exists := m.sessions[telegramID]
	if !exists {
		sess = &Session{}
		m.sessions[telegramID] = sess
	}
	fn(sess)
}

// Clear завершает диалог и удаляет сессию
func (m *Manager) Clear(telegramID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, telegramID)
}
