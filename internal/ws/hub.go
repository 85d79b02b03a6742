package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/adilkhanov/hrdoc-backend/internal/logger"
	"github.com/adilkhanov/hrdoc-backend/internal/models"
)

// Hub управляет всеми WebSocket подключениями операторов.
type Hub struct {
	mu         sync.RWMutex
	clients    map[uuid.UUID]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan message
	ctx        context.Context
}

type message struct {
	// userID == uuid.Nil означает рассылку всем подключённым операторам.
	userID  uuid.UUID
	payload []byte
}

// DocumentEvent полезная нагрузка события изменения документа.
type DocumentEvent struct {
	DocumentID uuid.UUID             `json:"document_id"`
	Kind       models.DocumentKind   `json:"kind"`
	Status     models.DocumentStatus `json:"status"`
}

// NewHub создаёт новый хаб.
func NewHub(ctx context.Context) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan message, 32),
		ctx:        ctx,
	}
}

// Run запускает главный цикл хаба.
func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case msg := <-h.broadcast:
			h.send(msg.userID, msg.payload)
		}
	}
}

// Register добавляет клиента.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister удаляет клиента.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// BroadcastDocumentStatus рассылает всем операторам событие о смене статуса
// документа. Получив событие, клиент перечитывает документ и его список
// действий: локальный список совещательный и мог устареть.
func (h *Hub) BroadcastDocumentStatus(doc *models.WorkflowDocument) error {
	return h.emit(uuid.Nil, "document.status_changed", DocumentEvent{
		DocumentID: doc.ID,
		Kind:       doc.Kind,
		Status:     doc.Status,
	})
}

// SendToOperator отправляет событие конкретному оператору.
func (h *Hub) SendToOperator(userID uuid.UUID, event string, data any) error {
	return h.emit(userID, event, data)
}

func (h *Hub) emit(userID uuid.UUID, event string, data any) error {
	// Поле "type" содержит имя события, "data" — полезную нагрузку.
	payload := map[string]any{
		"type": event,
		"data": data,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ws: не удалось сериализовать сообщение: %w", err)
	}

	select {
	case h.broadcast <- message{userID: userID, payload: raw}:
	case <-h.ctx.Done():
	}
	return nil
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]struct{})
	}
	h.clients[client.userID][client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.userID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.clients, client.userID)
		}
	}
}

func (h *Hub) send(userID uuid.UUID, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	deliver := func(client *Client) {
		select {
		case client.send <- payload:
		default:
			// Переполненный буфер: клиент не успевает читать, закрываем.
			go client.Close()
		}
	}

	if userID == uuid.Nil {
		for _, clients := range h.clients {
			for client := range clients {
				deliver(client)
			}
		}
		return
	}

	for client := range h.clients[userID] {
		deliver(client)
	}
}

// logError пишет ошибку хаба в общий логгер.
func logError(msg string, err error) {
	if logger.Log != nil {
		logger.Log.WithError(err).Error(msg)
	}
}
