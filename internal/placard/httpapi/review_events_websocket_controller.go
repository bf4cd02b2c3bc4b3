package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"placard-server/internal/infra/async"
	"placard-server/internal/infra/httpserver"
	"placard-server/internal/infra/node"
	"placard-server/internal/placard/usecases"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin filtering is handled by the CORS layer in front
		return true
	},
}

// ReviewStreamMessage is the frame pushed to connected UIs for every
// review progress event.
type ReviewStreamMessage struct {
	Type      string    `json:"type"`
	Instance  string    `json:"instance"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// ReviewEventsWebSocketController fans review progress events out to
// every connected websocket client. It subscribes to the internal broker
// topic the review service publishes on; slow clients are dropped rather
// than allowed to stall the hub.
type ReviewEventsWebSocketController struct {
	broker     async.InternalBroker
	clients    map[*websocket.Conn]bool
	clientsMux sync.RWMutex
	broadcast  chan ReviewStreamMessage
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewReviewEventsWebSocketController(broker async.InternalBroker) *ReviewEventsWebSocketController {
	ctx, cancel := context.WithCancel(context.Background())

	wsc := &ReviewEventsWebSocketController{
		broker:     broker,
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan ReviewStreamMessage, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		ctx:        ctx,
		cancel:     cancel,
	}

	go wsc.run()

	return wsc
}

var _ httpserver.Controller = (*ReviewEventsWebSocketController)(nil)

func (wsc *ReviewEventsWebSocketController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /ws/review-events", wsc.handleWebSocket())
}

func (wsc *ReviewEventsWebSocketController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		slog.Info("review events client connected", slog.String("remote_addr", r.RemoteAddr))

		wsc.register <- conn

		go wsc.handlePingPong(conn)
		go wsc.handleClient(conn)
	}
}

func (wsc *ReviewEventsWebSocketController) handleClient(conn *websocket.Conn) {
	defer func() {
		wsc.unregister <- conn
		conn.Close()
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	// The stream is one-way; reads only surface disconnects.
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("websocket connection closed", slog.String("error", err.Error()))
			}
			break
		}
	}
}

func (wsc *ReviewEventsWebSocketController) handlePingPong(conn *websocket.Conn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-wsc.ctx.Done():
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (wsc *ReviewEventsWebSocketController) run() {
	subscription, err := wsc.broker.Subscribe(usecases.ReviewEventsTopic)
	if err != nil {
		slog.Error("subscribing to review events", slog.String("error", err.Error()))
		return
	}
	defer wsc.broker.Unsubscribe(usecases.ReviewEventsTopic, subscription)

	for {
		select {
		case <-wsc.ctx.Done():
			return

		case client := <-wsc.register:
			wsc.clientsMux.Lock()
			wsc.clients[client] = true
			total := len(wsc.clients)
			wsc.clientsMux.Unlock()
			slog.Info("websocket client registered", slog.Int("total_clients", total))

		case client := <-wsc.unregister:
			wsc.clientsMux.Lock()
			if _, ok := wsc.clients[client]; ok {
				delete(wsc.clients, client)
				client.Close()
			}
			total := len(wsc.clients)
			wsc.clientsMux.Unlock()
			slog.Info("websocket client unregistered", slog.Int("total_clients", total))

		case message := <-wsc.broadcast:
			wsc.clientsMux.Lock()
			for client := range wsc.clients {
				client.SetWriteDeadline(time.Now().Add(10 * time.Second))
				if err := client.WriteJSON(message); err != nil {
					slog.Error("writing to websocket client", slog.String("error", err.Error()))
					client.Close()
					delete(wsc.clients, client)
				}
			}
			wsc.clientsMux.Unlock()

		case brokerMsg, ok := <-subscription.Receiver:
			if !ok {
				return
			}

			message := ReviewStreamMessage{
				Type:      brokerMsg.Event,
				Instance:  node.Instance().ID,
				Timestamp: time.Now().UTC(),
				Data:      brokerMsg.Value,
			}

			select {
			case wsc.broadcast <- message:
			default:
				slog.Warn("broadcast channel full, dropping review event", slog.String("type", brokerMsg.Event))
			}
		}
	}
}

func (wsc *ReviewEventsWebSocketController) Shutdown() {
	slog.Info("shutting down review events websocket controller")
	wsc.cancel()

	wsc.clientsMux.Lock()
	for client := range wsc.clients {
		client.Close()
	}
	wsc.clientsMux.Unlock()
}
