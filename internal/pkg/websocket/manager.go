package websocket

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/wakestop/internal/pkg/constants"
	jwtpkg "github.com/piresc/wakestop/internal/pkg/jwt"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/models"
)

const (
	defaultPingInterval = 30 * time.Second
	writeWait           = 10 * time.Second
)

// Client is an authenticated WebSocket peer
type Client struct {
	UserID string
	Role   string
}

// Manager authenticates WebSocket peers and streams trip snapshots to them
type Manager struct {
	sync.RWMutex
	conns        map[string]int
	cfg          models.JWTConfig
	upgrader     websocket.Upgrader
	pingInterval time.Duration
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		conns: make(map[string]int),
		cfg:   jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		pingInterval: defaultPingInterval,
	}
}

// SetPingInterval overrides the keepalive interval
func (m *Manager) SetPingInterval(d time.Duration) {
	if d > 0 {
		m.pingInterval = d
	}
}

// HandleConnection authenticates, upgrades, and hands the connection to handleClient
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client, *websocket.Conn) error) error {
	client, err := m.Authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	m.addConn(client.UserID)
	defer m.removeConn(client.UserID)

	return handleClient(client, ws)
}

// Authenticate reads the bearer token from the Authorization header, or from the
// token query parameter for browser clients that cannot set headers
func (m *Manager) Authenticate(c echo.Context) (*Client, error) {
	token := c.QueryParam("token")
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		token = parts[1]
	}
	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	claims, err := jwtpkg.ValidateToken(token, m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &Client{
		UserID: claims.UserID.String(),
		Role:   claims.Role,
	}, nil
}

// ActiveConnections returns the number of open streams for a user
func (m *Manager) ActiveConnections(userID string) int {
	m.RLock()
	defer m.RUnlock()
	return m.conns[userID]
}

func (m *Manager) addConn(userID string) {
	m.Lock()
	defer m.Unlock()
	m.conns[userID]++
}

func (m *Manager) removeConn(userID string) {
	m.Lock()
	defer m.Unlock()
	m.conns[userID]--
	if m.conns[userID] <= 0 {
		delete(m.conns, userID)
	}
}

// StreamSnapshots writes every snapshot from the channel until it is closed or the
// peer goes away. Only this goroutine writes to conn.
func (m *Manager) StreamSnapshots(conn *websocket.Conn, userID string, snapshots <-chan models.TripSnapshot) error {
	pings := make(chan struct{}, 1)
	gone := make(chan error, 1)
	go m.readLoop(conn, pings, gone)

	ticker := time.NewTicker(m.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case snap, ok := <-snapshots:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(writeWait))
				return nil
			}
			if err := m.SendMessage(conn, constants.EventTripSnapshot, snap); err != nil {
				logger.Warn("Error sending snapshot to client",
					logger.String("user_id", userID),
					logger.Err(err))
				return err
			}
		case <-pings:
			if err := m.SendMessage(conn, constants.EventPong, nil); err != nil {
				return err
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		case err := <-gone:
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket closed unexpectedly",
					logger.String("user_id", userID),
					logger.Err(err))
			}
			return nil
		}
	}
}

func (m *Manager) readLoop(conn *websocket.Conn, pings chan<- struct{}, gone chan<- error) {
	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			gone <- err
			return
		}
		if msg.Event == constants.EventPing {
			select {
			case pings <- struct{}{}:
			default:
			}
		}
	}
}

// SendMessage sends a message to a WebSocket client
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil
	}

	msg, err := models.NewWSMessage(event, data)
	if err != nil {
		return err
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}
