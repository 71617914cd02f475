package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/wakestop/internal/pkg/constants"
	jwtpkg "github.com/piresc/wakestop/internal/pkg/jwt"
	"github.com/piresc/wakestop/internal/pkg/models"
	wspkg "github.com/piresc/wakestop/internal/pkg/websocket"
	"github.com/piresc/wakestop/services/tracker"
	"github.com/piresc/wakestop/services/tracker/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jwtConfig = models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "wakestop"}

func startServer(t *testing.T, tripUC tracker.TripUC) (string, string) {
	handler := NewTripStreamHandler(tripUC, wspkg.NewManager(jwtConfig))
	e := echo.New()
	e.GET("/v1/trips/current/ws", handler.StreamTrip)
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, jwtpkg.RoleTraveler, jwtConfig)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/trips/current/ws?token=" + token
	return url, userID.String()
}

func readMessage(t *testing.T, conn *websocket.Conn) models.WSMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestStreamTrip_PushesSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTripUC := mocks.NewMockTripUC(ctrl)
	url, userID := startServer(t, mockTripUC)

	snapshots := make(chan models.TripSnapshot, 2)
	cancelled := make(chan struct{})
	mockTripUC.EXPECT().Subscribe(gomock.Any(), userID).
		Return((<-chan models.TripSnapshot)(snapshots), func() { close(cancelled) }, nil)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	snapshots <- models.TripSnapshot{UserID: userID, State: models.TripStateActive, Progress: 0.25}
	msg := readMessage(t, conn)
	assert.Equal(t, constants.EventTripSnapshot, msg.Event)

	var snap models.TripSnapshot
	require.NoError(t, json.Unmarshal(msg.Data, &snap))
	assert.Equal(t, models.TripStateActive, snap.State)
	assert.Equal(t, 0.25, snap.Progress)

	close(snapshots)
	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not cancelled")
	}
}

func TestStreamTrip_SubscribeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTripUC := mocks.NewMockTripUC(ctrl)
	url, userID := startServer(t, mockTripUC)

	mockTripUC.EXPECT().Subscribe(gomock.Any(), userID).Return(nil, nil, tracker.ErrMissingUser)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	msg := readMessage(t, conn)
	assert.Equal(t, constants.EventError, msg.Event)
	assert.Contains(t, string(msg.Data), "subscribe_failed")
}

func TestStreamTrip_RejectsMissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	url, _ := startServer(t, mocks.NewMockTripUC(ctrl))
	url = url[:strings.Index(url, "?")]

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}
