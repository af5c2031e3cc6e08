package detectionHandler

import (
	"context"
	"time"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/detection"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/metrics"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/middleware"
	contextPkg "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/context"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/vision"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	wsReadTimeout  = 60 * time.Second
	wsWriteTimeout = 10 * time.Second
)

type wsSession struct {
	active bool
	branch string
}

// handleEmotionWebSocket serves the realtime detection session. Text
// messages carry JSON events; a binary message is an encoded frame and is
// handled like analyze_frame.
func (h *DetectionHandler) handleEmotionWebSocket(c *websocket.Conn) {
	requestID, _ := c.Locals(middleware.RequestIDKey).(string)
	ctx := contextPkg.WithRequestID(context.Background(), requestID)
	logger := h.log.WithField("request_id", requestID)

	metrics.TrackWSConnection(true)
	defer metrics.TrackWSConnection(false)

	logger.Info("Emotion WebSocket client connected")
	defer logger.Info("Emotion WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		logger.Debug("Received ping, sending pong")
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			logger.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	if err := h.writeReply(c, logger, detection.SocketReply{
		Event:   detection.EventConnected,
		Message: "Connected to emotion detection",
	}); err != nil {
		return
	}

	session := &wsSession{}
	for {
		if err := c.SetReadDeadline(time.Now().Add(wsReadTimeout)); err != nil {
			logger.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Errorf("Emotion WebSocket error: %v", err)
			} else {
				logger.Info("Emotion WebSocket connection closed")
			}
			break
		}

		var reply detection.SocketReply
		switch messageType {
		case websocket.BinaryMessage:
			reply = h.analyzeFrame(ctx, session, message)
		case websocket.TextMessage:
			var msg detection.SocketMessage
			if err := json.Unmarshal(message, &msg); err != nil {
				reply = detection.SocketReply{Event: detection.EventError, Message: "invalid message"}
				break
			}
			reply = h.dispatch(ctx, session, msg)
		default:
			logger.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		if err := h.writeReply(c, logger, reply); err != nil {
			break
		}
	}
}

func (h *DetectionHandler) dispatch(ctx context.Context, session *wsSession, msg detection.SocketMessage) detection.SocketReply {
	switch msg.Event {
	case detection.EventStartDetection:
		session.active = true
		session.branch = msg.Data.Branch
		return detection.SocketReply{
			Event:   detection.EventDetectionStarted,
			Message: "Emotion detection started",
		}

	case detection.EventStopDetection:
		session.active = false
		return detection.SocketReply{
			Event:   detection.EventDetectionStopped,
			Message: "Emotion detection stopped",
		}

	case detection.EventAnalyzeFrame:
		// Undecodable payloads run as an empty frame.
		frame, _ := vision.DecodeBase64(msg.Data.Image)
		return h.analyzeFrame(ctx, session, frame)

	case detection.EventGetTimeline:
		tl, err := h.detectionService.Timeline(ctx, msg.Data.Days)
		if err != nil {
			return detection.SocketReply{Event: detection.EventTimelineError, Message: err.Error()}
		}
		return detection.SocketReply{Event: detection.EventEmotionTimeline, Data: tl}

	default:
		return detection.SocketReply{Event: detection.EventError, Message: "unknown event " + msg.Event}
	}
}

func (h *DetectionHandler) analyzeFrame(ctx context.Context, session *wsSession, frame []byte) detection.SocketReply {
	if !session.active {
		return detection.SocketReply{Event: detection.EventError, Message: "emotion detection is not started"}
	}
	res := h.detectionService.DetectFrame(ctx, frame, detection.Options{Branch: session.branch})
	return detection.SocketReply{Event: detection.EventEmotionResult, Data: res}
}

func (h *DetectionHandler) writeReply(c *websocket.Conn, logger *logrus.Entry, reply detection.SocketReply) error {
	if err := c.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
		logger.Errorf("Error setting write deadline: %v", err)
		return err
	}

	if err := c.WriteJSON(reply); err != nil {
		logger.Errorf("Error writing JSON response: %v", err)
		return err
	}

	if err := c.SetWriteDeadline(time.Time{}); err != nil {
		logger.Errorf("Error resetting write deadline: %v", err)
		return err
	}
	return nil
}
