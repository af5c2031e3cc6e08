package websocketPkg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	jsoniter "github.com/json-iterator/go"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/detector"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type landmarkReply struct {
	Landmarks [][2]float64 `json:"landmarks"`
	Error     string       `json:"error,omitempty"`
}

type emotionReply struct {
	Emotion *string  `json:"emotion"`
	Score   *float64 `json:"score"`
	Error   string   `json:"error,omitempty"`
}

// LandmarkClient asks the remote landmark model for the 68 points of a
// cropped face.
type LandmarkClient struct {
	ws IWebsocket
}

func NewLandmarkClient(ws IWebsocket) *LandmarkClient {
	return &LandmarkClient{ws: ws}
}

func (l *LandmarkClient) Ping(context.Context) error {
	if l.ws.IsConnected(LandmarkService) {
		return nil
	}
	return l.ws.Reconnect(LandmarkService)
}

func (l *LandmarkClient) DetectLandmarks(ctx context.Context, face []byte) ([]entity.Point, error) {
	raw, err := l.ws.RoundTrip(ctx, LandmarkService, face)
	if err != nil {
		return nil, err
	}

	var reply landmarkReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, fmt.Errorf("error unmarshaling landmark response: %w", err)
	}
	if reply.Error != "" {
		return nil, errors.New(reply.Error)
	}

	points := make([]entity.Point, len(reply.Landmarks))
	for i, p := range reply.Landmarks {
		points[i] = entity.Point{X: p[0], Y: p[1]}
	}
	return points, nil
}

// EmotionClient runs a remote facial-expression recognizer that replies
// with its top emotion and score.
type EmotionClient struct {
	ws IWebsocket
}

func NewEmotionClient(ws IWebsocket) *EmotionClient {
	return &EmotionClient{ws: ws}
}

func (e *EmotionClient) Name() string { return "ws" }

func (e *EmotionClient) Ready(context.Context) error {
	if e.ws.IsConnected(EmotionService) {
		return nil
	}
	return e.ws.Reconnect(EmotionService)
}

func (e *EmotionClient) Predict(ctx context.Context, face image.Image) (string, float64, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, face, &jpeg.Options{Quality: 90}); err != nil {
		return "", 0, fmt.Errorf("encode face: %w", err)
	}

	raw, err := e.ws.RoundTrip(ctx, EmotionService, buf.Bytes())
	if err != nil {
		return "", 0, err
	}

	var reply emotionReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return "", 0, fmt.Errorf("error unmarshaling emotion response: %w", err)
	}
	if reply.Error != "" {
		return "", 0, errors.New(reply.Error)
	}
	if reply.Emotion == nil || *reply.Emotion == "" || reply.Score == nil {
		return "", 0, detector.ErrNoEmotion
	}
	return *reply.Emotion, *reply.Score, nil
}
