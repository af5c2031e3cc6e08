package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	"github.com/google/generative-ai-go/genai"
	jsoniter "github.com/json-iterator/go"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/detector"
	"google.golang.org/api/option"
)

const DefaultModelName = "gemini-1.5-flash"

const emotionPrompt = `Look at this face and name the single dominant facial expression.
Answer with JSON only: {"emotion": "<angry|disgust|fear|happy|sad|surprise|neutral>", "score": <0..1>}.
If no face is visible answer {"emotion": null, "score": null}.`

type IGemini interface {
	AnalyzeImage(ctx context.Context, image []byte, prompt string) (string, error)
	Close()
}

type geminiClient struct {
	modelName string
	client    *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (IGemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if modelName == "" {
		modelName = DefaultModelName
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		modelName: modelName,
		client:    client,
	}, nil
}

func (g *geminiClient) AnalyzeImage(ctx context.Context, imgData []byte, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(0)

	res, err := model.GenerateContent(ctx, genai.Text(prompt), genai.ImageData("jpeg", imgData))
	if err != nil {
		return "", err
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("unexpected response format from Gemini API")
	}

	return string(text), nil
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

// EmotionModel asks Gemini to label the expression of a cropped face.
type EmotionModel struct {
	client IGemini
}

func NewEmotionModel(client IGemini) *EmotionModel {
	return &EmotionModel{client: client}
}

func (m *EmotionModel) Name() string { return "gemini" }

func (m *EmotionModel) Ready(context.Context) error {
	if m.client == nil {
		return errors.New("gemini client not configured")
	}
	return nil
}

func (m *EmotionModel) Predict(ctx context.Context, face image.Image) (string, float64, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, face, &jpeg.Options{Quality: 90}); err != nil {
		return "", 0, fmt.Errorf("encode face: %w", err)
	}

	text, err := m.client.AnalyzeImage(ctx, buf.Bytes(), emotionPrompt)
	if err != nil {
		return "", 0, err
	}
	return ParseEmotion(text)
}

// ParseEmotion reads the JSON answer, tolerating a markdown code fence
// around it.
func ParseEmotion(text string) (string, float64, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var reply struct {
		Emotion *string  `json:"emotion"`
		Score   *float64 `json:"score"`
	}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(strings.TrimSpace(text), &reply); err != nil {
		return "", 0, fmt.Errorf("unexpected Gemini answer %q: %w", text, err)
	}
	if reply.Emotion == nil || *reply.Emotion == "" {
		return "", 0, detector.ErrNoEmotion
	}
	score := 0.5
	if reply.Score != nil {
		score = *reply.Score
	}
	return *reply.Emotion, score, nil
}
