package detection

import (
	"net/http"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/response"
)

var (
	ErrMissingInput          = response.NewError(http.StatusBadRequest, "either image or emotion is required")
	ErrUnknownEmotion        = response.NewError(http.StatusBadRequest, "unknown emotion")
	ErrClassifierUnavailable = response.NewError(http.StatusServiceUnavailable, "classical classifier is not loaded")
	ErrFeatureDimension      = response.NewError(http.StatusBadRequest, "feature vector has unexpected length")
)
