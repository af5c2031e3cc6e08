package recommendation

import (
	"net/http"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/response"
)

var (
	ErrCatalogUnavailable = response.NewError(http.StatusServiceUnavailable, "music catalog unavailable")
	ErrYouTubeDisabled    = response.NewError(http.StatusServiceUnavailable, "youtube integration not configured")
	ErrUnknownEmotion     = response.NewError(http.StatusBadRequest, "unknown emotion category")
)
