package youtube

import (
	"net/http"
	"strings"

	"kalam-platform/database"
	"kalam-platform/internal/domain/video"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// GET /youtube/videos
//
// Serves from the local cache; hits the YouTube API only when the cache
// is empty.
func ListVideos(c *gin.Context) {
	var cached []video.CachedVideo
	if err := database.DB.Order("created_at DESC").Find(&cached).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load videos"})
		return
	}

	if len(cached) == 0 {
		refreshed, err := refreshCache()
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch videos from YouTube"})
			return
		}
		cached = refreshed
	}

	c.JSON(http.StatusOK, cached)
}

// POST /youtube/refresh
func RefreshVideos(c *gin.Context) {
	cached, err := refreshCache()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch videos from YouTube"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video cache refreshed", "count": len(cached)})
}

func refreshCache() ([]video.CachedVideo, error) {
	fetched, err := fetchChannelVideos()
	if err != nil {
		return nil, err
	}

	cached := make([]video.CachedVideo, 0, len(fetched))
	for _, v := range fetched {
		writer, vocalist := splitCredits(v.Title)
		cached = append(cached, video.CachedVideo{
			ID:        v.ID,
			Title:     v.Title,
			Writer:    writer,
			Vocalist:  vocalist,
			Thumbnail: v.Thumbnail,
			Views:     v.Views,
			Duration:  v.Duration,
		})
	}

	if len(cached) > 0 {
		err = database.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&cached).Error
		if err != nil {
			return nil, err
		}
	}
	return cached, nil
}

// splitCredits pulls "writer x vocalist" credits out of titles shaped
// like "Song Name | Writer x Vocalist". Best effort; empty on miss.
func splitCredits(title string) (string, string) {
	parts := strings.Split(title, "|")
	if len(parts) < 2 {
		return "", ""
	}
	credits := strings.Split(parts[len(parts)-1], " x ")
	if len(credits) != 2 {
		return "", ""
	}
	return strings.TrimSpace(credits[0]), strings.TrimSpace(credits[1])
}
