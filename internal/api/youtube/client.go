package youtube

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"kalam-platform/config"
)

const apiBase = "https://www.googleapis.com/youtube/v3"

var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

type searchResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

func fetchJSON(rawURL string, out any) error {
	resp, err := http.Get(rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube api returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// formatDuration turns an ISO 8601 duration (PT1H2M3S) into h:mm:ss or
// m:ss.
func formatDuration(iso string) string {
	m := durationPattern.FindStringSubmatch(iso)
	if m == nil {
		return "0:00"
	}
	var hours, minutes, seconds int
	fmt.Sscan(m[1], &hours)
	fmt.Sscan(m[2], &minutes)
	fmt.Sscan(m[3], &seconds)
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// formatViews renders a view count the way the site shows it: 1.2M, 3.4K
// or the raw number.
func formatViews(count int) string {
	switch {
	case count >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1fK", float64(count)/1_000)
	default:
		return fmt.Sprint(count)
	}
}

type channelVideo struct {
	ID        string
	Title     string
	Thumbnail string
	Views     string
	Duration  string
}

func fetchChannelVideos() ([]channelVideo, error) {
	var videos []channelVideo
	pageToken := ""

	for {
		q := url.Values{}
		q.Set("part", "snippet")
		q.Set("channelId", config.YOUTUBE_CHANNEL_ID)
		q.Set("maxResults", "50")
		q.Set("order", "date")
		q.Set("type", "video")
		q.Set("key", config.YOUTUBE_API_KEY)
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var page searchResponse
		if err := fetchJSON(apiBase+"/search?"+q.Encode(), &page); err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			if item.ID.VideoID == "" {
				continue
			}
			videos = append(videos, channelVideo{
				ID:        item.ID.VideoID,
				Title:     item.Snippet.Title,
				Thumbnail: item.Snippet.Thumbnails.High.URL,
			})
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	for i := range videos {
		q := url.Values{}
		q.Set("part", "contentDetails,statistics")
		q.Set("id", videos[i].ID)
		q.Set("key", config.YOUTUBE_API_KEY)

		var detail videosResponse
		if err := fetchJSON(apiBase+"/videos?"+q.Encode(), &detail); err != nil {
			return nil, err
		}
		if len(detail.Items) == 0 {
			continue
		}

		videos[i].Duration = formatDuration(detail.Items[0].ContentDetails.Duration)
		var views int
		fmt.Sscan(detail.Items[0].Statistics.ViewCount, &views)
		videos[i].Views = formatViews(views)
	}

	return videos, nil
}
