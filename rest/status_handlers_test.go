package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pai/config"
	"pai/domain"
	"pai/mocks"
	"pai/usecase/fetch_items_usecase"
	"pai/usecase/item_stats_usecase"
	"pai/utils/rss_builder"
)

func TestStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStoragePort(ctrl)
	storage.EXPECT().Stats(gomock.Any()).Return(&domain.ItemStats{
		Total: 12,
		ByKind: map[domain.SourceKind]int{
			domain.SourceKindSubstack: 4,
			domain.SourceKindBluesky:  8,
		},
	}, nil)

	handler := statusHandler(item_stats_usecase.NewItemStatsUsecase(storage), time.Now().Add(-90*time.Second))

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, config.Version, resp.Version)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, int64(90))
	assert.Equal(t, 12, resp.TotalItems)
	assert.Equal(t, 4, resp.ByKind["substack"])
	assert.Equal(t, 8, resp.ByKind["bluesky"])
}

func TestRSSHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStoragePort(ctrl)
	storage.EXPECT().ListItems(gomock.Any(), gomock.Any()).Return([]*domain.Item{
		{
			ID:          "item-1",
			SourceKind:  domain.SourceKindSubstack,
			SourceID:    "example.substack.com",
			Title:       "Hello RSS",
			Summary:     "A post about feeds.",
			URL:         "https://example.substack.com/p/hello",
			PublishedAt: time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
		},
	}, nil)

	handler := rssHandler(fetch_items_usecase.NewFetchItemsListUsecase(storage), rss_builder.NewBuilder())

	req := httptest.NewRequest(http.MethodGet, "/v1/rss.xml", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/rss+xml")

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "<rss"), "body should be an RSS document")
	assert.Contains(t, body, "Hello RSS")
	assert.Contains(t, body, "https://example.substack.com/p/hello")
}
