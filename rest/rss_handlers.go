package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pai/usecase/fetch_items_usecase"
	"pai/utils/rss_builder"
)

// rssHandler re-exports the index as an RSS channel. It accepts the same
// filter parameters as the item listing.
func rssHandler(listUsecase *fetch_items_usecase.FetchItemsListUsecase, builder *rss_builder.Builder) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := fetch_items_usecase.FilterParams{
			Kind:     c.QueryParam("kind"),
			SourceID: c.QueryParam("source_id"),
			Since:    c.QueryParam("since"),
			Query:    c.QueryParam("q"),
		}

		items, err := listUsecase.Execute(c.Request().Context(), params)
		if err != nil {
			return handleError(c, err, "rss_export")
		}

		doc, err := builder.ToRSS(items, time.Now())
		if err != nil {
			return handleError(c, err, "rss_export")
		}

		return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(doc))
	}
}
