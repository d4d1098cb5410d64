package rest

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"pai/usecase/fetch_items_usecase"
)

func listItemsHandler(listUsecase *fetch_items_usecase.FetchItemsListUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := fetch_items_usecase.FilterParams{
			Kind:     c.QueryParam("kind"),
			SourceID: c.QueryParam("source_id"),
			Since:    c.QueryParam("since"),
			Query:    c.QueryParam("q"),
		}
		if raw := c.QueryParam("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
			}
			params.Limit = limit
		}

		items, err := listUsecase.Execute(c.Request().Context(), params)
		if err != nil {
			return handleError(c, err, "list_items")
		}

		return c.JSON(http.StatusOK, ItemsResponse{Items: items, Count: len(items)})
	}
}

func getItemHandler(singleUsecase *fetch_items_usecase.FetchSingleItemUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Item ids include AT URIs with slashes, so clients escape them.
		id, err := url.PathUnescape(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed item id"})
		}

		item, err := singleUsecase.Execute(c.Request().Context(), id)
		if err != nil {
			return handleError(c, err, "get_item")
		}

		return c.JSON(http.StatusOK, item)
	}
}
