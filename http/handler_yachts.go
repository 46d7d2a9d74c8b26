package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"letgonow/entity"
)

func (s Server) GetYachts(c echo.Context) error {
	yachts, err := s.yachtsRepo.FindAll(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}

	if yachts == nil {
		yachts = []entity.Yacht{}
	}

	return c.JSON(http.StatusOK, yachts)
}

func (s Server) GetYacht(c echo.Context) error {
	yacht, err := s.yachtsRepo.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, entity.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "yacht not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, yacht)
}
