package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s Server) PostSubmit(c echo.Context) error {
	serviceType, err := serviceTypeParam(c)
	if err != nil {
		return err
	}
	session, err := sessionID(c)
	if err != nil {
		return err
	}

	confirmation, err := s.submitter.Submit(c.Request().Context(), serviceType, session)
	if err != nil {
		return draftError(c, serviceType, err)
	}

	return c.JSON(http.StatusCreated, confirmation)
}
