package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/clientes/internal/model"
	"github.com/umalmyha/clientes/internal/service"
)

const invalidBodyMessage = "El cuerpo de la solicitud no es un JSON válido."

type newCliente struct {
	RUC         string `json:"ruc" validate:"required,ruc"`
	RazonSocial string `json:"razonSocial" validate:"required,notblank,max=200"`
	Telefono    string `json:"telefono" validate:"phone"`
	Correo      string `json:"correo" validate:"basicemail,max=100"`
	Direccion   string `json:"direccion" validate:"max=200"`
}

func (nc *newCliente) cliente() *model.Cliente {
	return &model.Cliente{
		RUC:         nc.RUC,
		RazonSocial: nc.RazonSocial,
		Telefono:    nc.Telefono,
		Correo:      nc.Correo,
		Direccion:   nc.Direccion,
	}
}

type updateCliente struct {
	Target string `param:"ruc" json:"-"`
	newCliente
}

// ClienteHTTPHandler is http handler for cliente endpoint
type ClienteHTTPHandler struct {
	clienteSvc service.ClienteService
}

// NewClienteHTTPHandler builds new ClienteHTTPHandler
func NewClienteHTTPHandler(clienteSvc service.ClienteService) *ClienteHTTPHandler {
	return &ClienteHTTPHandler{clienteSvc: clienteSvc}
}

// Get gets cliente
// @Summary     Get single cliente by RUC
// @Description Returns single cliente with provided RUC
// @Tags        clientes
// @Security	ApiKeyAuth
// @Produce     json
// @Param       ruc    path 	string true "Cliente RUC"
// @Success     200    {object} model.Cliente
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/cliente/{ruc} [get]
func (h *ClienteHTTPHandler) Get(c echo.Context) error {
	cliente, err := h.clienteSvc.FindByRUC(c.Request().Context(), c.Param("ruc"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cliente)
}

// GetAll gets all clientes
// @Summary     Get all clientes
// @Description Returns all clientes ordered by RUC
// @Tags        clientes
// @Security	ApiKeyAuth
// @Produce     json
// @Success     200    {array}  model.Cliente
// @Failure     500    {object} echo.HTTPError
// @Router      /api/cliente [get]
func (h *ClienteHTTPHandler) GetAll(c echo.Context) error {
	clientes, err := h.clienteSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientes)
}

// Search searches clientes by razon social
// @Summary     Search clientes
// @Description Returns clientes which razon social contains provided text ignoring case
// @Tags        clientes
// @Security	ApiKeyAuth
// @Produce     json
// @Param       name        query    string false "Part of razon social"
// @Param       razonSocial query    string false "Alias of name"
// @Success     200         {array}  model.Cliente
// @Failure     400         {object} echo.HTTPError
// @Failure     404         {object} echo.HTTPError
// @Failure     500         {object} echo.HTTPError
// @Router      /api/cliente/search [get]
func (h *ClienteHTTPHandler) Search(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		name = c.QueryParam("razonSocial")
	}

	clientes, err := h.clienteSvc.Search(c.Request().Context(), name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientes)
}

// Post creates new cliente
// @Summary     New cliente
// @Description Creates new cliente, RUC must not be taken
// @Tags        clientes
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param 		newCliente body	    newCliente true "Data for new cliente"
// @Success     201    	   {object} model.Cliente
// @Failure     400    	   {object} echo.HTTPError
// @Failure     409    	   {object} echo.HTTPError
// @Failure     500    	   {object} echo.HTTPError
// @Router      /api/cliente [post]
func (h *ClienteHTTPHandler) Post(c echo.Context) error {
	var nc newCliente
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, invalidBodyMessage)
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	cliente, err := h.clienteSvc.Create(c.Request().Context(), nc.cliente())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cliente)
}

// Put replaces cliente
// @Summary     Replace cliente
// @Description Replaces all fields of cliente, RUC might be changed if new one is free
// @Tags        clientes
// @Security	ApiKeyAuth
// @Accept		json
// @Param       ruc    		  path 	   string 		 true "Current cliente RUC"
// @Param 		updateCliente body	   newCliente    true "Cliente data"
// @Success     204    		  "Successful status code"
// @Failure     400    		  {object} echo.HTTPError
// @Failure     404    		  {object} echo.HTTPError
// @Failure     409    		  {object} echo.HTTPError
// @Failure     500    		  {object} echo.HTTPError
// @Router      /api/cliente/{ruc} [put]
func (h *ClienteHTTPHandler) Put(c echo.Context) error {
	var uc updateCliente
	if err := c.Bind(&uc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, invalidBodyMessage)
	}

	if err := c.Validate(&uc.newCliente); err != nil {
		return err
	}

	if err := h.clienteSvc.Update(c.Request().Context(), uc.Target, uc.cliente()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Patch partially updates cliente
// @Summary     Patch cliente
// @Description Changes only provided fields, ruc and unknown keys are ignored, null clears field
// @Tags        clientes
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param       ruc     path 	 string 		true "Cliente RUC"
// @Param 		changes body	 map[string]any true "Fields to change"
// @Success     200     {object} model.Cliente
// @Failure     400     {object} echo.HTTPError
// @Failure     404     {object} echo.HTTPError
// @Failure     500     {object} echo.HTTPError
// @Router      /api/cliente/{ruc} [patch]
func (h *ClienteHTTPHandler) Patch(c echo.Context) error {
	// body is decoded directly, Bind would mix path params into the map
	var changes map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&changes); err != nil && !errors.Is(err, io.EOF) {
		return echo.NewHTTPError(http.StatusBadRequest, invalidBodyMessage)
	}

	cliente, err := h.clienteSvc.Patch(c.Request().Context(), c.Param("ruc"), model.PatchFromMap(changes))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cliente)
}

// DeleteByRUC deletes cliente
// @Summary     Delete cliente by RUC
// @Description Deletes cliente with provided RUC
// @Tags        clientes
// @Security	ApiKeyAuth
// @Param       ruc    path 	string true "Cliente RUC"
// @Success     204    "Successful status code"
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/cliente/{ruc} [delete]
func (h *ClienteHTTPHandler) DeleteByRUC(c echo.Context) error {
	if err := h.clienteSvc.DeleteByRUC(c.Request().Context(), c.Param("ruc")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Health reports liveness
// @Summary     Liveness probe
// @Tags        health
// @Produce     json
// @Success     200 "Service is up"
// @Router      /health [get]
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
