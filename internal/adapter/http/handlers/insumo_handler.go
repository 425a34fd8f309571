package handlers

import (
	"net/http"

	request "os_service_api/internal/adapter/http/dto/request"
	response "os_service_api/internal/adapter/http/dto/response"
	"os_service_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// InsumoHandler exposes stock consumption by service orders.
type InsumoHandler struct {
	usecase usecase.IInsumoUseCase
}

func NewInsumoHandler(uc usecase.IInsumoUseCase) *InsumoHandler {
	return &InsumoHandler{usecase: uc}
}

// AddInsumos godoc
// @Summary      Adicionar insumos à ordem de serviço
// @Description  Deducts every item from stock. Either every line is added or none is.
// @Tags         insumos
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Service order id"
// @Param        body  body      request.InsumosRequest  true  "estoque_id and quantidade per line"
// @Success      200   {object}  response.ServiceOrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /service-orders/{id}/insumos [post]
func (h *InsumoHandler) AddInsumos(c *gin.Context) {
	var payload request.InsumosRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInsumosPayload.HTTPStatus, errInvalidInsumosPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AddInsumos(c.Request.Context(), c.Param("id"), payload.ToInputs())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// ReturnToStock godoc
// @Summary      Devolver insumos ao estoque
// @Tags         insumos
// @Accept       json
// @Param        body  body  request.InsumosRequest  true  "estoque_id and quantidade per line"
// @Success      204
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /stock/returns [post]
func (h *InsumoHandler) ReturnToStock(c *gin.Context) {
	var payload request.InsumosRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInsumosPayload.HTTPStatus, errInvalidInsumosPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ReturnInsumosToStock(c.Request.Context(), payload.ToInputs()); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
