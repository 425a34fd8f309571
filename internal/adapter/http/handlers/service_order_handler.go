package handlers

import (
	"context"
	"net/http"
	"strings"

	request "os_service_api/internal/adapter/http/dto/request"
	response "os_service_api/internal/adapter/http/dto/response"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceOrderHandler handles HTTP requests for the service order lifecycle.
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// Create godoc
// @Summary      Cadastrar ordem de serviço
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateServiceOrderRequest  true  "cliente_id, veiculo_id, servico_id, descricao"
// @Success      201   {object}  response.ServiceOrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /service-orders [post]
func (h *ServiceOrderHandler) Create(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

// List godoc
// @Summary      Listar ordens de serviço
// @Description  Lists active service orders, optionally filtered by status.
// @Tags         service-orders
// @Produce      json
// @Param        status  query     string  false  "Received, InDiagnosis, AwaitingApproval, InExecution, Finalized, Cancelled, QuoteExpired"
// @Success      200     {array}   response.ServiceOrderResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      503     {object}  pkg.HTTPError
// @Router       /service-orders [get]
func (h *ServiceOrderHandler) List(c *gin.Context) {
	var (
		orders []entities.ServiceOrder
		err    error
	)

	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status, ok := entities.ParseServiceOrderStatus(raw)
		if !ok {
			c.JSON(errInvalidStatusFilter.HTTPStatus, errInvalidStatusFilter.ToHTTPError())
			return
		}
		orders, err = h.usecase.GetByStatus(c.Request.Context(), status)
	} else {
		orders, err = h.usecase.GetAll(c.Request.Context())
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

// GetByID godoc
// @Summary      Buscar ordem de serviço
// @Tags         service-orders
// @Produce      json
// @Param        id   path      string  true  "Service order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders/{id} [get]
func (h *ServiceOrderHandler) GetByID(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// Update godoc
// @Summary      Atualizar ordem de serviço
// @Description  Partial update. A status change drives diagnosis, budget sending, finalization or cancellation.
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                             true  "Service order id"
// @Param        body  body      request.UpdateServiceOrderRequest  true  "fields to change"
// @Success      200   {object}  response.ServiceOrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /service-orders/{id} [patch]
func (h *ServiceOrderHandler) Update(c *gin.Context) {
	var payload request.UpdateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidStatusFilter.HTTPStatus, errInvalidStatusFilter.ToHTTPError())
		return
	}

	order, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// Delete godoc
// @Summary      Excluir ordem de serviço
// @Tags         service-orders
// @Param        id   path  string  true  "Service order id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders/{id} [delete]
func (h *ServiceOrderHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ApproveQuote godoc
// @Summary      Aceitar orçamento
// @Tags         service-orders
// @Produce      json
// @Param        id   path      string  true  "Service order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/quote/approve [post]
func (h *ServiceOrderHandler) ApproveQuote(c *gin.Context) {
	h.decideQuote(c, h.usecase.AcceptQuote)
}

// RefuseQuote godoc
// @Summary      Recusar orçamento
// @Tags         service-orders
// @Produce      json
// @Param        id   path      string  true  "Service order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/quote/refuse [post]
func (h *ServiceOrderHandler) RefuseQuote(c *gin.Context) {
	h.decideQuote(c, h.usecase.RefuseQuote)
}

func (h *ServiceOrderHandler) decideQuote(
	c *gin.Context,
	decide func(ctx context.Context, id string) (entities.ServiceOrder, error),
) {
	order, err := decide(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}
