package response

import (
	"time"

	"os_service_api/internal/domain/entities"
)

type InsumoResponse struct {
	ID         string    `json:"id"`
	EstoqueID  string    `json:"estoque_id"`
	Quantidade int       `json:"quantidade"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ServiceOrderResponse struct {
	ID                 string           `json:"id"`
	ClienteID          string           `json:"cliente_id"`
	VeiculoID          string           `json:"veiculo_id"`
	ServicoID          string           `json:"servico_id"`
	Descricao          string           `json:"descricao"`
	Status             string           `json:"status"`
	Orcamento          *string          `json:"orcamento"`
	DataEnvioOrcamento *time.Time       `json:"data_envio_orcamento"`
	Insumos            []InsumoResponse `json:"insumos"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	CreatedBy          string           `json:"created_by,omitempty"`
	UpdatedBy          string           `json:"updated_by,omitempty"`
}

// FromServiceOrder maps an order to its API view. Only active insumo lines are
// listed; the quote is rendered with two decimal places.
func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	res := ServiceOrderResponse{
		ID:                 o.ID,
		ClienteID:          o.ClientID,
		VeiculoID:          o.VehicleID,
		ServicoID:          o.ServiceID,
		Descricao:          o.Description,
		Status:             string(o.Status),
		DataEnvioOrcamento: o.QuoteSentAt,
		Insumos:            []InsumoResponse{},
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		CreatedBy:          o.CreatedBy,
		UpdatedBy:          o.UpdatedBy,
	}
	if o.Quote != nil {
		q := o.Quote.StringFixed(2)
		res.Orcamento = &q
	}
	for _, l := range o.ActiveInsumos() {
		res.Insumos = append(res.Insumos, InsumoResponse{
			ID:         l.ID,
			EstoqueID:  l.StockItemID,
			Quantidade: l.Quantity,
			CreatedAt:  l.CreatedAt,
			UpdatedAt:  l.UpdatedAt,
		})
	}
	return res
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
