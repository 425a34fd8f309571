package request

import (
	"errors"
	"strings"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
)

// CreateServiceOrderRequest is the payload for "cadastrar OS".
type CreateServiceOrderRequest struct {
	ClienteID string `json:"cliente_id" binding:"required"`
	VeiculoID string `json:"veiculo_id" binding:"required"`
	ServicoID string `json:"servico_id" binding:"required"`
	Descricao string `json:"descricao"`
}

func (r CreateServiceOrderRequest) ToInput() usecase.CreateServiceOrderInput {
	return usecase.CreateServiceOrderInput{
		ClientID:    r.ClienteID,
		VehicleID:   r.VeiculoID,
		ServiceID:   r.ServicoID,
		Description: r.Descricao,
	}
}

// UpdateServiceOrderRequest is a partial update: absent fields are left untouched.
// `orcamento` accepts a JSON number or a decimal string ("150.00").
type UpdateServiceOrderRequest struct {
	ClienteID *string          `json:"cliente_id"`
	VeiculoID *string          `json:"veiculo_id"`
	ServicoID *string          `json:"servico_id"`
	Descricao *string          `json:"descricao"`
	Status    *string          `json:"status"`
	Orcamento *decimal.Decimal `json:"orcamento"`
}

func (r UpdateServiceOrderRequest) ToInput() (usecase.UpdateServiceOrderInput, error) {
	in := usecase.UpdateServiceOrderInput{
		ClientID:    r.ClienteID,
		VehicleID:   r.VeiculoID,
		ServiceID:   r.ServicoID,
		Description: r.Descricao,
		Quote:       r.Orcamento,
	}
	if r.Status != nil {
		st, ok := entities.ParseServiceOrderStatus(*r.Status)
		if !ok {
			return usecase.UpdateServiceOrderInput{}, ErrInvalidStatus
		}
		in.Status = &st
	}
	return in, nil
}

type InsumoRequest struct {
	EstoqueID  string `json:"estoque_id" binding:"required"`
	Quantidade int    `json:"quantidade" binding:"required,gt=0"`
}

// InsumosRequest is used both to consume stock for an OS and to return stock.
type InsumosRequest struct {
	Insumos []InsumoRequest `json:"insumos" binding:"required,min=1,dive"`
}

func (r InsumosRequest) ToInputs() []usecase.InsumoInput {
	out := make([]usecase.InsumoInput, 0, len(r.Insumos))
	for _, it := range r.Insumos {
		out = append(out, usecase.InsumoInput{StockItemID: strings.TrimSpace(it.EstoqueID), Quantity: it.Quantidade})
	}
	return out
}
