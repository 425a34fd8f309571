package response

import (
	"testing"
	"time"

	"os_service_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromServiceOrder(t *testing.T) {
	now := time.Now().UTC()
	q := decimal.RequireFromString("150")
	o := entities.ServiceOrder{
		ID:          "os-1",
		ClientID:    "cli-1",
		VehicleID:   "vei-1",
		ServiceID:   "srv-1",
		Description: "freio",
		Status:      entities.StatusAwaitingApproval,
		Quote:       &q,
		QuoteSentAt: &now,
		Insumos: []entities.InsumoOS{
			{ID: "l1", StockItemID: "oleo", Quantity: 2, Active: true},
			{ID: "l2", StockItemID: "filtro", Quantity: 1, Active: false},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromServiceOrder(o)
	if res.ID != "os-1" || res.ClienteID != "cli-1" || res.VeiculoID != "vei-1" || res.ServicoID != "srv-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "AwaitingApproval" {
		t.Fatalf("unexpected status: %s", res.Status)
	}
	if res.Orcamento == nil || *res.Orcamento != "150.00" {
		t.Fatalf("unexpected orcamento: %v", res.Orcamento)
	}
	if res.DataEnvioOrcamento == nil || !res.DataEnvioOrcamento.Equal(now) {
		t.Fatalf("unexpected data_envio_orcamento: %v", res.DataEnvioOrcamento)
	}
	if len(res.Insumos) != 1 || res.Insumos[0].EstoqueID != "oleo" {
		t.Fatalf("only active insumos expected: %+v", res.Insumos)
	}
}

func TestFromServiceOrders_NoQuote(t *testing.T) {
	res := FromServiceOrders([]entities.ServiceOrder{{ID: "a"}, {ID: "b"}})
	if len(res) != 2 {
		t.Fatalf("expected 2, got %d", len(res))
	}
	if res[0].Orcamento != nil || res[0].Insumos == nil {
		t.Fatalf("unexpected mapping: %+v", res[0])
	}
}
