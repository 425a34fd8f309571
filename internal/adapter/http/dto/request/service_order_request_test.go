package request

import (
	"encoding/json"
	"errors"
	"testing"

	"os_service_api/internal/domain/entities"
)

func TestUpdateServiceOrderRequest_ToInput(t *testing.T) {
	var r UpdateServiceOrderRequest
	if err := json.Unmarshal([]byte(`{"status":"awaitingapproval","orcamento":"150.00"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Status == nil || *in.Status != entities.StatusAwaitingApproval {
		t.Fatalf("expected AwaitingApproval, got %v", in.Status)
	}
	if in.Quote == nil || in.Quote.StringFixed(2) != "150.00" {
		t.Fatalf("unexpected quote: %v", in.Quote)
	}
	if in.ClientID != nil || in.VehicleID != nil || in.ServiceID != nil || in.Description != nil {
		t.Fatalf("absent fields must stay nil: %+v", in)
	}
}

func TestUpdateServiceOrderRequest_NumericQuote(t *testing.T) {
	var r UpdateServiceOrderRequest
	if err := json.Unmarshal([]byte(`{"orcamento":99.9}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in, _ := r.ToInput()
	if in.Quote == nil || in.Quote.String() != "99.9" {
		t.Fatalf("unexpected quote: %v", in.Quote)
	}
}

func TestUpdateServiceOrderRequest_InvalidStatus(t *testing.T) {
	s := "Aprovada"
	_, err := UpdateServiceOrderRequest{Status: &s}.ToInput()
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestInsumosRequest_ToInputs(t *testing.T) {
	r := InsumosRequest{Insumos: []InsumoRequest{{EstoqueID: " oleo ", Quantidade: 2}, {EstoqueID: "filtro", Quantidade: 1}}}
	got := r.ToInputs()
	if len(got) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(got))
	}
	if got[0].StockItemID != "oleo" || got[0].Quantity != 2 {
		t.Fatalf("unexpected first input: %+v", got[0])
	}
}
